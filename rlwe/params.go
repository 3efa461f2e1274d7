package rlwe

import (
	"encoding/json"
	"fmt"
	"math/bits"

	"github.com/google/go-cmp/cmp"

	"github.com/AlvinHon/ring-lwe-encryption/field"
	"github.com/AlvinHon/ring-lwe-encryption/ring"
)

// MaxLiteralLogQ is the largest bit-size of Q accepted by
// [NewParametersFromLiteral]: products of centered int64 coefficients must
// not overflow.
const MaxLiteralLogQ = 32

// ParametersLiteral is a literal representation of fixed-width RLWE
// parameters. It has public fields and is used to express unchecked
// user-defined parameters literally into Go programs or JSON files.
// The NewParametersFromLiteral function is used to generate the actual
// checked parameters from the literal representation.
//
// Q and B are (un)marshaled as JSON strings, which matches the
// representation produced by [Parameters.MarshalJSON].
type ParametersLiteral struct {
	LogN int
	Q    int64 `json:",string"`
	B    int64 `json:",string"`
}

// Parameters represents a set of RLWE parameters: a [field.Field] and the
// degree N of the ring. Its fields are private and immutable. See
// [ParametersLiteral] for user-specified parameters.
type Parameters[I any] struct {
	ring *ring.Ring[I]
}

// NewParameters instantiates a set of RLWE parameters over the field f with
// ring degree 2^logN. The field is not validated, see [field.Validate].
func NewParameters[I any](f field.Field[I], logN int) (params Parameters[I], err error) {

	if logN < 0 || logN > ring.MaxLogN {
		return Parameters[I]{}, fmt.Errorf("cannot NewParameters: logN=%d is not in [0, %d]", logN, ring.MaxLogN)
	}

	var r *ring.Ring[I]
	if r, err = ring.NewRing(f, 1<<logN); err != nil {
		return Parameters[I]{}, fmt.Errorf("cannot NewParameters: %w", err)
	}

	return Parameters[I]{ring: r}, nil
}

// NewParametersFromLiteral instantiates a set of fixed-width RLWE parameters
// from a [ParametersLiteral] specification. Unlike [NewParameters], the
// resulting field is checked with [field.Validate].
func NewParametersFromLiteral(paramDef ParametersLiteral) (params Parameters[int64], err error) {

	f := field.NewModulus(paramDef.Q, paramDef.B)

	if paramDef.LogN < 0 || paramDef.LogN > ring.MaxLogN {
		return Parameters[int64]{}, fmt.Errorf("cannot NewParametersFromLiteral: logN=%d is not in [0, %d]", paramDef.LogN, ring.MaxLogN)
	}

	if err = field.Validate[int64](f, 1<<paramDef.LogN); err != nil {
		return Parameters[int64]{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	if logQ := bits.Len64(uint64(paramDef.Q)); logQ > MaxLiteralLogQ {
		return Parameters[int64]{}, fmt.Errorf("cannot NewParametersFromLiteral: Q has %d bits but at most %d are supported", logQ, MaxLiteralLogQ)
	}

	return NewParameters[int64](f, paramDef.LogN)
}

// N returns the ring degree.
func (p Parameters[I]) N() int {
	return p.ring.N()
}

// LogN returns the log2 of the ring degree.
func (p Parameters[I]) LogN() int {
	return p.ring.LogN()
}

// Field returns the field of the coefficients.
func (p Parameters[I]) Field() field.Field[I] {
	return p.ring.Field()
}

// Ring returns the polynomial ring Z_Q[X]/(X^N+1).
func (p Parameters[I]) Ring() *ring.Ring[I] {
	return p.ring
}

// Q returns the modulus.
func (p Parameters[I]) Q() I {
	return p.ring.Field().Q()
}

// B returns the noise bound.
func (p Parameters[I]) B() I {
	return p.ring.Field().B()
}

type parametersJSON struct {
	LogN int
	Q    string
	B    string
}

func (p Parameters[I]) toJSON() parametersJSON {
	f := p.Field()
	return parametersJSON{
		LogN: p.LogN(),
		Q:    f.Big(f.Q()).String(),
		B:    f.Big(f.B()).String(),
	}
}

// Equal returns true if p and other describe the same modulus, noise bound
// and ring degree.
func (p Parameters[I]) Equal(other Parameters[I]) bool {
	if p.ring == nil || other.ring == nil {
		return p.ring == other.ring
	}
	return cmp.Equal(p.toJSON(), other.toJSON())
}

// MarshalJSON returns a JSON representation of this parameter set. Q and B
// are written as decimal strings so that arbitrary-precision fields can be
// represented. See Marshal from the [encoding/json] package.
func (p Parameters[I]) MarshalJSON() ([]byte, error) {
	if p.ring == nil {
		return nil, fmt.Errorf("cannot MarshalJSON: parameters are not initialized")
	}
	return json.Marshal(p.toJSON())
}

// String returns the JSON representation of the parameters.
func (p Parameters[I]) String() string {
	b, err := p.MarshalJSON()
	if err != nil {
		return "Parameters{}"
	}
	return string(b)
}
