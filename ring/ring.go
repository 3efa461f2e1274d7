// Package ring implements arithmetic in the polynomial ring Z_Q[X]/(X^N+1)
// over the integer backends of package field.
//
// Coefficients are kept as centered representatives in (-Q/2, Q/2]. Products
// are computed with an NTT when the modulus allows it, and with a negacyclic
// schoolbook convolution otherwise.
package ring

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/AlvinHon/ring-lwe-encryption/field"
)

// MaxLogN is the log2 of the largest supported ring degree.
const MaxLogN = 17

// Ring is the polynomial ring Z_Q[X]/(X^N+1) for a power-of-two N.
// A Ring is read-only after creation and can be shared between goroutines.
type Ring[I any] struct {
	field field.Field[I]

	n    int
	logN int

	// q is the modulus as a big integer, halfQ is floor(Q/2).
	q     *big.Int
	halfQ I

	// size in bytes of a serialized coefficient
	coeffBytes int

	// nil when the modulus does not support the NTT
	ntt *nttEngine
}

// NewRing creates a new Ring of degree N over the field f.
// N must be a power of two in [1, 2^MaxLogN].
func NewRing[I any](f field.Field[I], N int) (r *Ring[I], err error) {

	if N < 1 || N&(N-1) != 0 {
		return nil, fmt.Errorf("invalid ring degree: must be a power of 2 but is %d", N)
	}

	logN := bits.Len64(uint64(N)) - 1

	if logN > MaxLogN {
		return nil, fmt.Errorf("invalid ring degree: logN=%d exceeds MaxLogN=%d", logN, MaxLogN)
	}

	q := f.Big(f.Q())

	if q.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("invalid modulus: Q=%s must be at least 2", q)
	}

	r = &Ring[I]{
		field:      f,
		n:          N,
		logN:       logN,
		q:          q,
		halfQ:      f.Quo(f.Q(), f.FromInt64(2)),
		coeffBytes: (q.BitLen() + 7) / 8,
	}

	// The schoolbook convolution is used whenever the NTT cannot be instantiated.
	r.ntt, _ = newNTTEngine(N, q)

	return r, nil
}

// N returns the degree of the ring.
func (r *Ring[I]) N() int {
	return r.n
}

// LogN returns log2 of the degree of the ring.
func (r *Ring[I]) LogN() int {
	return r.logN
}

// Field returns the field of the coefficients.
func (r *Ring[I]) Field() field.Field[I] {
	return r.field
}

// Modulus returns a copy of Q as a big integer.
func (r *Ring[I]) Modulus() *big.Int {
	return new(big.Int).Set(r.q)
}

// HalfModulus returns floor(Q/2).
func (r *Ring[I]) HalfModulus() I {
	return r.halfQ
}

// NTTEnabled returns true if products are computed with the NTT.
func (r *Ring[I]) NTTEnabled() bool {
	return r.ntt != nil
}
