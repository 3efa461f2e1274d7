package rlwe

import (
	"errors"
	"fmt"

	"github.com/AlvinHon/ring-lwe-encryption/ring"
	"github.com/AlvinHon/ring-lwe-encryption/utils/sampling"
)

// ErrInvalidMessage is wrapped by the errors returned when encrypting a
// message that is longer than the ring degree or that contains a value other
// than 0 or 1.
var ErrInvalidMessage = errors.New("invalid message")

// checkMessage returns an error wrapping ErrInvalidMessage if m cannot be
// encoded in the ring of params.
func checkMessage[I any](params Parameters[I], m []I) error {

	if len(m) > params.N() {
		return fmt.Errorf("%w: length %d exceeds the ring degree %d", ErrInvalidMessage, len(m), params.N())
	}

	f := params.Field()
	zero, one := f.Zero(), f.FromInt64(1)

	for i, v := range m {
		if f.Cmp(v, zero) != 0 && f.Cmp(v, one) != 0 {
			return fmt.Errorf("%w: m[%d]=%s is not a bit", ErrInvalidMessage, i, f.Big(v))
		}
	}

	return nil
}

// encode sets pt to floor(Q/2)*m, zero-padded to N coefficients.
func encode[I any](params Parameters[I], m []I, pt ring.Poly[I]) {

	f := params.Field()
	halfQ := params.Ring().HalfModulus()
	zero, one := f.Zero(), f.FromInt64(1)

	for i := range pt.Coeffs {
		if i < len(m) && f.Cmp(m[i], one) == 0 {
			pt.Coeffs[i] = halfQ
		} else {
			pt.Coeffs[i] = zero
		}
	}
}

// decode returns the bits of w: 1 where |w_i| > floor(Q/4), 0 elsewhere.
func decode[I any](params Parameters[I], w ring.Poly[I]) (m []I) {

	f := params.Field()
	quarterQ := f.Quo(params.Q(), f.FromInt64(4))
	zero, one := f.Zero(), f.FromInt64(1)

	m = make([]I, len(w.Coeffs))
	for i, c := range w.Coeffs {
		if f.Cmp(f.Abs(f.Modulo(c)), quarterQ) > 0 {
			m[i] = one
		} else {
			m[i] = zero
		}
	}

	return
}

// RandomMessage returns a message of the given length whose values are
// uniformly random bits read from prng. length must be in [0, N].
func RandomMessage[I any](params Parameters[I], prng sampling.PRNG, length int) (m []I, err error) {

	if length < 0 || length > params.N() {
		return nil, fmt.Errorf("cannot RandomMessage: %w: length %d is not in [0, %d]", ErrInvalidMessage, length, params.N())
	}

	var bits []uint8
	if bits, err = sampling.RandBits(prng, length); err != nil {
		return nil, fmt.Errorf("cannot RandomMessage: %w", err)
	}

	f := params.Field()

	m = make([]I, length)
	for i, b := range bits {
		m[i] = f.FromInt64(int64(b))
	}

	return
}
