package rlwe

import (
	"fmt"

	"github.com/AlvinHon/ring-lwe-encryption/ring"
	"github.com/AlvinHon/ring-lwe-encryption/utils/sampling"
)

// Encrypt encrypts the bit message m, of length at most N, and returns the
// ciphertext (u, v) with
//
//	u = a*r + e1
//	v = b*r + e2 + floor(Q/2)*m
//
// where r, e1 and e2 are fresh polynomials with coefficients uniform in
// [-B, B] read from prng.
//
// The message is checked before any randomness is consumed: the returned
// error wraps [ErrInvalidMessage] if m is too long or is not made of bits.
// Any other error is a failure of prng.
func (ek EncryptionKey[I]) Encrypt(prng sampling.PRNG, m []I) (ct *Ciphertext[I], err error) {

	params := ek.params

	if err = checkMessage(params, m); err != nil {
		return nil, fmt.Errorf("cannot Encrypt: %w", err)
	}

	r := params.Ring()
	noise := ring.NewBoundedSampler(prng, r)

	var rPoly, e1, e2 ring.Poly[I]

	if rPoly, err = noise.ReadNew(); err != nil {
		return nil, fmt.Errorf("cannot Encrypt: %w", err)
	}

	if e1, err = noise.ReadNew(); err != nil {
		return nil, fmt.Errorf("cannot Encrypt: %w", err)
	}

	if e2, err = noise.ReadNew(); err != nil {
		return nil, fmt.Errorf("cannot Encrypt: %w", err)
	}

	ct = NewCiphertext(params)

	// u = a*r + e1
	r.Mul(ek.A, rPoly, ct.U)
	r.Add(ct.U, e1, ct.U)

	// v = b*r + e2 + floor(Q/2)*m
	pt := r.NewPoly()
	encode(params, m, pt)

	r.Mul(ek.B, rPoly, ct.V)
	r.Add(ct.V, e2, ct.V)
	r.Add(ct.V, pt, ct.V)

	return
}
