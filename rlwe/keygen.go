package rlwe

import (
	"fmt"

	"github.com/AlvinHon/ring-lwe-encryption/ring"
	"github.com/AlvinHon/ring-lwe-encryption/utils/sampling"
)

// KeyGen generates a new key pair:
//
//   - a is sampled uniformly in the ring,
//   - s and e are sampled with coefficients uniform in [-B, B],
//   - b = a*s + e.
//
// The returned error is non-nil only if prng fails.
func KeyGen[I any](params Parameters[I], prng sampling.PRNG) (ek *EncryptionKey[I], dk *DecryptionKey[I], err error) {

	r := params.Ring()

	ek = NewEncryptionKey(params)
	dk = NewDecryptionKey(params)

	if err = ring.NewUniformSampler(prng, r).Read(ek.A); err != nil {
		return nil, nil, fmt.Errorf("cannot KeyGen: %w", err)
	}

	noise := ring.NewBoundedSampler(prng, r)

	if err = noise.Read(dk.S); err != nil {
		return nil, nil, fmt.Errorf("cannot KeyGen: %w", err)
	}

	var e ring.Poly[I]
	if e, err = noise.ReadNew(); err != nil {
		return nil, nil, fmt.Errorf("cannot KeyGen: %w", err)
	}

	r.Mul(ek.A, dk.S, ek.B)
	r.Add(ek.B, e, ek.B)

	return
}
