package rlwe

import (
	"github.com/AlvinHon/ring-lwe-encryption/field"
	"github.com/AlvinHon/ring-lwe-encryption/utils/sampling"
)

// StandardLogN is the log2 of the ring degree of the standard parameters.
const StandardLogN = 8

// StandardParameters returns the standard parameter set: the [field.FIPS203]
// field (int32, Q = 3329, B = 1) and N = 256.
func StandardParameters() Parameters[int32] {
	params, err := NewParameters[int32](field.FIPS203{}, StandardLogN)
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return params
}

// Standard generates a key pair with the [StandardParameters].
func Standard(prng sampling.PRNG) (ek *EncryptionKey[int32], dk *DecryptionKey[int32], err error) {
	return KeyGen(StandardParameters(), prng)
}
