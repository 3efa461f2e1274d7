package rlwe

import (
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/AlvinHon/ring-lwe-encryption/ring"
)

// EncryptionKey is the public key (a, b = a*s + e) of the scheme.
type EncryptionKey[I any] struct {
	params Parameters[I]
	A, B   ring.Poly[I]
}

// DecryptionKey is the secret key s of the scheme.
type DecryptionKey[I any] struct {
	params Parameters[I]
	S      ring.Poly[I]
}

// NewEncryptionKey returns a new [EncryptionKey] with zero values.
func NewEncryptionKey[I any](params Parameters[I]) *EncryptionKey[I] {
	r := params.Ring()
	return &EncryptionKey[I]{params: params, A: r.NewPoly(), B: r.NewPoly()}
}

// NewDecryptionKey returns a new [DecryptionKey] with zero values.
func NewDecryptionKey[I any](params Parameters[I]) *DecryptionKey[I] {
	return &DecryptionKey[I]{params: params, S: params.Ring().NewPoly()}
}

// Parameters returns the parameters of the key.
func (ek EncryptionKey[I]) Parameters() Parameters[I] {
	return ek.params
}

// Parameters returns the parameters of the key.
func (dk DecryptionKey[I]) Parameters() Parameters[I] {
	return dk.params
}

// CopyNew creates a deep copy of the target key and returns it.
func (ek EncryptionKey[I]) CopyNew() *EncryptionKey[I] {
	return &EncryptionKey[I]{params: ek.params, A: ek.A.CopyNew(), B: ek.B.CopyNew()}
}

// CopyNew creates a deep copy of the target key and returns it.
func (dk DecryptionKey[I]) CopyNew() *DecryptionKey[I] {
	return &DecryptionKey[I]{params: dk.params, S: dk.S.CopyNew()}
}

// Equal performs a deep equal. It returns false if other is nil.
func (ek EncryptionKey[I]) Equal(other *EncryptionKey[I]) bool {
	if other == nil {
		return false
	}
	r := ek.params.Ring()
	return ek.params.Equal(other.params) && r.Equal(ek.A, other.A) && r.Equal(ek.B, other.B)
}

// Equal performs a deep equal. It returns false if other is nil.
func (dk DecryptionKey[I]) Equal(other *DecryptionKey[I]) bool {
	if other == nil {
		return false
	}
	return dk.params.Equal(other.params) && dk.params.Ring().Equal(dk.S, other.S)
}

// Fingerprint returns the BLAKE3-256 digest of the binary serialization of
// the key. Two keys have the same fingerprint if and only if they are equal
// (up to hash collisions) and share the same modulus size.
func (ek EncryptionKey[I]) Fingerprint() (digest [32]byte) {

	data, err := ek.MarshalBinary()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot Fingerprint: %w", err))
	}

	return blake3.Sum256(data)
}
