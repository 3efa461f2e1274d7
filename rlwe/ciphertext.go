package rlwe

import (
	"github.com/AlvinHon/ring-lwe-encryption/ring"
)

// Ciphertext is the pair (u, v) = (a*r + e1, b*r + e2 + floor(Q/2)*m).
type Ciphertext[I any] struct {
	params Parameters[I]
	U, V   ring.Poly[I]
}

// NewCiphertext returns a new [Ciphertext] with zero values.
func NewCiphertext[I any](params Parameters[I]) *Ciphertext[I] {
	r := params.Ring()
	return &Ciphertext[I]{params: params, U: r.NewPoly(), V: r.NewPoly()}
}

// Parameters returns the parameters of the ciphertext.
func (ct Ciphertext[I]) Parameters() Parameters[I] {
	return ct.params
}

// CopyNew creates a deep copy of the target ciphertext and returns it.
func (ct Ciphertext[I]) CopyNew() *Ciphertext[I] {
	return &Ciphertext[I]{params: ct.params, U: ct.U.CopyNew(), V: ct.V.CopyNew()}
}

// Equal performs a deep equal. It returns false if other is nil.
func (ct Ciphertext[I]) Equal(other *Ciphertext[I]) bool {
	if other == nil {
		return false
	}
	r := ct.params.Ring()
	return ct.params.Equal(other.params) && r.Equal(ct.U, other.U) && r.Equal(ct.V, other.V)
}
