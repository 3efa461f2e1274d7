package rlwe

import (
	"fmt"

	"github.com/AlvinHon/ring-lwe-encryption/ring"
)

// Decrypt returns the N bits encoded in ct: bit i is 1 if the i-th
// coefficient of w = v - u*s has absolute value greater than floor(Q/4).
//
// Decryption cannot detect a wrong key or a tampered ciphertext, both yield
// unrelated bits. Callers that encrypted a message shorter than N truncate
// the result.
func (dk DecryptionKey[I]) Decrypt(ct *Ciphertext[I]) (m []I) {
	return decode(dk.params, dk.phase(ct))
}

// phase returns w = v - u*s.
func (dk DecryptionKey[I]) phase(ct *Ciphertext[I]) (w ring.Poly[I]) {

	if ct.U.N() != dk.S.N() || ct.V.N() != dk.S.N() {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot Decrypt: ciphertext degree (%d, %d) does not match key degree %d", ct.U.N(), ct.V.N(), dk.S.N()))
	}

	r := dk.params.Ring()

	w = r.NewPoly()
	r.Mul(ct.U, dk.S, w)
	r.Sub(ct.V, w, w)

	return
}
