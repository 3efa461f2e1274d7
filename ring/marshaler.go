package ring

import (
	"bufio"
	"fmt"
	"io"
	"math/big"

	"github.com/AlvinHon/ring-lwe-encryption/utils/buffer"
)

// CoefficientSize returns the size in bytes of a serialized coefficient,
// i.e. the byte length of Q.
func (r *Ring[I]) CoefficientSize() int {
	return r.coeffBytes
}

// PolyBinarySize returns the serialized size of a polynomial of the ring in bytes.
func (r *Ring[I]) PolyBinarySize() int {
	return r.n * r.coeffBytes
}

// WritePoly writes pol on w. Each coefficient is encoded as its residue in
// [0, Q) in big-endian order on CoefficientSize bytes.
//
// Unless w implements the buffer.Writer interface (see utils/buffer),
// it will be wrapped into a bufio.Writer.
func (r *Ring[I]) WritePoly(w io.Writer, pol Poly[I]) (n int64, err error) {

	if len(pol.Coeffs) != r.n {
		return 0, fmt.Errorf("cannot WritePoly: polynomial has %d coefficients but the ring degree is %d", len(pol.Coeffs), r.n)
	}

	switch w := w.(type) {
	case buffer.Writer:

		f := r.field

		small := r.q.BitLen() < 64
		q := r.q.Int64()
		residue := new(big.Int)

		return buffer.WriteWords(w, r.coeffBytes, r.n, func(i int, word []byte) {

			if v, ok := f.Int64(pol.Coeffs[i]); ok && small {

				if v %= q; v < 0 {
					v += q
				}

				u := uint64(v)
				for k := len(word) - 1; k >= 0; k-- {
					word[k] = byte(u)
					u >>= 8
				}

				return
			}

			residue.Mod(f.Big(pol.Coeffs[i]), r.q).FillBytes(word)
		})

	default:
		bw := bufio.NewWriter(w)
		if n, err = r.WritePoly(bw, pol); err != nil {
			return
		}
		return n, bw.Flush()
	}
}

// ReadPoly reads a polynomial written by WritePoly from rd on pol.
// Coefficients that are not reduced modulo Q are rejected.
//
// Unless rd implements the buffer.Reader interface (see utils/buffer),
// it will be wrapped into a bufio.Reader.
func (r *Ring[I]) ReadPoly(rd io.Reader, pol Poly[I]) (n int64, err error) {

	if len(pol.Coeffs) != r.n {
		return 0, fmt.Errorf("cannot ReadPoly: polynomial has %d coefficients but the ring degree is %d", len(pol.Coeffs), r.n)
	}

	switch rd := rd.(type) {
	case buffer.Reader:

		f := r.field
		v := new(big.Int)

		return buffer.ReadWords(rd, r.coeffBytes, r.n, func(i int, word []byte) error {

			if v.SetBytes(word).Cmp(r.q) >= 0 {
				return fmt.Errorf("cannot ReadPoly: coefficient %d is not reduced modulo Q", i)
			}

			pol.Coeffs[i] = f.Modulo(f.FromBig(v))

			return nil
		})

	default:
		return r.ReadPoly(bufio.NewReader(rd), pol)
	}
}
