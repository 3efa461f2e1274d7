package rlwe

import (
	"bufio"
	"fmt"
	"io"

	"github.com/AlvinHon/ring-lwe-encryption/ring"
	"github.com/AlvinHon/ring-lwe-encryption/utils/buffer"
)

// Keys and ciphertexts are serialized as the concatenation of their
// polynomials, see [ring.Ring.WritePoly]. The parameters are not serialized:
// the receiving object must be created with the same parameters as the
// serialized one.

func writePolys[I any](r *ring.Ring[I], w io.Writer, polys ...ring.Poly[I]) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		for _, p := range polys {
			var inc int64
			if inc, err = r.WritePoly(w, p); err != nil {
				return n + inc, fmt.Errorf("cannot WriteTo: %w", err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return writePolys(r, bufio.NewWriter(w), polys...)
	}
}

func readPolys[I any](r *ring.Ring[I], rd io.Reader, polys ...ring.Poly[I]) (n int64, err error) {
	switch rd := rd.(type) {
	case buffer.Reader:

		for _, p := range polys {
			var inc int64
			if inc, err = r.ReadPoly(rd, p); err != nil {
				return n + inc, fmt.Errorf("cannot ReadFrom: %w", err)
			}
			n += inc
		}

		return

	default:
		return readPolys(r, bufio.NewReader(rd), polys...)
	}
}

func marshalPolys[I any](r *ring.Ring[I], polys ...ring.Poly[I]) (p []byte, err error) {
	buf := buffer.NewBufferSize(len(polys) * r.PolyBinarySize())
	_, err = writePolys(r, buf, polys...)
	return buf.Bytes(), err
}

func unmarshalPolys[I any](r *ring.Ring[I], p []byte, polys ...ring.Poly[I]) (err error) {

	if size := len(polys) * r.PolyBinarySize(); len(p) != size {
		return fmt.Errorf("cannot UnmarshalBinary: expected %d bytes but got %d", size, len(p))
	}

	_, err = readPolys(r, buffer.NewBuffer(p), polys...)
	return
}

// BinarySize returns the serialized size of the object in bytes.
func (ek EncryptionKey[I]) BinarySize() int {
	return 2 * ek.params.Ring().PolyBinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer),
// it will be wrapped into a bufio.Writer.
func (ek EncryptionKey[I]) WriteTo(w io.Writer) (n int64, err error) {
	return writePolys(ek.params.Ring(), w, ek.A, ek.B)
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer),
// it will be wrapped into a bufio.Reader.
func (ek *EncryptionKey[I]) ReadFrom(r io.Reader) (n int64, err error) {
	return readPolys(ek.params.Ring(), r, ek.A, ek.B)
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (ek EncryptionKey[I]) MarshalBinary() (p []byte, err error) {
	return marshalPolys(ek.params.Ring(), ek.A, ek.B)
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (ek *EncryptionKey[I]) UnmarshalBinary(p []byte) (err error) {
	return unmarshalPolys(ek.params.Ring(), p, ek.A, ek.B)
}

// BinarySize returns the serialized size of the object in bytes.
func (dk DecryptionKey[I]) BinarySize() int {
	return dk.params.Ring().PolyBinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (dk DecryptionKey[I]) WriteTo(w io.Writer) (n int64, err error) {
	return writePolys(dk.params.Ring(), w, dk.S)
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
func (dk *DecryptionKey[I]) ReadFrom(r io.Reader) (n int64, err error) {
	return readPolys(dk.params.Ring(), r, dk.S)
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (dk DecryptionKey[I]) MarshalBinary() (p []byte, err error) {
	return marshalPolys(dk.params.Ring(), dk.S)
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (dk *DecryptionKey[I]) UnmarshalBinary(p []byte) (err error) {
	return unmarshalPolys(dk.params.Ring(), p, dk.S)
}

// BinarySize returns the serialized size of the object in bytes.
func (ct Ciphertext[I]) BinarySize() int {
	return 2 * ct.params.Ring().PolyBinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (ct Ciphertext[I]) WriteTo(w io.Writer) (n int64, err error) {
	return writePolys(ct.params.Ring(), w, ct.U, ct.V)
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
func (ct *Ciphertext[I]) ReadFrom(r io.Reader) (n int64, err error) {
	return readPolys(ct.params.Ring(), r, ct.U, ct.V)
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (ct Ciphertext[I]) MarshalBinary() (p []byte, err error) {
	return marshalPolys(ct.params.Ring(), ct.U, ct.V)
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (ct *Ciphertext[I]) UnmarshalBinary(p []byte) (err error) {
	return unmarshalPolys(ct.params.Ring(), p, ct.U, ct.V)
}
