package field

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// Int is the [Arithmetic] backend for fixed-width signed integers.
// Overflow follows Go's two's complement wrap-around: the field must be
// chosen such that Q^2 fits in T.
type Int[T constraints.Signed] struct{}

func (Int[T]) Zero() T {
	return 0
}

func (Int[T]) FromInt64(x int64) T {
	return T(x)
}

func (Int[T]) Int64(x T) (int64, bool) {
	return int64(x), true
}

func (Int[T]) FromBig(x *big.Int) T {
	return T(x.Int64())
}

func (Int[T]) Big(x T) *big.Int {
	return big.NewInt(int64(x))
}

func (Int[T]) Add(x, y T) T {
	return x + y
}

func (Int[T]) Sub(x, y T) T {
	return x - y
}

func (Int[T]) Mul(x, y T) T {
	return x * y
}

func (Int[T]) Neg(x T) T {
	return -x
}

func (Int[T]) Abs(x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func (Int[T]) Quo(x, y T) T {
	return x / y
}

func (Int[T]) Cmp(x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Center returns the representative of x modulo q in (-q/2, q/2].
// q must be positive.
func Center[T constraints.Signed](x, q T) T {
	a := x % q
	if a < 0 {
		a += q
	}
	if a > q/2 {
		a -= q
	}
	return a
}

// Modulus is a [Field] over a fixed-width signed integer type.
type Modulus[T constraints.Signed] struct {
	Int[T]
	q, b T
}

// NewModulus returns the [Modulus] field with modulus q and noise bound b.
// The parameters are not validated, see [Validate].
func NewModulus[T constraints.Signed](q, b T) Modulus[T] {
	return Modulus[T]{q: q, b: b}
}

func (m Modulus[T]) Q() T {
	return m.q
}

func (m Modulus[T]) B() T {
	return m.b
}

func (m Modulus[T]) Modulo(x T) T {
	return Center(x, m.q)
}

// FIPS203 is a field over int32 with the prime modulus Q = 3329 of
// FIPS 203 (ML-KEM) and noise bound B = 1.
type FIPS203 struct {
	Int[int32]
}

const (
	// FIPS203Q is the modulus of [FIPS203].
	FIPS203Q int32 = 3329
	// FIPS203B is the noise bound of [FIPS203].
	FIPS203B int32 = 1
)

func (FIPS203) Q() int32 {
	return FIPS203Q
}

func (FIPS203) B() int32 {
	return FIPS203B
}

func (FIPS203) Modulo(x int32) int32 {
	return Center(x, FIPS203Q)
}
