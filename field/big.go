package field

import (
	"math/big"
)

// BigInt is the arbitrary-precision [Arithmetic] backend.
// Every operation allocates its result; operands are never modified, which
// lets polynomials share coefficient values safely.
type BigInt struct{}

func (BigInt) Zero() *big.Int {
	return new(big.Int)
}

func (BigInt) FromInt64(x int64) *big.Int {
	return big.NewInt(x)
}

func (BigInt) Int64(x *big.Int) (int64, bool) {
	return x.Int64(), x.IsInt64()
}

func (BigInt) FromBig(x *big.Int) *big.Int {
	return new(big.Int).Set(x)
}

func (BigInt) Big(x *big.Int) *big.Int {
	return new(big.Int).Set(x)
}

func (BigInt) Add(x, y *big.Int) *big.Int {
	return new(big.Int).Add(x, y)
}

func (BigInt) Sub(x, y *big.Int) *big.Int {
	return new(big.Int).Sub(x, y)
}

func (BigInt) Mul(x, y *big.Int) *big.Int {
	return new(big.Int).Mul(x, y)
}

func (BigInt) Neg(x *big.Int) *big.Int {
	return new(big.Int).Neg(x)
}

func (BigInt) Abs(x *big.Int) *big.Int {
	return new(big.Int).Abs(x)
}

func (BigInt) Quo(x, y *big.Int) *big.Int {
	return new(big.Int).Quo(x, y)
}

func (BigInt) Cmp(x, y *big.Int) int {
	return x.Cmp(y)
}

// CenterBig returns the representative of x modulo q in (-q/2, q/2] as a new
// *big.Int. q must be positive.
func CenterBig(x, q *big.Int) *big.Int {
	a := new(big.Int).Mod(x, q)
	half := new(big.Int).Rsh(q, 1)
	if a.Cmp(half) > 0 {
		a.Sub(a, q)
	}
	return a
}

// BigModulus is a [Field] over arbitrary-precision integers.
type BigModulus struct {
	BigInt
	q, b *big.Int
}

// NewBigModulus returns the [BigModulus] field with modulus q and noise
// bound b. The parameters are copied and not validated, see [Validate].
func NewBigModulus(q, b *big.Int) BigModulus {
	return BigModulus{
		q: new(big.Int).Set(q),
		b: new(big.Int).Set(b),
	}
}

func (m BigModulus) Q() *big.Int {
	return new(big.Int).Set(m.q)
}

func (m BigModulus) B() *big.Int {
	return new(big.Int).Set(m.b)
}

func (m BigModulus) Modulo(x *big.Int) *big.Int {
	return CenterBig(x, m.q)
}
