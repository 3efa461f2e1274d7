// Package field defines the integer field Z_Q the encryption scheme computes over.
//
// A [Field] bundles an integer backend ([Arithmetic]), the prime modulus Q, the
// noise bound B and the centered reduction Modulo. Two backends are provided:
// [Int] for fixed-width signed integers and [BigInt] for arbitrary precision.
// Callers can plug their own modulus by implementing [Field] on top of either.
//
// The scheme assumes, without checking it on the hot path, that Q is an odd
// prime and that Modulo maps any integer to its representative in (-Q/2, Q/2].
// [Validate] can be used to check a field before use.
package field

import (
	"math/big"
)

// Arithmetic is the set of integer operations a ring computes with.
// Implementations must not mutate their operands: results are always
// returned as new values.
type Arithmetic[I any] interface {
	// Zero returns the additive identity.
	Zero() I
	// FromInt64 converts x to I.
	FromInt64(x int64) I
	// Int64 returns x as an int64 and whether the conversion is exact.
	Int64(x I) (int64, bool)
	// FromBig converts x to I. The result is undefined if x does not fit.
	FromBig(x *big.Int) I
	// Big returns x as a new *big.Int.
	Big(x I) *big.Int

	Add(x, y I) I
	Sub(x, y I) I
	Mul(x, y I) I
	Neg(x I) I
	Abs(x I) I
	// Quo returns x/y truncated towards zero.
	Quo(x, y I) I
	// Cmp returns -1, 0 or +1 depending on whether x < y, x == y or x > y.
	Cmp(x, y I) int
}

// Field is the customization point of the scheme: an integer backend together
// with the modulus Q, the noise bound B and the centered modular reduction.
type Field[I any] interface {
	Arithmetic[I]

	// Q returns the prime modulus.
	Q() I

	// B returns the bound of the small-noise distribution, i.e. noise
	// coefficients are drawn in [-B, B].
	B() I

	// Modulo returns the representative of x modulo Q in (-Q/2, Q/2].
	Modulo(x I) I
}
