package field

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidField is wrapped by the errors returned by [Validate].
var ErrInvalidField = errors.New("invalid field")

// primalityRounds is the number of Miller-Rabin rounds used by [Validate].
const primalityRounds = 32

// WorstCaseNoise returns 2*n*B^2 + B, the largest magnitude the decryption
// noise e*r - e1*s + e2 can reach in a ring of degree n.
func WorstCaseNoise[I any](f Field[I], n int) *big.Int {
	b := f.Big(f.B())
	bound := new(big.Int).Mul(b, b)
	bound.Mul(bound, big.NewInt(2*int64(n)))
	return bound.Add(bound, b)
}

// DecodingMargin returns the smallest noise magnitude that can flip a decoded
// bit: min(floor(Q/4)+1, floor(Q/2)-floor(Q/4)).
func DecodingMargin[I any](f Field[I]) *big.Int {
	q := f.Big(f.Q())
	q2 := new(big.Int).Rsh(q, 1)
	q4 := new(big.Int).Rsh(q, 2)
	zeroSide := new(big.Int).Add(q4, big.NewInt(1))
	oneSide := new(big.Int).Sub(q2, q4)
	if zeroSide.Cmp(oneSide) < 0 {
		return zeroSide
	}
	return oneSide
}

// Validate checks the contract of f for a ring of degree n:
//   - Q is an odd prime,
//   - B is positive,
//   - Modulo returns centered and idempotent representatives,
//   - the worst-case decryption noise is below the decoding margin, which
//     makes decryption always correct.
//
// Validate is not called when generating keys, encrypting or decrypting.
func Validate[I any](f Field[I], n int) (err error) {

	q := f.Big(f.Q())
	b := f.Big(f.B())

	if q.Cmp(big.NewInt(2)) <= 0 || q.Bit(0) == 0 || !q.ProbablyPrime(primalityRounds) {
		return fmt.Errorf("%w: Q=%s is not an odd prime", ErrInvalidField, q)
	}

	if b.Sign() <= 0 {
		return fmt.Errorf("%w: B=%s must be positive", ErrInvalidField, b)
	}

	if err = checkModulo(f, q, b); err != nil {
		return err
	}

	if nb, t := WorstCaseNoise(f, n), DecodingMargin(f); nb.Cmp(t) >= 0 {
		return fmt.Errorf("%w: worst-case noise 2*N*B^2+B=%s is not below the decoding margin %s (N=%d)", ErrInvalidField, nb, t, n)
	}

	return nil
}

func checkModulo[I any](f Field[I], q, b *big.Int) error {

	half := new(big.Int).Rsh(q, 1)

	probes := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(-1),
		new(big.Int).Set(b),
		new(big.Int).Neg(b),
		new(big.Int).Set(half),
		new(big.Int).Add(half, big.NewInt(1)),
		new(big.Int).Neg(half),
		new(big.Int).Sub(new(big.Int).Neg(half), big.NewInt(1)),
		new(big.Int).Set(q),
		new(big.Int).Neg(q),
		new(big.Int).Sub(q, big.NewInt(1)),
		new(big.Int).Add(q, half),
		new(big.Int).Mul(half, half),
		new(big.Int).Neg(new(big.Int).Mul(half, half)),
	}

	twice := new(big.Int)
	diff := new(big.Int)

	for _, p := range probes {

		x := f.FromBig(p)

		// skips probes that do not fit in the backend
		if f.Big(x).Cmp(p) != 0 {
			continue
		}

		y := f.Modulo(x)
		yb := f.Big(y)

		twice.Lsh(yb, 1)
		if twice.Cmp(q) > 0 || twice.Cmp(new(big.Int).Neg(q)) <= 0 {
			return fmt.Errorf("%w: Modulo(%s)=%s is not in (-Q/2, Q/2]", ErrInvalidField, p, yb)
		}

		if diff.Sub(p, yb).Mod(diff, q).Sign() != 0 {
			return fmt.Errorf("%w: Modulo(%s)=%s is not congruent modulo Q", ErrInvalidField, p, yb)
		}

		if f.Cmp(f.Modulo(y), y) != 0 {
			return fmt.Errorf("%w: Modulo is not idempotent on %s", ErrInvalidField, yb)
		}
	}

	return nil
}
