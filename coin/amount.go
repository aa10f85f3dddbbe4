/*
Package coin provides overflow checked arithmetic for amounts of the payment
asset and of the internal income units.

All amounts are int64. Every operation that could leave the int64 range
returns ErrOverflow instead of wrapping around, and every division floors.
*/
package coin

import (
	"math"
	"math/bits"

	"github.com/retok/revenue/errors"
)

// MaxAmount is the biggest amount that can be represented.
const MaxAmount = math.MaxInt64

// Add returns a + b. Both values must not be negative.
func Add(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, errors.Wrap(errors.ErrInvalidAmount, "negative amount")
	}
	c := a + b
	if c < a {
		return 0, errors.ErrOverflow
	}
	return c, nil
}

// Sub returns a - b. It fails with ErrInsufficientFunds when b is greater
// than a, so the result is never negative.
func Sub(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, errors.Wrap(errors.ErrInvalidAmount, "negative amount")
	}
	if b > a {
		return 0, errors.Wrapf(errors.ErrInsufficientFunds, "%d is less than %d", a, b)
	}
	return a - b, nil
}

// Mul multiplies two int64 numbers. If the result overflows the int64 size
// the ErrOverflow is returned.
func Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, errors.ErrOverflow
	}
	c := a * b
	if c/a != b {
		return 0, errors.ErrOverflow
	}
	return c, nil
}

// MulDiv returns floor(a * b / d) computed with a 128 bit intermediate
// product, so a * b may exceed the int64 range as long as the result does
// not. All arguments must not be negative and d must not be zero.
func MulDiv(a, b, d int64) (int64, error) {
	if a < 0 || b < 0 || d < 0 {
		return 0, errors.Wrap(errors.ErrInvalidAmount, "negative operand")
	}
	if d == 0 {
		return 0, errors.Wrap(errors.ErrInvalidInput, "division by zero")
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	// Div64 panics when the quotient does not fit in 64 bits.
	if hi >= uint64(d) {
		return 0, errors.ErrOverflow
	}
	q, _ := bits.Div64(hi, lo, uint64(d))
	if q > MaxAmount {
		return 0, errors.ErrOverflow
	}
	return int64(q), nil
}

// Sum adds all amounts together.
func Sum(amounts ...int64) (int64, error) {
	var total int64
	for _, a := range amounts {
		var err error
		if total, err = Add(total, a); err != nil {
			return 0, err
		}
	}
	return total, nil
}
