package rangespec

import (
	"math"

	"github.com/iotaledger/hive.go/constraints"
)

// Numeric is the default Spec for the built-in numeric types. It treats +Inf and -Inf as the two infinities (integer
// types simply never hit that case). NaN is not part of the order, the range constructors reject it.
type Numeric[T constraints.Numeric] struct{}

// NewNumeric returns the Spec for the numeric type T.
func NewNumeric[T constraints.Numeric]() Numeric[T] {
	return Numeric[T]{}
}

// Unit returns 1.
func (Numeric[T]) Unit() T {
	return 1
}

// Plus returns a + b.
func (Numeric[T]) Plus(a, b T) T {
	return a + b
}

// Minus returns a - b.
func (Numeric[T]) Minus(a, b T) T {
	return a - b
}

// Min returns the smaller one of both values.
func (n Numeric[T]) Min(a, b T) T {
	if n.IsGreaterThan(a, b) {
		return b
	}

	return a
}

// Max returns the larger one of both values.
func (n Numeric[T]) Max(a, b T) T {
	if n.IsGreaterThan(a, b) {
		return a
	}

	return b
}

// Compare returns 0 if both values are equal, -1 if a < b and 1 if a > b.
func (Numeric[T]) Compare(a, b T) int {
	switch {
	case a == b:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

// IsEqual returns true if both values are equal.
func (Numeric[T]) IsEqual(a, b T) bool {
	return a == b
}

// IsGreaterThan returns true if value > than.
func (Numeric[T]) IsGreaterThan(value, than T) bool {
	return value > than
}

// IsLessThan returns true if value < than.
func (Numeric[T]) IsLessThan(value, than T) bool {
	return value < than
}

// IsGreaterOrEqualTo returns true if value >= thanTo.
func (Numeric[T]) IsGreaterOrEqualTo(value, thanTo T) bool {
	return value >= thanTo
}

// IsLessOrEqualTo returns true if value <= thanTo.
func (Numeric[T]) IsLessOrEqualTo(value, thanTo T) bool {
	return value <= thanTo
}

// IsInfinity returns true for +Inf and -Inf.
func (Numeric[T]) IsInfinity(value T) bool {
	return math.IsInf(float64(value), 0)
}

var _ Spec[float64] = Numeric[float64]{}
