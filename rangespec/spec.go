package rangespec

import "github.com/iotaledger/hive.go/ierrors"

// ErrArithmeticUnsupported is raised by the arithmetic methods of a Spec that was created without arithmetic.
var ErrArithmeticUnsupported = ierrors.New("arithmetic is not supported by this spec")

// Spec describes the knowledge that is required to build ranges over values of an arbitrary type T.
//
// Implementations need to define a strict total order that is consistent across Compare and the boolean predicates, i.e.
// IsGreaterOrEqualTo(a, b) == IsEqual(a, b) || IsGreaterThan(a, b) (and likewise for the other predicates).
type Spec[T any] interface {
	// Unit returns the smallest additive step of the type.
	Unit() T

	// Plus returns the sum of a and b.
	Plus(a, b T) T

	// Minus returns the difference of a and b.
	Minus(a, b T) T

	// Min returns the smaller one of both values.
	Min(a, b T) T

	// Max returns the larger one of both values.
	Max(a, b T) T

	// Compare returns 0 if both values are equal, a negative number if a < b and a positive number if a > b.
	//
	// Equal infinities have to be reported as equal.
	Compare(a, b T) int

	// IsEqual returns true if both values are equal.
	IsEqual(a, b T) bool

	// IsGreaterThan returns true if value > than.
	IsGreaterThan(value, than T) bool

	// IsLessThan returns true if value < than.
	IsLessThan(value, than T) bool

	// IsGreaterOrEqualTo returns true if value >= thanTo.
	IsGreaterOrEqualTo(value, thanTo T) bool

	// IsLessOrEqualTo returns true if value <= thanTo.
	IsLessOrEqualTo(value, thanTo T) bool

	// IsInfinity returns true for both, the positive and the negative infinity.
	//
	// A type does not need to have two infinities (or any at all).
	IsInfinity(value T) bool
}
