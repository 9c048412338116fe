package rangespec

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/runtime/options"
)

// Custom is a Spec that derives all of its predicates from a single comparator. It is the starting point for ranges
// over user defined types like strings, versions or timestamps.
type Custom[T any] struct {
	compare    func(a, b T) int
	isInfinity func(value T) bool
	unit       *T
	plus       func(a, b T) T
	minus      func(a, b T) T
}

// New creates a Custom Spec from the given comparator.
//
// Care needs to be taken around infinities: the comparator has to return 0 for two equal infinities.
func New[T any](compare func(a, b T) int, opts ...options.Option[Custom[T]]) *Custom[T] {
	return options.Apply(&Custom[T]{
		compare:    compare,
		isInfinity: func(T) bool { return false },
	}, opts)
}

// Ordered creates a Custom Spec for any ordered type that has no infinities (e.g. strings).
func Ordered[T constraints.Ordered](opts ...options.Option[Custom[T]]) *Custom[T] {
	return New[T](lo.Comparator[T], opts...)
}

// Unit returns the configured unit.
func (c *Custom[T]) Unit() T {
	if c.unit == nil {
		panic(ierrors.Wrap(ErrArithmeticUnsupported, "failed to retrieve unit"))
	}

	return *c.unit
}

// Plus returns a + b using the configured arithmetic.
func (c *Custom[T]) Plus(a, b T) T {
	if c.plus == nil {
		panic(ierrors.Wrap(ErrArithmeticUnsupported, "failed to add values"))
	}

	return c.plus(a, b)
}

// Minus returns a - b using the configured arithmetic.
func (c *Custom[T]) Minus(a, b T) T {
	if c.minus == nil {
		panic(ierrors.Wrap(ErrArithmeticUnsupported, "failed to subtract values"))
	}

	return c.minus(a, b)
}

// Min returns the smaller one of both values.
func (c *Custom[T]) Min(a, b T) T {
	return lo.Cond(c.IsGreaterThan(a, b), b, a)
}

// Max returns the larger one of both values.
func (c *Custom[T]) Max(a, b T) T {
	return lo.Cond(c.IsGreaterThan(a, b), a, b)
}

// Compare returns the result of the configured comparator.
func (c *Custom[T]) Compare(a, b T) int {
	return c.compare(a, b)
}

// IsEqual returns true if both values are equal.
func (c *Custom[T]) IsEqual(a, b T) bool {
	return c.compare(a, b) == 0
}

// IsGreaterThan returns true if value > than.
func (c *Custom[T]) IsGreaterThan(value, than T) bool {
	return c.compare(value, than) > 0
}

// IsLessThan returns true if value < than.
func (c *Custom[T]) IsLessThan(value, than T) bool {
	return c.compare(value, than) < 0
}

// IsGreaterOrEqualTo returns true if value >= thanTo.
func (c *Custom[T]) IsGreaterOrEqualTo(value, thanTo T) bool {
	return c.compare(value, thanTo) >= 0
}

// IsLessOrEqualTo returns true if value <= thanTo.
func (c *Custom[T]) IsLessOrEqualTo(value, thanTo T) bool {
	return c.compare(value, thanTo) <= 0
}

// IsInfinity returns the result of the configured infinity predicate.
func (c *Custom[T]) IsInfinity(value T) bool {
	return c.isInfinity(value)
}

// WithInfinity is an option that sets the predicate that identifies the infinities of the type.
func WithInfinity[T any](isInfinity func(value T) bool) options.Option[Custom[T]] {
	return func(c *Custom[T]) {
		c.isInfinity = isInfinity
	}
}

// WithArithmetic is an option that enables Unit, Plus and Minus.
func WithArithmetic[T any](unit T, plus, minus func(a, b T) T) options.Option[Custom[T]] {
	return func(c *Custom[T]) {
		c.unit = &unit
		c.plus = plus
		c.minus = minus
	}
}

var _ Spec[string] = (*Custom[string])(nil)
