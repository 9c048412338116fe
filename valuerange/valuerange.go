package valuerange

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/rangeset/rangespec"
)

// Range defines the boundaries around a contiguous span of values of type T (i.e. "integers from 1 to 100 inclusive").
//
// It is not possible to iterate over the contained values. Each side of a Range is either open (does not include the
// EndPoint) or closed (includes the EndPoint). Unbounded sides are expressed through the infinities of the Spec, which
// are always open:
//
// Notation         Definition          Factory method
// (a .. b)         {x | a < x < b}     Open
// [a .. b]         {x | a <= x <= b}   Closed
// (a .. b]         {x | a < x <= b}    OpenClosed
// [a .. b)         {x | a <= x < b}    ClosedOpen
// [a .. a]         {a}                 Singleton
// {}               {}                  Empty
//
// The upper EndPoint may not be less than the lower one. A Range whose EndPoints share the same value is empty unless
// both bounds are closed. Ranges are immutable values - all operations return new instances.
type Range[T any] struct {
	spec  rangespec.Spec[T]
	lower EndPoint[T]
	upper EndPoint[T]
}

// Open returns a Range that contains all values strictly greater than lower and strictly less than upper.
func Open[T any](spec rangespec.Spec[T], lower, upper T) (Range[T], error) {
	return newValidatedRange(spec, lower, upper, false, false)
}

// Closed returns a Range that contains all values greater than or equal to lower and less than or equal to upper.
func Closed[T any](spec rangespec.Spec[T], lower, upper T) (Range[T], error) {
	return newValidatedRange(spec, lower, upper, true, true)
}

// OpenClosed returns a Range that contains all values strictly greater than lower and less than or equal to upper.
func OpenClosed[T any](spec rangespec.Spec[T], lower, upper T) (Range[T], error) {
	return newValidatedRange(spec, lower, upper, false, true)
}

// ClosedOpen returns a Range that contains all values greater than or equal to lower and strictly less than upper.
func ClosedOpen[T any](spec rangespec.Spec[T], lower, upper T) (Range[T], error) {
	return newValidatedRange(spec, lower, upper, true, false)
}

// Singleton returns a Range that contains exactly the given value.
func Singleton[T any](spec rangespec.Spec[T], value T) (Range[T], error) {
	if !spec.IsEqual(value, value) {
		return Range[T]{}, ierrors.Wrapf(ErrUnorderedValue, "failed to create singleton at %v", value)
	}

	if spec.IsInfinity(value) {
		return Range[T]{}, ierrors.Wrapf(ErrSingletonOfInfinity, "failed to create singleton at %v", value)
	}

	return newRange(spec, value, value, true, true), nil
}

// Empty returns the canonical empty Range.
func Empty[T any](spec rangespec.Spec[T]) Range[T] {
	var zeroValue T

	return Range[T]{
		spec:  spec,
		lower: NewEndPoint(zeroValue, BoundTypeOpen),
		upper: NewEndPoint(zeroValue, BoundTypeOpen),
	}
}

// newValidatedRange creates a Range after checking that the bounds are ordered.
func newValidatedRange[T any](spec rangespec.Spec[T], lower, upper T, lowerEnclosed, upperEnclosed bool) (Range[T], error) {
	if !spec.IsEqual(lower, lower) || !spec.IsEqual(upper, upper) {
		return Range[T]{}, ierrors.Wrapf(ErrUnorderedValue, "failed to create range with lower bound %v and upper bound %v", lower, upper)
	}

	if spec.IsGreaterThan(lower, upper) {
		return Range[T]{}, ierrors.Wrapf(ErrInvalidBounds, "failed to create range with lower bound %v and upper bound %v", lower, upper)
	}

	return newRange(spec, lower, upper, lowerEnclosed, upperEnclosed), nil
}

// newRange creates a Range without validation. Infinite EndPoints are always open.
func newRange[T any](spec rangespec.Spec[T], lower, upper T, lowerEnclosed, upperEnclosed bool) Range[T] {
	return Range[T]{
		spec:  spec,
		lower: NewEndPoint(lower, boundTypeOf(lowerEnclosed && !spec.IsInfinity(lower))),
		upper: NewEndPoint(upper, boundTypeOf(upperEnclosed && !spec.IsInfinity(upper))),
	}
}

// Spec returns the Spec that this Range was built with.
func (r Range[T]) Spec() rangespec.Spec[T] {
	return r.spec
}

// Lower returns the value of the lower EndPoint.
func (r Range[T]) Lower() T {
	return r.lower.value
}

// Upper returns the value of the upper EndPoint.
func (r Range[T]) Upper() T {
	return r.upper.value
}

// LowerEndPoint returns the lower EndPoint of this Range.
func (r Range[T]) LowerEndPoint() EndPoint[T] {
	return r.lower
}

// UpperEndPoint returns the upper EndPoint of this Range.
func (r Range[T]) UpperEndPoint() EndPoint[T] {
	return r.upper
}

// LowerBoundType returns the type of this Range's lower bound - BoundTypeClosed if the range includes its lower
// EndPoint and BoundTypeOpen if it does not include its lower EndPoint.
func (r Range[T]) LowerBoundType() BoundType {
	return r.lower.boundType
}

// UpperBoundType returns the type of this Range's upper bound - BoundTypeClosed if the range includes its upper
// EndPoint and BoundTypeOpen if it does not include its upper EndPoint.
func (r Range[T]) UpperBoundType() BoundType {
	return r.upper.boundType
}

// IsLowerEnclosed returns true if the lower EndPoint is part of the Range.
func (r Range[T]) IsLowerEnclosed() bool {
	return r.lower.boundType.IsClosed()
}

// IsUpperEnclosed returns true if the upper EndPoint is part of the Range.
func (r Range[T]) IsUpperEnclosed() bool {
	return r.upper.boundType.IsClosed()
}

// IsLowerInfinity returns true if the Range is unbounded below.
func (r Range[T]) IsLowerInfinity() bool {
	return r.spec != nil && r.spec.IsInfinity(r.lower.value)
}

// IsUpperInfinity returns true if the Range is unbounded above.
func (r Range[T]) IsUpperInfinity() bool {
	return r.spec != nil && r.spec.IsInfinity(r.upper.value)
}

// IsEmpty returns true if the Range contains no values, i.e. it is of the form (v..v), [v..v) or (v..v]. The zero value
// is empty as well.
func (r Range[T]) IsEmpty() bool {
	if r.spec == nil {
		return true
	}

	return !(r.IsLowerEnclosed() && r.IsUpperEnclosed()) && r.spec.IsEqual(r.lower.value, r.upper.value)
}

// IsSingleton returns true if the Range contains exactly one value, i.e. it is of the form [v..v].
func (r Range[T]) IsSingleton() bool {
	return !r.IsEmpty() && r.spec.IsEqual(r.lower.value, r.upper.value)
}

// String returns a human-readable version of the Range.
func (r Range[T]) String() string {
	if r.IsEmpty() {
		return "{}"
	}

	lowerBracket := "("
	if r.IsLowerEnclosed() {
		lowerBracket = "["
	}

	upperBracket := ")"
	if r.IsUpperEnclosed() {
		upperBracket = "]"
	}

	return fmt.Sprintf("%s%v; %v%s", lowerBracket, r.lower.value, r.upper.value, upperBracket)
}
