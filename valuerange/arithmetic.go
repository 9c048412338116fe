package valuerange

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/rangeset/rangespec"
)

// Intersection returns the Range of all values that are contained in both Ranges.
func (r Range[T]) Intersection(other Range[T]) Range[T] {
	if r.IsEmpty() || other.IsEmpty() {
		return Empty(r.specOr(other))
	}

	lower := lo.Cond(compareLower(r.spec, r.lower, other.lower) >= 0, r.lower, other.lower)
	upper := lo.Cond(compareUpper(r.spec, r.upper, other.upper) <= 0, r.upper, other.upper)

	if r.spec.IsGreaterThan(lower.value, upper.value) {
		return Empty(r.spec)
	}

	if intersection := newRange(r.spec, lower.value, upper.value, lower.boundType.IsClosed(), upper.boundType.IsClosed()); !intersection.IsEmpty() {
		return intersection
	}

	return Empty(r.spec)
}

// Intersects returns true if both Ranges share at least one value.
func (r Range[T]) Intersects(other Range[T]) bool {
	return !r.Intersection(other).IsEmpty()
}

// Union returns the smallest Range that covers both Ranges. It returns ErrNonUnionable if the Ranges neither intersect
// nor are adjacent, since the union would have a gap.
func (r Range[T]) Union(other Range[T]) (Range[T], error) {
	switch {
	case r.IsEmpty():
		return other, nil
	case other.IsEmpty():
		return r, nil
	case !r.Intersects(other) && !r.Adjacent(other):
		return Range[T]{}, ierrors.Wrapf(ErrNonUnionable, "failed to union %s and %s", r, other)
	}

	lower := lo.Cond(compareLower(r.spec, r.lower, other.lower) <= 0, r.lower, other.lower)
	upper := lo.Cond(compareUpper(r.spec, r.upper, other.upper) >= 0, r.upper, other.upper)

	return newRange(r.spec, lower.value, upper.value, lower.boundType.IsClosed(), upper.boundType.IsClosed()), nil
}

// Subtract returns the (up to two) disjoint Ranges that remain after removing all values of other from this Range.
func (r Range[T]) Subtract(other Range[T]) []Range[T] {
	if !r.Intersects(other) {
		return []Range[T]{r}
	}

	if r.Equal(other) {
		return []Range[T]{}
	}

	remainders := make([]Range[T], 0, 2)
	if compareLower(r.spec, r.lower, other.lower) < 0 {
		remainders = append(remainders, newRange(r.spec, r.lower.value, other.lower.value, r.IsLowerEnclosed(), !other.IsLowerEnclosed()))
	}
	if compareUpper(r.spec, r.upper, other.upper) > 0 {
		remainders = append(remainders, newRange(r.spec, other.upper.value, r.upper.value, !other.IsUpperEnclosed(), r.IsUpperEnclosed()))
	}

	return lo.Filter(remainders, func(remainder Range[T]) bool {
		return !remainder.IsEmpty()
	})
}

// AdjacentLeft returns true if other ends exactly where this Range starts, so that their shared EndPoint value is
// covered by exactly one of them.
func (r Range[T]) AdjacentLeft(other Range[T]) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}

	return r.spec.IsEqual(r.lower.value, other.upper.value) && r.IsLowerEnclosed() != other.IsUpperEnclosed()
}

// AdjacentRight returns true if other starts exactly where this Range ends, so that their shared EndPoint value is
// covered by exactly one of them.
func (r Range[T]) AdjacentRight(other Range[T]) bool {
	return other.AdjacentLeft(r)
}

// Adjacent returns true if the Ranges touch without overlapping on either side.
func (r Range[T]) Adjacent(other Range[T]) bool {
	return r.AdjacentLeft(other) || r.AdjacentRight(other)
}

// Contains returns true if all values of other are contained in this Range. Every Range contains the empty Range.
func (r Range[T]) Contains(other Range[T]) bool {
	switch {
	case other.IsEmpty():
		return true
	case r.IsEmpty():
		return false
	default:
		return compareLower(r.spec, other.lower, r.lower) >= 0 && compareUpper(r.spec, other.upper, r.upper) <= 0
	}
}

// ContainsValue returns true if the value is within the bounds of this Range. Infinities are never contained.
func (r Range[T]) ContainsValue(value T) bool {
	if r.IsEmpty() {
		return false
	}

	singleton, err := Singleton(r.spec, value)
	if err != nil {
		return false
	}

	return r.Contains(singleton)
}

// Equal returns true if both Ranges contain the same values. All empty Ranges are equal.
func (r Range[T]) Equal(other Range[T]) bool {
	return r.Contains(other) && other.Contains(r)
}

// specOr returns the Spec of this Range or the one of other if this Range is the zero value.
func (r Range[T]) specOr(other Range[T]) rangespec.Spec[T] {
	return lo.Cond(r.spec != nil, r.spec, other.spec)
}
