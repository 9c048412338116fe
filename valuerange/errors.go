package valuerange

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrInvalidBounds is returned if the upper bound of a Range precedes its lower bound.
	ErrInvalidBounds = ierrors.New("lower bound is greater than upper bound")

	// ErrNonUnionable is returned if two Ranges neither intersect nor are adjacent, so their union would have a gap.
	ErrNonUnionable = ierrors.New("cannot union non-intersecting and non-adjacent ranges")

	// ErrUnorderedValue is returned if a bound is not equal to itself (e.g. NaN) and therefore has no place in the order.
	ErrUnorderedValue = ierrors.New("value is not part of the order")

	// ErrSingletonOfInfinity is returned when trying to build a singleton Range at an infinite value.
	ErrSingletonOfInfinity = ierrors.New("cannot enclose an infinite value")
)
