package valuerange

import (
	"fmt"

	"github.com/iotaledger/hive.go/rangeset/rangespec"
	"github.com/iotaledger/hive.go/stringify"
)

// EndPoint contains information about where Ranges start and end. It combines a threshold value with a BoundType.
type EndPoint[T any] struct {
	value     T
	boundType BoundType
}

// NewEndPoint create a new EndPoint from the given details.
func NewEndPoint[T any](value T, boundType BoundType) EndPoint[T] {
	return EndPoint[T]{
		value:     value,
		boundType: boundType,
	}
}

// Value returns the Value of the EndPoint.
func (e EndPoint[T]) Value() T {
	return e.value
}

// BoundType returns the BoundType of the EndPoint.
func (e EndPoint[T]) BoundType() BoundType {
	return e.boundType
}

// String returns a human-readable version of the EndPoint.
func (e EndPoint[T]) String() string {
	return stringify.Struct("EndPoint",
		stringify.NewStructField("value", fmt.Sprint(e.value)),
		stringify.NewStructField("boundType", e.boundType),
	)
}

// compareLower compares two lower EndPoints. On equal values the closed bound starts earlier.
func compareLower[T any](spec rangespec.Spec[T], a, b EndPoint[T]) int {
	if cmp := spec.Compare(a.value, b.value); cmp != 0 {
		return cmp
	}

	return compareBoundTypes(b.boundType, a.boundType)
}

// CompareUpper orders Ranges by their upper EndPoints. On equal values the Range with the open bound comes first.
func CompareUpper[T any](a, b Range[T]) int {
	return compareUpper(a.spec, a.upper, b.upper)
}

// compareUpper compares two upper EndPoints. On equal values the open bound ends earlier.
func compareUpper[T any](spec rangespec.Spec[T], a, b EndPoint[T]) int {
	if cmp := spec.Compare(a.value, b.value); cmp != 0 {
		return cmp
	}

	return compareBoundTypes(a.boundType, b.boundType)
}

// compareBoundTypes orders open before closed.
func compareBoundTypes(a, b BoundType) int {
	switch {
	case a == b:
		return 0
	case a.IsClosed():
		return 1
	default:
		return -1
	}
}
