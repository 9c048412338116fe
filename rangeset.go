// Package rangeset maintains normalized sets of Ranges over arbitrary ordered types.
package rangeset

import (
	"slices"
	"strings"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/rangeset/index"
	"github.com/iotaledger/hive.go/rangeset/rangespec"
	"github.com/iotaledger/hive.go/rangeset/valuerange"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/stringify"

	// registers the default index backend.
	_ "github.com/iotaledger/hive.go/rangeset/index/redblack"
)

// RangeSet is a collection of Ranges that is kept pairwise disjoint and non-adjacent: adding a Range merges it with every
// stored Range it intersects or touches, and subtracting a Range splits the stored Ranges it overlaps.
//
// The Ranges are stored in an index that is ordered by their upper EndPoints. A RangeSet is not safe for concurrent
// use.
type RangeSet[T any] struct {
	spec   rangespec.Spec[T]
	tree   index.Tree[valuerange.Range[T]]
	logger log.Logger

	optsTreeConstructor func(comparator index.Comparator[valuerange.Range[T]]) index.Tree[valuerange.Range[T]]
	optsBackend         string
}

// New creates a RangeSet for Ranges that use the given Spec.
func New[T any](spec rangespec.Spec[T], opts ...options.Option[RangeSet[T]]) (*RangeSet[T], error) {
	r := options.Apply(&RangeSet[T]{
		spec:   spec,
		logger: log.EmptyLogger,
	}, opts)

	if r.optsTreeConstructor == nil {
		factory, err := r.backendFactory()
		if err != nil {
			return nil, ierrors.Wrap(err, "failed to create range set")
		}

		r.optsTreeConstructor = func(comparator index.Comparator[valuerange.Range[T]]) index.Tree[valuerange.Range[T]] {
			return index.New(factory, comparator)
		}
	}

	r.tree = r.optsTreeConstructor(valuerange.CompareUpper[T])

	return r, nil
}

// NewNumeric creates a RangeSet for numeric types that uses the default numeric Spec.
func NewNumeric[T constraints.Numeric](opts ...options.Option[RangeSet[T]]) (*RangeSet[T], error) {
	return New[T](rangespec.NewNumeric[T](), opts...)
}

// Spec returns the Spec of the Ranges in the RangeSet.
func (r *RangeSet[T]) Spec() rangespec.Spec[T] {
	return r.spec
}

// Add inserts the Range into the RangeSet and merges it with all stored Ranges that intersect or are adjacent to it.
// Empty Ranges are ignored.
func (r *RangeSet[T]) Add(value valuerange.Range[T]) *RangeSet[T] {
	if value.IsEmpty() {
		return r
	}

	grown := value
	absorbed := make([]valuerange.Range[T], 0)
	r.walkCandidates(value, func() T { return grown.Lower() }, func(candidate valuerange.Range[T]) {
		union, err := grown.Union(candidate)
		if err != nil {
			return
		}

		grown = union
		absorbed = append(absorbed, candidate)
	})

	for _, candidate := range absorbed {
		r.tree.Remove(candidate)
	}

	if !grown.IsEmpty() {
		r.tree.Insert(grown)
	}

	r.logger.LogTrace("added range", "range", value, "absorbed", len(absorbed), "result", grown)

	return r
}

// AddSet adds all Ranges of the other RangeSet.
func (r *RangeSet[T]) AddSet(other *RangeSet[T]) *RangeSet[T] {
	for _, value := range other.Subranges() {
		r.Add(value)
	}

	return r
}

// Subtract removes all values of the Range from the RangeSet, splitting the stored Ranges that overlap it. Empty
// Ranges are ignored.
func (r *RangeSet[T]) Subtract(value valuerange.Range[T]) *RangeSet[T] {
	if value.IsEmpty() {
		return r
	}

	overlapping := make([]valuerange.Range[T], 0)
	r.walkCandidates(value, value.Lower, func(candidate valuerange.Range[T]) {
		if candidate.Intersects(value) {
			overlapping = append(overlapping, candidate)
		}
	})

	remainders := make([]valuerange.Range[T], 0, 2*len(overlapping))
	for _, candidate := range overlapping {
		r.tree.Remove(candidate)

		remainders = append(remainders, lo.Filter(candidate.Subtract(value), func(remainder valuerange.Range[T]) bool {
			return !remainder.IsEmpty()
		})...)
	}

	for _, remainder := range remainders {
		r.tree.Insert(remainder)
	}

	r.logger.LogTrace("subtracted range", "range", value, "split", len(overlapping), "remainders", len(remainders))

	return r
}

// SubtractSet subtracts all Ranges of the other RangeSet.
func (r *RangeSet[T]) SubtractSet(other *RangeSet[T]) *RangeSet[T] {
	for _, value := range other.Subranges() {
		r.Subtract(value)
	}

	return r
}

// Containing returns the stored Range that contains the value. Infinities are never contained.
func (r *RangeSet[T]) Containing(value T) (containing valuerange.Range[T], exists bool) {
	singleton, err := valuerange.Singleton(r.spec, value)
	if err != nil {
		return containing, false
	}

	return r.Enclosing(singleton)
}

// Enclosing returns the stored Range that contains all values of the given Range. Empty Ranges are never enclosed.
func (r *RangeSet[T]) Enclosing(value valuerange.Range[T]) (enclosing valuerange.Range[T], exists bool) {
	if value.IsEmpty() {
		return enclosing, false
	}

	// only the first Range that does not end before the value can enclose it
	if candidate, candidateExists := r.tree.LowerBound(value).Data(); candidateExists && candidate.Contains(value) {
		return candidate, true
	}

	return enclosing, false
}

// Contains returns true if all values of the Range are contained in the RangeSet. The empty Range is always contained.
func (r *RangeSet[T]) Contains(value valuerange.Range[T]) bool {
	if value.IsEmpty() {
		return true
	}

	_, exists := r.Enclosing(value)

	return exists
}

// ContainsValue returns true if the value is contained in one of the stored Ranges.
func (r *RangeSet[T]) ContainsValue(value T) bool {
	_, exists := r.Containing(value)

	return exists
}

// Subranges returns the stored Ranges in ascending order.
func (r *RangeSet[T]) Subranges() []valuerange.Range[T] {
	subranges := make([]valuerange.Range[T], 0, r.tree.Size())

	cursor := r.tree.Iterator()
	for value, exists := cursor.Prev(); exists; value, exists = cursor.Prev() {
		subranges = append(subranges, value)
	}
	slices.Reverse(subranges)

	return subranges
}

// ForEach calls the callback for each stored Range in ascending order until it returns false.
func (r *RangeSet[T]) ForEach(callback func(value valuerange.Range[T]) bool) {
	for _, value := range r.Subranges() {
		if !callback(value) {
			return
		}
	}
}

// Size returns the number of stored Ranges.
func (r *RangeSet[T]) Size() int {
	return r.tree.Size()
}

// IsEmpty returns true if the RangeSet contains no values.
func (r *RangeSet[T]) IsEmpty() bool {
	return r.tree.Size() == 0
}

// Clear removes all Ranges from the RangeSet.
func (r *RangeSet[T]) Clear() *RangeSet[T] {
	r.tree.Clear()

	r.logger.LogTrace("cleared range set")

	return r
}

// String returns a human-readable version of the RangeSet.
func (r *RangeSet[T]) String() string {
	return stringify.Struct("RangeSet",
		stringify.NewStructField("size", r.Size()),
		stringify.NewStructField("subranges", strings.Join(lo.Map(r.Subranges(), valuerange.Range[T].String), ", ")),
	)
}

// walkCandidates visits the stored Ranges that end at or after the current lower bound, starting at the last one that
// can touch the value and moving towards lower Ranges. The lower bound is re-evaluated after every visit, so that the
// walk follows a Range that grows while absorbing its neighbors.
func (r *RangeSet[T]) walkCandidates(value valuerange.Range[T], lowerBound func() T, visit func(candidate valuerange.Range[T])) {
	if r.tree.Size() == 0 {
		return
	}

	cursor := r.tree.UpperBound(value)
	candidate, exists := cursor.Data()
	if !exists {
		// wraps around to the Range with the highest upper bound
		candidate, exists = cursor.Prev()
	}

	for ; exists && r.spec.IsGreaterOrEqualTo(candidate.Upper(), lowerBound()); candidate, exists = cursor.Prev() {
		visit(candidate)
	}
}

// backendFactory returns the Factory of the index backend that was selected through the options.
func (r *RangeSet[T]) backendFactory() (index.Factory, error) {
	if r.optsBackend != "" {
		return index.Lookup(r.optsBackend)
	}

	_, factory, err := index.Default()

	return factory, err
}
