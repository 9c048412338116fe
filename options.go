package rangeset

import (
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/rangeset/index"
	"github.com/iotaledger/hive.go/rangeset/valuerange"
	"github.com/iotaledger/hive.go/runtime/options"
)

// WithTree is an option for the RangeSet that sets the constructor of the index that stores its Ranges.
func WithTree[T any](constructor func(comparator index.Comparator[valuerange.Range[T]]) index.Tree[valuerange.Range[T]]) options.Option[RangeSet[T]] {
	return func(r *RangeSet[T]) {
		r.optsTreeConstructor = constructor
	}
}

// WithBackend is an option for the RangeSet that selects a registered index backend by its name.
func WithBackend[T any](name string) options.Option[RangeSet[T]] {
	return func(r *RangeSet[T]) {
		r.optsBackend = name
	}
}

// WithLogger is an option for the RangeSet that sets the logger that traces its mutations.
func WithLogger[T any](logger log.Logger) options.Option[RangeSet[T]] {
	return func(r *RangeSet[T]) {
		r.logger = logger
	}
}
