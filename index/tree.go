package index

// Comparator is a three-way comparison that returns a negative number if a < b, zero if a == b and a positive number if
// a > b.
type Comparator[T any] func(a, b T) int

// Tree is an ordered container of items that supports bound searches and backward iteration.
//
// Items that compare as equal are considered to be the same item, so inserting an equal item replaces the stored one.
type Tree[T any] interface {
	// Size returns the number of stored items.
	Size() int

	// Insert stores the item and returns true if no equal item existed before.
	Insert(item T) (inserted bool)

	// Remove deletes the stored item that is equal to the given one and returns true if it existed.
	Remove(item T) (removed bool)

	// Clear removes all items.
	Clear()

	// LowerBound returns a Cursor that points to the first item that is not less than the given one, or an empty Cursor
	// if no such item exists.
	LowerBound(item T) Cursor[T]

	// UpperBound returns a Cursor that points to the first item that is strictly greater than the given one, or an
	// empty Cursor if no such item exists.
	UpperBound(item T) Cursor[T]

	// Iterator returns an empty Cursor that is positioned before the first item.
	Iterator() Cursor[T]
}

// Cursor is a position within a Tree.
//
// An empty Cursor does not point to any item. Calling Prev on an empty Cursor wraps around to the highest item of the
// Tree, while calling Prev on the lowest item moves the Cursor back to the empty position. A Cursor is invalidated by
// any modification of its Tree.
type Cursor[T any] interface {
	// Data returns the current item and true, or the zero value and false if the Cursor is empty.
	Data() (item T, exists bool)

	// Prev moves the Cursor to the next lower item and returns it.
	Prev() (item T, exists bool)
}
