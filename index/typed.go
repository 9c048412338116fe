package index

// New creates a Tree of items of type T from an untyped backend Factory.
func New[T any](factory Factory, comparator Comparator[T]) Tree[T] {
	return Typed[T](factory(func(a, b any) int {
		return comparator(a.(T), b.(T))
	}))
}

// Typed adapts an untyped Tree that only ever stores items of type T.
func Typed[T any](tree Tree[any]) Tree[T] {
	if typed, isTyped := tree.(Tree[T]); isTyped {
		return typed
	}

	return &typedTree[T]{tree: tree}
}

type typedTree[T any] struct {
	tree Tree[any]
}

func (t *typedTree[T]) Size() int {
	return t.tree.Size()
}

func (t *typedTree[T]) Insert(item T) bool {
	return t.tree.Insert(item)
}

func (t *typedTree[T]) Remove(item T) bool {
	return t.tree.Remove(item)
}

func (t *typedTree[T]) Clear() {
	t.tree.Clear()
}

func (t *typedTree[T]) LowerBound(item T) Cursor[T] {
	return &typedCursor[T]{cursor: t.tree.LowerBound(item)}
}

func (t *typedTree[T]) UpperBound(item T) Cursor[T] {
	return &typedCursor[T]{cursor: t.tree.UpperBound(item)}
}

func (t *typedTree[T]) Iterator() Cursor[T] {
	return &typedCursor[T]{cursor: t.tree.Iterator()}
}

type typedCursor[T any] struct {
	cursor Cursor[any]
}

func (c *typedCursor[T]) Data() (item T, exists bool) {
	return typedItem[T](c.cursor.Data())
}

func (c *typedCursor[T]) Prev() (item T, exists bool) {
	return typedItem[T](c.cursor.Prev())
}

func typedItem[T any](item any, exists bool) (T, bool) {
	if !exists {
		var zeroValue T

		return zeroValue, false
	}

	return item.(T), true
}
