package gods

import (
	"github.com/iotaledger/hive.go/rangeset/index"
)

// backend is the subset of the gods tree API that is shared by the red-black and the AVL tree.
type backend[N comparable] interface {
	Put(key interface{}, value interface{})
	Remove(key interface{})
	Size() int
	Clear()
	Ceiling(key interface{}) (N, bool)
	Right() N
}

// navigator walks the exported Node structure of a gods tree.
type navigator[N comparable] struct {
	root   func() N
	item   func(node N) any
	child  func(node N, right bool) N
	parent func(node N) N
}

// Tree is an index.Tree that stores its items as the keys of a gods tree.
type Tree[T any, N comparable] struct {
	backend    backend[N]
	navigator  navigator[N]
	comparator index.Comparator[T]
}

func newTree[T any, N comparable](backend backend[N], navigator navigator[N], comparator index.Comparator[T]) *Tree[T, N] {
	return &Tree[T, N]{
		backend:    backend,
		navigator:  navigator,
		comparator: comparator,
	}
}

// Size returns the number of stored items.
func (t *Tree[T, N]) Size() int {
	return t.backend.Size()
}

// Insert stores the item and returns true if no equal item existed before.
func (t *Tree[T, N]) Insert(item T) bool {
	sizeBefore := t.backend.Size()
	t.backend.Put(item, nil)

	return t.backend.Size() > sizeBefore
}

// Remove deletes the stored item that is equal to the given one and returns true if it existed.
func (t *Tree[T, N]) Remove(item T) bool {
	sizeBefore := t.backend.Size()
	t.backend.Remove(item)

	return t.backend.Size() < sizeBefore
}

// Clear removes all items.
func (t *Tree[T, N]) Clear() {
	t.backend.Clear()
}

// LowerBound returns a Cursor that points to the first item that is not less than the given one.
func (t *Tree[T, N]) LowerBound(item T) index.Cursor[T] {
	ceiling, _ := t.backend.Ceiling(item)

	return &Cursor[T, N]{tree: t, node: ceiling}
}

// UpperBound returns a Cursor that points to the first item that is strictly greater than the given one.
func (t *Tree[T, N]) UpperBound(item T) index.Cursor[T] {
	var nilNode, higher N
	for node := t.navigator.root(); node != nilNode; {
		if t.comparator(item, t.navigator.item(node).(T)) < 0 {
			higher = node
			node = t.navigator.child(node, false)
		} else {
			node = t.navigator.child(node, true)
		}
	}

	return &Cursor[T, N]{tree: t, node: higher}
}

// Iterator returns an empty Cursor that is positioned before the first item.
func (t *Tree[T, N]) Iterator() index.Cursor[T] {
	return &Cursor[T, N]{tree: t}
}

// predecessor returns the in-order predecessor of the node (or the nil node if there is none).
func (t *Tree[T, N]) predecessor(node N) N {
	var nilNode N

	if left := t.navigator.child(node, false); left != nilNode {
		for right := t.navigator.child(left, true); right != nilNode; right = t.navigator.child(left, true) {
			left = right
		}

		return left
	}

	for parent := t.navigator.parent(node); parent != nilNode; parent = t.navigator.parent(node) {
		if t.navigator.child(parent, true) == node {
			return parent
		}

		node = parent
	}

	return nilNode
}

var _ index.Tree[int] = &Tree[int, *struct{}]{}
