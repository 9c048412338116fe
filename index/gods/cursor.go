package gods

import (
	"github.com/iotaledger/hive.go/rangeset/index"
)

// Cursor is a position within a Tree that walks the parent links of the underlying gods Nodes.
type Cursor[T any, N comparable] struct {
	tree *Tree[T, N]
	node N
}

// Data returns the item at the current position.
func (c *Cursor[T, N]) Data() (item T, exists bool) {
	var nilNode N
	if c.node == nilNode {
		return item, false
	}

	return c.tree.navigator.item(c.node).(T), true
}

// Prev moves the Cursor to the next lower item. An empty Cursor wraps around to the largest item.
func (c *Cursor[T, N]) Prev() (item T, exists bool) {
	var nilNode N
	if c.node == nilNode {
		c.node = c.tree.backend.Right()
	} else {
		c.node = c.tree.predecessor(c.node)
	}

	return c.Data()
}

var _ index.Cursor[int] = &Cursor[int, *struct{}]{}
