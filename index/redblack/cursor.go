package redblack

import (
	"github.com/iotaledger/hive.go/rangeset/index"
)

// Cursor is a position within a Tree that follows the threaded links of its Nodes.
type Cursor[T any] struct {
	tree *Tree[T]
	node *Node[T]
}

// Data returns the item at the current position.
func (c *Cursor[T]) Data() (item T, exists bool) {
	if c.node == nil {
		return item, false
	}

	return c.node.item, true
}

// Prev moves the Cursor to the next lower item. An empty Cursor wraps around to the largest item.
func (c *Cursor[T]) Prev() (item T, exists bool) {
	if c.node == nil {
		c.node = c.tree.max
	} else {
		c.node = c.node.predecessor
	}

	return c.Data()
}

var _ index.Cursor[int] = &Cursor[int]{}
