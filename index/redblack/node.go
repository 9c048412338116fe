package redblack

import (
	"fmt"

	"github.com/iotaledger/hive.go/stringify"
)

// Node represents a Node in the Tree.
type Node[T any] struct {
	item        T
	parent      *Node[T]
	left        *Node[T]
	right       *Node[T]
	predecessor *Node[T]
	successor   *Node[T]
	isBlack     bool
}

// Item returns the item that is stored in the Node.
func (n *Node[T]) Item() T {
	return n.item
}

// Successor returns the Node with the next higher item (or nil if none exists).
func (n *Node[T]) Successor() *Node[T] {
	return n.successor
}

// Predecessor returns the Node with the next lower item (or nil if none exists).
func (n *Node[T]) Predecessor() *Node[T] {
	return n.predecessor
}

// IsBlack returns true if the Node is marked as black (colors are used for the self-balancing properties of the Tree).
func (n *Node[T]) IsBlack() bool {
	if n == nil {
		return true
	}

	return n.isBlack
}

// GrandParent returns the parent of the parent Node (or nil if it does not exist).
func (n *Node[T]) GrandParent() *Node[T] {
	if n != nil && n.parent != nil {
		return n.parent.parent
	}

	return nil
}

// Uncle returns the sibling of the parent Node.
func (n *Node[T]) Uncle() *Node[T] {
	if n == nil || n.parent == nil || n.parent.parent == nil {
		return nil
	}

	return n.parent.Sibling()
}

// Sibling returns the alternative Node sharing the same parent Node.
func (n *Node[T]) Sibling() *Node[T] {
	if n == nil || n.parent == nil {
		return nil
	}

	if n == n.parent.left {
		return n.parent.right
	}

	return n.parent.left
}

// Min returns the smallest of all descendants of the Node.
func (n *Node[T]) Min() (node *Node[T]) {
	if node = n; node == nil {
		return
	}

	for node.left != nil {
		node = node.left
	}

	return
}

// Max returns the largest of all descendants of the Node.
func (n *Node[T]) Max() (node *Node[T]) {
	if node = n; node == nil {
		return
	}

	for node.right != nil {
		node = node.right
	}

	return
}

// String returns a human-readable version of the Node.
func (n *Node[T]) String() string {
	return stringify.Struct("Node",
		stringify.NewStructField("item", fmt.Sprint(n.item)),
		stringify.NewStructField("isBlack", n.isBlack),
	)
}
