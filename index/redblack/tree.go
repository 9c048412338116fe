package redblack

import (
	"fmt"

	"github.com/iotaledger/hive.go/rangeset/index"
	"github.com/iotaledger/hive.go/stringify"
)

// Name is the name that the Tree is registered with as the default index backend.
const Name = "redblack"

func init() {
	index.RegisterDefault(Name, func(comparator index.Comparator[any]) index.Tree[any] {
		return New(comparator)
	})
}

// Tree represents a self-balancing binary search tree whose Nodes are additionally threaded in ascending order, so that
// stepping to a neighboring item does not need to walk the tree.
type Tree[T any] struct {
	root       *Node[T]
	min        *Node[T]
	max        *Node[T]
	comparator index.Comparator[T]
	size       int
}

// New creates a new red-black Tree that uses the given comparator to order its items.
func New[T any](comparator index.Comparator[T]) *Tree[T] {
	return &Tree[T]{
		comparator: comparator,
	}
}

// Insert stores the item in the Tree and returns true if it was inserted (false if an equal item was replaced).
func (t *Tree[T]) Insert(item T) (inserted bool) {
	_, inserted = t.Set(item)

	return inserted
}

// Set inserts or updates the Node of the item and returns it together with a flag that indicates if it was inserted.
func (t *Tree[T]) Set(item T) (node *Node[T], inserted bool) {
	if t.root == nil {
		node = &Node[T]{item: item, isBlack: true}
		t.root = node
		t.min = node
		t.max = node

		t.size++

		return node, true
	}

	var predecessor, successor *Node[T]
InsertNode:
	for currentNode := t.root; ; {
		switch cmp := t.comparator(item, currentNode.item); {
		case cmp == 0:
			currentNode.item = item

			return currentNode, false
		case cmp < 0:
			successor = currentNode
			if currentNode.left == nil {
				node = &Node[T]{parent: currentNode, item: item}
				currentNode.left = node

				break InsertNode
			}

			currentNode = currentNode.left
		default:
			predecessor = currentNode
			if currentNode.right == nil {
				node = &Node[T]{parent: currentNode, item: item}
				currentNode.right = node

				break InsertNode
			}

			currentNode = currentNode.right
		}
	}

	node.predecessor = predecessor
	node.successor = successor
	if predecessor != nil {
		predecessor.successor = node
	} else {
		t.min = node
	}
	if successor != nil {
		successor.predecessor = node
	} else {
		t.max = node
	}
	t.insertCase1(node)

	t.size++

	return node, true
}

// Remove deletes the Node of the item from the Tree and returns true if it existed.
func (t *Tree[T]) Remove(item T) (removed bool) {
	node := t.Node(item)
	if node == nil {
		return false
	}

	t.DeleteNode(node)

	return true
}

// DeleteNode removes the Node from the Tree.
func (t *Tree[T]) DeleteNode(node *Node[T]) {
	if node.left != nil && node.right != nil {
		// the predecessor is moved into the position of the node, so the thread skips the predecessor instead
		pred := node.predecessor
		node.item = pred.item
		node.predecessor = pred.predecessor
		if pred.predecessor != nil {
			pred.predecessor.successor = node
		} else {
			t.min = node
		}

		node = pred
	} else {
		if node.predecessor != nil {
			node.predecessor.successor = node.successor
		} else {
			t.min = node.successor
		}
		if node.successor != nil {
			node.successor.predecessor = node.predecessor
		} else {
			t.max = node.predecessor
		}
	}

	child := node.right
	if child == nil {
		child = node.left
	}

	if node.isBlack {
		if !child.IsBlack() {
			child.isBlack = true
		} else {
			t.deleteCase1(node)
		}
	}
	t.swapNodes(node, child)

	t.size--
}

// Node returns the Node that stores an item equal to the given one (or nil if it doesn't exist).
func (t *Tree[T]) Node(item T) (node *Node[T]) {
	for node = t.root; node != nil; {
		switch cmp := t.comparator(item, node.item); {
		case cmp == 0:
			return node
		case cmp < 0:
			node = node.left
		default:
			node = node.right
		}
	}

	return nil
}

// ForEach iterates through the items of the Tree in ascending order. The iteration aborts as soon as the callback
// returns false.
func (t *Tree[T]) ForEach(callback func(item T) bool) {
	for currentNode := t.min; currentNode != nil; currentNode = currentNode.successor {
		if !callback(currentNode.item) {
			return
		}
	}
}

// Items returns an ordered list of the items that are stored in the Tree.
func (t *Tree[T]) Items() (items []T) {
	items = make([]T, 0, t.size)
	t.ForEach(func(item T) bool {
		items = append(items, item)

		return true
	})

	return items
}

// Min returns the Node with the smallest item (or nil if the Tree is empty).
func (t *Tree[T]) Min() *Node[T] {
	return t.min
}

// Max returns the Node with the largest item (or nil if the Tree is empty).
func (t *Tree[T]) Max() *Node[T] {
	return t.max
}

// Ceiling returns the Node with the smallest item that is >= the given one (or nil if no ceiling was found).
func (t *Tree[T]) Ceiling(item T) (ceiling *Node[T]) {
	for node := t.root; node != nil; {
		switch cmp := t.comparator(item, node.item); {
		case cmp == 0:
			return node
		case cmp < 0:
			ceiling = node
			node = node.left
		default:
			node = node.right
		}
	}

	return ceiling
}

// Higher returns the Node with the smallest item that is > the given one (or nil if no such Node exists).
func (t *Tree[T]) Higher(item T) (higher *Node[T]) {
	for node := t.root; node != nil; {
		if t.comparator(item, node.item) < 0 {
			higher = node
			node = node.left
		} else {
			node = node.right
		}
	}

	return higher
}

// LowerBound returns a Cursor that points to the first item that is not less than the given one.
func (t *Tree[T]) LowerBound(item T) index.Cursor[T] {
	return &Cursor[T]{tree: t, node: t.Ceiling(item)}
}

// UpperBound returns a Cursor that points to the first item that is strictly greater than the given one.
func (t *Tree[T]) UpperBound(item T) index.Cursor[T] {
	return &Cursor[T]{tree: t, node: t.Higher(item)}
}

// Iterator returns an empty Cursor that is positioned before the first item.
func (t *Tree[T]) Iterator() index.Cursor[T] {
	return &Cursor[T]{tree: t}
}

// Size returns the amount of items in the Tree.
func (t *Tree[T]) Size() int {
	return t.size
}

// IsEmpty returns true if the Tree has no items.
func (t *Tree[T]) IsEmpty() bool {
	return t.size == 0
}

// Clear removes all items from the Tree.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.min = nil
	t.max = nil
	t.size = 0
}

// String returns a human-readable version of the Tree.
func (t *Tree[T]) String() string {
	return stringify.Struct("Tree",
		stringify.NewStructField("size", t.size),
		stringify.NewStructField("items", fmt.Sprint(t.Items())),
	)
}

func (t *Tree[T]) insertCase1(node *Node[T]) {
	if node.parent == nil {
		node.isBlack = true
		return
	}

	t.insertCase2(node)
}

func (t *Tree[T]) insertCase2(node *Node[T]) {
	if node.parent.IsBlack() {
		return
	}

	t.insertCase3(node)
}

func (t *Tree[T]) insertCase3(node *Node[T]) {
	uncle := node.Uncle()
	if !uncle.IsBlack() {
		node.parent.isBlack = true
		uncle.isBlack = true

		grandParent := node.GrandParent()
		grandParent.isBlack = false
		t.insertCase1(grandParent)

		return
	}

	t.insertCase4(node)
}

func (t *Tree[T]) insertCase4(node *Node[T]) {
	parent := node.parent
	grandParent := node.GrandParent()

	switch {
	case node == parent.right && parent == grandParent.left:
		t.rotateLeft(parent)
		node = node.left
	case node == parent.left && parent == grandParent.right:
		t.rotateRight(parent)
		node = node.right
	}

	t.insertCase5(node)
}

func (t *Tree[T]) insertCase5(node *Node[T]) {
	parent := node.parent
	grandParent := node.GrandParent()

	parent.isBlack = true
	grandParent.isBlack = false

	if node == parent.left && parent == grandParent.left {
		t.rotateRight(grandParent)
	} else if node == parent.right && parent == grandParent.right {
		t.rotateLeft(grandParent)
	}
}

func (t *Tree[T]) deleteCase1(node *Node[T]) {
	if node.parent == nil {
		return
	}

	t.deleteCase2(node)
}

func (t *Tree[T]) deleteCase2(node *Node[T]) {
	if sibling := node.Sibling(); !sibling.IsBlack() {
		parent := node.parent

		parent.isBlack = false
		sibling.isBlack = true

		if node == parent.left {
			t.rotateLeft(parent)
		} else {
			t.rotateRight(parent)
		}
	}

	t.deleteCase3(node)
}

func (t *Tree[T]) deleteCase3(node *Node[T]) {
	parent := node.parent
	sibling := node.Sibling()

	if parent.IsBlack() && sibling.IsBlack() && sibling.left.IsBlack() && sibling.right.IsBlack() {
		sibling.isBlack = false
		t.deleteCase1(parent)

		return
	}

	t.deleteCase4(node)
}

func (t *Tree[T]) deleteCase4(node *Node[T]) {
	parent := node.parent
	sibling := node.Sibling()

	if !parent.IsBlack() && sibling.IsBlack() && sibling.left.IsBlack() && sibling.right.IsBlack() {
		sibling.isBlack = false
		parent.isBlack = true

		return
	}

	t.deleteCase5(node)
}

func (t *Tree[T]) deleteCase5(node *Node[T]) {
	parent := node.parent
	sibling := node.Sibling()

	switch {
	case node == parent.left && sibling.IsBlack() && !sibling.left.IsBlack() && sibling.right.IsBlack():
		sibling.isBlack = false
		sibling.left.isBlack = true
		t.rotateRight(sibling)
	case node == parent.right && sibling.IsBlack() && !sibling.right.IsBlack() && sibling.left.IsBlack():
		sibling.isBlack = false
		sibling.right.isBlack = true
		t.rotateLeft(sibling)
	}

	t.deleteCase6(node)
}

func (t *Tree[T]) deleteCase6(node *Node[T]) {
	parent := node.parent
	sibling := node.Sibling()

	sibling.isBlack = parent.IsBlack()
	parent.isBlack = true

	if node == parent.left {
		sibling.right.isBlack = true
		t.rotateLeft(parent)
	} else {
		sibling.left.isBlack = true
		t.rotateRight(parent)
	}
}

func (t *Tree[T]) rotateLeft(node *Node[T]) {
	right := node.right
	t.swapNodes(node, right)
	node.right = right.left
	if right.left != nil {
		right.left.parent = node
	}
	right.left = node
	node.parent = right
}

func (t *Tree[T]) rotateRight(node *Node[T]) {
	left := node.left
	t.swapNodes(node, left)
	node.left = left.right
	if left.right != nil {
		left.right.parent = node
	}
	left.right = node
	node.parent = left
}

// swapNodes replaces the parent Node with its child in the position below the grandparent.
func (t *Tree[T]) swapNodes(parent *Node[T], child *Node[T]) {
	if child != nil {
		child.parent = parent.parent
	}
	if parent.parent == nil {
		t.root = child

		return
	}

	if parent == parent.parent.left {
		parent.parent.left = child
	} else {
		parent.parent.right = child
	}
}

var _ index.Tree[int] = &Tree[int]{}
