// Package gods provides index backends that are built on top of the balanced trees of github.com/emirpasic/gods.
package gods

import (
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/iotaledger/hive.go/rangeset/index"
)

const (
	// RedBlackName is the name of the red-black tree backend.
	RedBlackName = "gods-redblack"

	// AVLName is the name of the AVL tree backend.
	AVLName = "gods-avl"
)

func init() {
	index.Register(RedBlackName, func(comparator index.Comparator[any]) index.Tree[any] {
		return NewRedBlack(comparator)
	})

	index.Register(AVLName, func(comparator index.Comparator[any]) index.Tree[any] {
		return NewAVL(comparator)
	})
}

// NewRedBlack creates an index that is backed by a red-black tree.
func NewRedBlack[T any](comparator index.Comparator[T]) *Tree[T, *redblacktree.Node] {
	godsTree := redblacktree.NewWith(untypedComparator(comparator))

	return newTree[T, *redblacktree.Node](godsTree, navigator[*redblacktree.Node]{
		root: func() *redblacktree.Node { return godsTree.Root },
		item: func(node *redblacktree.Node) any { return node.Key },
		child: func(node *redblacktree.Node, right bool) *redblacktree.Node {
			if right {
				return node.Right
			}

			return node.Left
		},
		parent: func(node *redblacktree.Node) *redblacktree.Node { return node.Parent },
	}, comparator)
}

// NewAVL creates an index that is backed by an AVL tree.
func NewAVL[T any](comparator index.Comparator[T]) *Tree[T, *avltree.Node] {
	godsTree := avltree.NewWith(untypedComparator(comparator))

	return newTree[T, *avltree.Node](godsTree, navigator[*avltree.Node]{
		root: func() *avltree.Node { return godsTree.Root },
		item: func(node *avltree.Node) any { return node.Key },
		child: func(node *avltree.Node, right bool) *avltree.Node {
			if right {
				return node.Children[1]
			}

			return node.Children[0]
		},
		parent: func(node *avltree.Node) *avltree.Node { return node.Parent },
	}, comparator)
}

func untypedComparator[T any](comparator index.Comparator[T]) func(a, b interface{}) int {
	return func(a, b interface{}) int {
		return comparator(a.(T), b.(T))
	}
}
