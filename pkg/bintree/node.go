package bintree

import "github.com/matzehuels/graytree/pkg/errors"

// ErrMissingDataField is returned by [Builder.Build] when no element was
// supplied with [Builder.Data] before finalization.
var ErrMissingDataField = errors.New(errors.ErrCodeMissingDataField, "missing data field")

// Node is a binary tree node holding one element and two optional children.
// Each child, if present, is owned exclusively by its parent.
//
// The zero value is a leaf holding the zero element.
type Node[T any] struct {
	data  T
	left  *Node[T]
	right *Node[T]
}

// New creates a leaf node holding data.
func New[T any](data T) *Node[T] {
	return &Node[T]{data: data}
}

// Left returns the left child, or nil if absent.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil if absent.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// Data returns the element held by the node, or the zero value of T for the
// empty tree.
func (n *Node[T]) Data() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.data
}

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Len returns the number of nodes in the tree rooted at n.
func (n *Node[T]) Len() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.Len() + n.right.Len()
}

// Height returns the number of edges on the longest path from n to a leaf.
// A single leaf has height 0 and the empty tree has height -1.
func (n *Node[T]) Height() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.left.Height(), n.right.Height())
}

// take moves the node's contents out, leaving n as a zero leaf.
func (n *Node[T]) take() (data T, left, right *Node[T]) {
	data, left, right = n.data, n.left, n.right
	var zero T
	n.data, n.left, n.right = zero, nil, nil
	return data, left, right
}
