package bintree

import "iter"

// LevelOrderIter walks a tree breadth first, left to right, reporting the depth
// of every element. It is single-pass; create a new one to walk again.
//
// The tree must not be mutated or consumed while the iterator is in use.
type LevelOrderIter[T any] struct {
	queue []*Node[T]
	// last is the final node queued for the current level. Dequeuing it means
	// the next node belongs to the level below.
	last  *Node[T]
	level int
}

// LevelOrderIter returns a breadth-first iterator rooted at n.
func (n *Node[T]) LevelOrderIter() *LevelOrderIter[T] {
	it := &LevelOrderIter[T]{}
	if n != nil {
		it.queue = append(it.queue, n)
		it.last = n
	}
	return it
}

// Level returns the depth of the element the next call to Next returns.
func (it *LevelOrderIter[T]) Level() int {
	return it.level
}

// Next returns the next element and its depth. ok is false once the walk is
// exhausted.
func (it *LevelOrderIter[T]) Next() (level int, data T, ok bool) {
	if len(it.queue) == 0 {
		return it.level, data, false
	}
	n := it.queue[0]
	it.queue[0] = nil
	it.queue = it.queue[1:]

	if n.left != nil {
		it.queue = append(it.queue, n.left)
	}
	if n.right != nil {
		it.queue = append(it.queue, n.right)
	}

	level = it.level
	if n == it.last {
		if len(it.queue) > 0 {
			it.last = it.queue[len(it.queue)-1]
		}
		it.level++
	}
	return level, n.data, true
}

// LevelOrder returns the breadth-first walk of the tree as a sequence of
// (depth, element) pairs. Every range over the sequence starts a fresh walk.
func (n *Node[T]) LevelOrder() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := n.LevelOrderIter()
		for {
			level, data, ok := it.Next()
			if !ok || !yield(level, data) {
				return
			}
		}
	}
}
