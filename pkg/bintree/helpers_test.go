package bintree

import "testing"

// referenceTree builds
//
//	1{2{4, 5{8,_}}, 3{6{_,9}, 7}}
func referenceTree(t *testing.T) *Node[int] {
	t.Helper()
	must := func(n *Node[int], err error) *Node[int] {
		t.Helper()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		return n
	}

	left := must(NewBuilder[int]().
		Data(2).
		Left(New(4)).
		Right(must(NewBuilder[int]().Data(5).Left(New(8)).Build())).
		Build())
	right := must(NewBuilder[int]().
		Data(3).
		Left(must(NewBuilder[int]().Data(6).Right(New(9)).Build())).
		Right(New(7)).
		Build())
	return must(NewBuilder[int]().Data(1).Left(left).Right(right).Build())
}

// completeTree builds a complete tree of the given height whose elements are
// numbered in level order starting at 1.
func completeTree(height int) *Node[int] {
	var build func(id, depth int) *Node[int]
	build = func(id, depth int) *Node[int] {
		n := New(id)
		if depth < height {
			n.left = build(2*id, depth+1)
			n.right = build(2*id+1, depth+1)
		}
		return n
	}
	return build(1, 0)
}

// shape describes which children are present, in pre-order, so two trees can
// be compared regardless of element type.
func shape[T any](n *Node[T]) string {
	if n == nil {
		return "_"
	}
	if n.IsLeaf() {
		return "*"
	}
	return "*(" + shape(n.left) + "," + shape(n.right) + ")"
}

// preOrder lists elements in pre-order without consuming the tree.
func preOrder[T any](n *Node[T]) []T {
	if n == nil {
		return nil
	}
	out := []T{n.data}
	out = append(out, preOrder(n.left)...)
	return append(out, preOrder(n.right)...)
}
