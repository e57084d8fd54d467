// Package bintree provides a generic binary tree whose nodes own their
// children, together with traversal and rendering helpers.
//
// # Overview
//
// A [Node] holds exactly one element and up to two child subtrees. Trees are
// assembled bottom-up: leaves are created with [New], and larger trees are
// composed with a [Builder], which takes ownership of the subtrees handed to it:
//
//	left, _ := bintree.NewBuilder[int]().Data(2).Left(bintree.New(4)).Build()
//	root, err := bintree.NewBuilder[int]().Data(1).Left(left).Right(bintree.New(3)).Build()
//	if err != nil {
//	    // only possible error: ErrMissingDataField
//	}
//
// [Builder.Build] is the only fallible operation in the package. It fails with
// [ErrMissingDataField] when no element was supplied.
//
// # Mapping Traversals
//
// [PreOrderMap], [InOrderMap] and [PostOrderMap] consume a tree and produce a
// new tree of the same shape whose elements are the results of a transform. The
// transform is called exactly once per node, in the order named by the
// function, so it may carry state across calls:
//
//	n := 0
//	visits := bintree.PostOrderMap(root, func(v int) string {
//	    n++
//	    return fmt.Sprintf("%d@%d", v, n)
//	})
//
// The source tree must not be used after it has been mapped: every consumed node
// is detached from its children and its element is reset to the zero value.
//
// # Level Order
//
// [Node.LevelOrderIter] returns a breadth-first iterator that reports the depth
// of every element (root depth is 0). [LevelOrderIter.Level] exposes the depth
// of the element that the next call to [LevelOrderIter.Next] returns.
// [Node.LevelOrder] wraps the same walk as an [iter.Seq2] for range loops.
//
// # Rendering
//
// [Node.String] draws the tree with '/' and '\' connectors, laid out as if the
// tree were complete so that siblings stay aligned:
//
//	   1
//	  / \
//	 /   \
//	 2   3
//	/ \   \
//	4 5   6
//
// Every column is as wide as the widest element's text ("%v").
//
// # Ownership
//
// Go cannot enforce single ownership at compile time, so it is an API contract:
// a subtree passed to [Builder.Left], [Builder.Right] or a mapping function
// belongs to the receiver afterwards. Attaching the same subtree to two parents
// is not detected. A nil *Node is the empty tree.
//
// # Concurrency
//
// Trees are not safe for concurrent mutation. Read-only use (accessors,
// iterators, rendering) from several goroutines is safe as long as nobody
// mutates or consumes the tree at the same time.
package bintree
