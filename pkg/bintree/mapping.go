package bintree

// PreOrderMap consumes the tree rooted at n and returns a tree of the same
// shape holding f applied to every element. f sees each node before its left
// subtree, and the left subtree before the right one.
//
// After the call n is an empty leaf and must not be used.
func PreOrderMap[T, U any](n *Node[T], f func(T) U) *Node[U] {
	if n == nil {
		return nil
	}
	data, left, right := n.take()
	out := &Node[U]{data: f(data)}
	out.left = PreOrderMap(left, f)
	out.right = PreOrderMap(right, f)
	return out
}

// InOrderMap is like [PreOrderMap] but visits the left subtree, then the node,
// then the right subtree.
func InOrderMap[T, U any](n *Node[T], f func(T) U) *Node[U] {
	if n == nil {
		return nil
	}
	data, left, right := n.take()
	out := &Node[U]{}
	out.left = InOrderMap(left, f)
	out.data = f(data)
	out.right = InOrderMap(right, f)
	return out
}

// PostOrderMap is like [PreOrderMap] but visits both subtrees, left first,
// before the node itself.
func PostOrderMap[T, U any](n *Node[T], f func(T) U) *Node[U] {
	if n == nil {
		return nil
	}
	data, left, right := n.take()
	out := &Node[U]{}
	out.left = PostOrderMap(left, f)
	out.right = PostOrderMap(right, f)
	out.data = f(data)
	return out
}
