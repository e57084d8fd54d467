package bintree

// Builder assembles a [Node] from an element and optional children.
// Setters return the builder so calls can be chained; setting a field twice
// keeps the last value.
//
// The zero value is ready to use.
type Builder[T any] struct {
	data    T
	hasData bool
	left    *Node[T]
	right   *Node[T]
}

// NewBuilder creates an empty builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Data sets the element of the node being built.
func (b *Builder[T]) Data(data T) *Builder[T] {
	b.data = data
	b.hasData = true
	return b
}

// Left sets the left child. The builder takes ownership of node.
func (b *Builder[T]) Left(node *Node[T]) *Builder[T] {
	b.left = node
	return b
}

// Right sets the right child. The builder takes ownership of node.
func (b *Builder[T]) Right(node *Node[T]) *Builder[T] {
	b.right = node
	return b
}

// Build finalizes the node. It returns [ErrMissingDataField] if [Builder.Data]
// was not called since the builder was created or last built.
//
// Build always empties the builder: on success the collected fields move into
// the new node, on failure they are dropped. Building twice in a row therefore
// fails the second time.
func (b *Builder[T]) Build() (*Node[T], error) {
	defer b.reset()
	if !b.hasData {
		return nil, ErrMissingDataField
	}
	return &Node[T]{data: b.data, left: b.left, right: b.right}, nil
}

func (b *Builder[T]) reset() {
	*b = Builder[T]{}
}
