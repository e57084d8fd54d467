// Package pkg provides the libraries behind graytree.
//
// # Overview
//
// Graytree builds binary trees, walks them in the classic orders and draws
// them. The pkg directory is organized into three areas:
//
//  1. [bintree] - The tree itself: nodes, the builder, mapping traversals,
//     the level-order iterator and the text diagram
//  2. [notation], [render] - Reading trees from text and drawing them with Graphviz
//  3. [cache], [config], [errors], [observability], [buildinfo] - Infrastructure
//     shared by the command-line interface
//
// # Architecture
//
// The typical data flow through the CLI:
//
//	Brace notation, e.g. 1{2,3}
//	         ↓
//	    [notation] package (parse through the builder)
//	         ↓
//	    [bintree] package (map, iterate, print)
//	         ↓
//	    [render/nodelink] package (DOT, then SVG/PDF/PNG)
//
// # Quick Start
//
// Build a tree and draw it:
//
//	import "github.com/matzehuels/graytree/pkg/bintree"
//
//	left := bintree.New(2)
//	root, err := bintree.NewBuilder[int]().Data(1).Left(left).Build()
//	if err != nil {
//	    return err
//	}
//
//	// Consume the tree, doubling every element in post order
//	root = bintree.PostOrderMap(root, func(v int) int { return 2 * v })
//
//	fmt.Println(root)
//
// # Ownership
//
// Trees are owned by exactly one holder. Builders take ownership of the
// children they are given, and the mapping traversals consume their input.
// The library does no locking: share a tree between goroutines only for
// reading.
//
// [bintree]: https://pkg.go.dev/github.com/matzehuels/graytree/pkg/bintree
// [notation]: https://pkg.go.dev/github.com/matzehuels/graytree/pkg/notation
// [render]: https://pkg.go.dev/github.com/matzehuels/graytree/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/graytree/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/matzehuels/graytree/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/graytree/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/graytree/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/graytree/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/graytree/pkg/buildinfo
package pkg
