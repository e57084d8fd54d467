// Package nodelink renders binary trees as node-link diagrams.
//
// # Overview
//
// This package produces Graphviz visualizations where elements appear as
// circles connected by arrows from parent to child. It complements the text
// diagram of [bintree.Node.String] when a graphical output is wanted.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Left and Right
//
// Graphviz has no notion of left and right children. The generated DOT sets
// ordering=out and inserts an invisible placeholder wherever a node has only
// one child, so a lone right child is drawn to the right of its parent.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [bintree.Node.String]: github.com/matzehuels/graytree/pkg/bintree
package nodelink
