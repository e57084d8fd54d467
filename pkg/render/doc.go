// Package render provides graphical output for binary trees.
//
// # Overview
//
// Text diagrams are produced by the tree itself ([bintree.Node.String]). This
// package covers everything beyond plain text:
//
//   - Node-link diagrams through Graphviz (in [nodelink] subpackage)
//   - Generic format conversion (SVG to PDF/PNG)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// Use [Available] to check for the tool before offering these formats.
//
// [bintree.Node.String]: github.com/matzehuels/graytree/pkg/bintree
// [nodelink]: github.com/matzehuels/graytree/pkg/render/nodelink
package render
