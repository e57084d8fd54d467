package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graytree/pkg/bintree"
	"github.com/matzehuels/graytree/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the depth of every node to its label.
	// When false, only the element text is shown.
	Detailed bool
}

type dotNode struct {
	id    string
	label string
	depth int
	leaf  bool
	hole  bool // invisible stand-in for an absent sibling
}

type dotEdge struct {
	from, to string
	hole     bool
}

// ToDOT converts a tree to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Nodes are named n0, n1, ... in level order. When a node has a single child,
// an invisible placeholder takes the place of the missing one so that left
// and right children keep their sides.
func ToDOT[T any](root *bintree.Node[T], opts Options) string {
	nodes, edges := collect(root)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  ordering=out;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18, margin=\"0.05\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range nodes {
		fmt.Fprintf(&buf, "  %s [%s];\n", n.id, strings.Join(fmtAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		if e.hole {
			fmt.Fprintf(&buf, "  %s -> %s [style=invis];\n", e.from, e.to)
			continue
		}
		fmt.Fprintf(&buf, "  %s -> %s;\n", e.from, e.to)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// collect walks the tree breadth first and lists the DOT nodes and edges.
func collect[T any](root *bintree.Node[T]) ([]dotNode, []dotEdge) {
	type queued struct {
		node  *bintree.Node[T]
		id    string
		depth int
	}

	var (
		nodes []dotNode
		edges []dotEdge
		next  int
		holes int
	)
	if root == nil {
		return nil, nil
	}

	newID := func() string {
		id := "n" + strconv.Itoa(next)
		next++
		return id
	}

	queue := []queued{{node: root, id: newID()}}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		nodes = append(nodes, dotNode{
			id:    q.id,
			label: fmt.Sprint(q.node.Data()),
			depth: q.depth,
			leaf:  q.node.IsLeaf(),
		})
		if q.node.IsLeaf() {
			continue
		}

		for _, child := range []*bintree.Node[T]{q.node.Left(), q.node.Right()} {
			if child == nil {
				id := "h" + strconv.Itoa(holes)
				holes++
				nodes = append(nodes, dotNode{id: id, depth: q.depth + 1, hole: true})
				edges = append(edges, dotEdge{from: q.id, to: id, hole: true})
				continue
			}
			id := newID()
			edges = append(edges, dotEdge{from: q.id, to: id})
			queue = append(queue, queued{node: child, id: id, depth: q.depth + 1})
		}
	}
	return nodes, edges
}

func fmtLabel(n dotNode, detailed bool) string {
	if !detailed {
		return n.label
	}
	return fmt.Sprintf("%s\ndepth: %d", n.label, n.depth)
}

func fmtAttrs(n dotNode, detailed bool) []string {
	if n.hole {
		return []string{`label=""`, "style=invis"}
	}
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, detailed))}
	if n.leaf {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
