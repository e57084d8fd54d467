package nodelink

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/matzehuels/graytree/pkg/bintree"
	"github.com/matzehuels/graytree/pkg/notation"
)

func mustParse(t *testing.T, expr string) *bintree.Node[string] {
	t.Helper()
	root, err := notation.Parse(expr)
	if err != nil {
		t.Fatalf("Parse(%q): %v", expr, err)
	}
	return root
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(mustParse(t, "a{b,c}"), Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, "ordering=out") {
		t.Error("ToDOT() output missing child ordering")
	}
	for _, want := range []string{`n0 [label="a"]`, `n1 [label="b"`, `n2 [label="c"`, "n0 -> n1;", "n0 -> n2;"} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q", want)
		}
	}
	if strings.Contains(dot, "invis") {
		t.Error("ToDOT() full node should not get placeholders")
	}
}

func TestToDOT_Exact(t *testing.T) {
	got := ToDOT(mustParse(t, "1{_,2}"), Options{})
	want := `digraph G {
  rankdir=TB;
  ordering=out;
  bgcolor="transparent";
  node [shape=circle, style=filled, fillcolor=white, fontsize=18, margin="0.05"];
  ranksep=0.4;
  nodesep=0.3;

  n0 [label="1"];
  h0 [label="", style=invis];
  n1 [label="2", fillcolor=lightgrey];

  n0 -> h0 [style=invis];
  n0 -> n1;
}
`
	if got != want {
		t.Errorf("ToDOT() =\n%s\nwant\n%s", got, want)
	}
}

func TestToDOT_LevelOrderIDs(t *testing.T) {
	root := mustParse(t, "1{2{4,5{8,_}},3{6{_,9},7}}")
	dot := ToDOT(root, Options{})

	// Identifiers follow the breadth-first walk.
	var i int
	for _, data := range root.LevelOrder() {
		want := "n" + strconv.Itoa(i) + ` [label="` + data + `"`
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q", want)
		}
		i++
	}
	if got := strings.Count(dot, "style=invis]"); got != 4 {
		t.Errorf("ToDOT() placeholder count = %d, want 4 (two nodes, two edges)", got)
	}
}

func TestToDOT_Empty(t *testing.T) {
	dot := ToDOT[int](nil, Options{})
	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("ToDOT(nil) = %q, want an empty digraph", dot)
	}
	if strings.Contains(dot, "->") {
		t.Error("ToDOT(nil) should have no edges")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(mustParse(t, "a{b,_}"), Options{Detailed: true})

	if !strings.Contains(dot, `label="a\ndepth: 0"`) {
		t.Error("ToDOT() detailed output missing root depth")
	}
	if !strings.Contains(dot, `label="b\ndepth: 1"`) {
		t.Error("ToDOT() detailed output missing child depth")
	}
}

func TestFmtLabel_Simple(t *testing.T) {
	n := dotNode{id: "n0", label: "test-node"}
	if label := fmtLabel(n, false); label != "test-node" {
		t.Errorf("fmtLabel() simple mode = %q, want %q", label, "test-node")
	}
}

func TestFmtLabel_Detailed(t *testing.T) {
	n := dotNode{id: "n3", label: "test-node", depth: 2}
	want := "test-node\ndepth: 2"
	if label := fmtLabel(n, true); label != want {
		t.Errorf("fmtLabel() detailed mode = %q, want %q", label, want)
	}
}

func TestFmtAttrs(t *testing.T) {
	tests := []struct {
		name string
		node dotNode
		want string
	}{
		{"inner", dotNode{label: "x"}, `label="x"`},
		{"leaf", dotNode{label: "x", leaf: true}, `label="x", fillcolor=lightgrey`},
		{"placeholder", dotNode{hole: true}, `label="", style=invis`},
		{"quoted", dotNode{label: `say "hi"`}, `label="say \"hi\""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(fmtAttrs(tt.node, false), ", ")
			if got != tt.want {
				t.Errorf("fmtAttrs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	dot := ToDOT(mustParse(t, "1{2,3}"), Options{})
	svg, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	_, err := RenderSVG(context.Background(), `not valid DOT {{{`)
	if err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
