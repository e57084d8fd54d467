package bintree_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graytree/pkg/bintree"
	"github.com/matzehuels/graytree/pkg/notation"
)

func TestPrintDatadriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/print", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "print":
			root, err := notation.Parse(td.Input)
			if err != nil {
				return fmt.Sprintf("error: %v", err)
			}
			return root.String()
		default:
			return fmt.Sprintf("unknown command: %s", td.Cmd)
		}
	})
}

func TestPrintSingleLeaf(t *testing.T) {
	require.Equal(t, "42", bintree.New(42).String())
}

func TestPrintEmptyTree(t *testing.T) {
	var n *bintree.Node[int]
	require.Equal(t, "", n.String())

	var buf bytes.Buffer
	require.NoError(t, bintree.Fprint(&buf, n))
	require.Zero(t, buf.Len())
}

func TestFprint(t *testing.T) {
	root, err := bintree.NewBuilder[int]().Data(1).Left(bintree.New(2)).Right(bintree.New(3)).Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, bintree.Fprint(&buf, root))
	require.Equal(t, " 1\n/ \\\n2 3\n", buf.String())
}

func TestPrintDoesNotMutate(t *testing.T) {
	root, err := notation.Parse("1{2{4,5{8,_}},3{6{_,9},7}}")
	require.NoError(t, err)

	first := root.String()
	require.Equal(t, first, root.String())
	require.Equal(t, "1{2{4,5{8,_}},3{6{_,9},7}}", notation.Format(root))
}

func TestPrintLinesHaveNoTrailingBlanks(t *testing.T) {
	root, err := notation.Parse("a{b{c,_},d{_,e{f,g}}}")
	require.NoError(t, err)

	for _, line := range strings.Split(root.String(), "\n") {
		require.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestPrintWideRunes(t *testing.T) {
	// East Asian characters occupy two columns each.
	root, err := bintree.NewBuilder[string]().
		Data("根").
		Left(bintree.New("左")).
		Right(bintree.New("右")).
		Build()
	require.NoError(t, err)

	require.Equal(t, "  根\n/   \\\n左  右", root.String())
}

func TestPrintUsesStringer(t *testing.T) {
	root, err := bintree.NewBuilder[point]().
		Data(point{0, 0}).
		Right(bintree.New(point{1, 2})).
		Build()
	require.NoError(t, err)

	require.Equal(t, "     (0,0)\n            \\\n          (1,2)", root.String())
}

type point struct{ x, y int }

func (p point) String() string { return fmt.Sprintf("(%d,%d)", p.x, p.y) }
