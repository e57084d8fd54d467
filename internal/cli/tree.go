package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graytree/pkg/bintree"
	"github.com/matzehuels/graytree/pkg/errors"
	"github.com/matzehuels/graytree/pkg/notation"
)

// demoExpr is the tree built by the demo command.
const demoExpr = "1{2{4,5{8,_}},3{6{_,9},7}}"

// parseArgs joins the positional arguments so that unquoted expressions
// containing spaces still parse.
func parseArgs(args []string) (*bintree.Node[string], error) {
	return notation.Parse(strings.Join(args, " "))
}

// printCommand creates the print command.
func (c *CLI) printCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "print <expr>",
		Short: "Draw a tree as a text diagram",
		Long: `Draw a tree as a text diagram.

Every level gets twice the columns of the one above, so wide trees grow quickly.`,
		Example: `  graytree print '1{2{4,5},3{_,6}}'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseArgs(args)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("parsed tree", "nodes", root.Len(), "height", root.Height())
			if err := errors.ValidateDrawHeight(root.Height()); err != nil {
				return err
			}
			return bintree.Fprint(cmd.OutOrStdout(), root)
		},
	}
}

// demoCommand creates the demo command. It builds the reference tree through
// the builder, consumes it with a post-order map that prints every element,
// lists the result level by level and finally draws it.
func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the library on a sample tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := demoTree()
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), root)
		},
	}
}

// demoTree assembles the demo tree bottom up with builders.
func demoTree() (*bintree.Node[int], error) {
	left, err := func() (*bintree.Node[int], error) {
		four, err := bintree.NewBuilder[int]().Data(4).Build()
		if err != nil {
			return nil, err
		}
		five, err := bintree.NewBuilder[int]().Data(5).Left(bintree.New(8)).Build()
		if err != nil {
			return nil, err
		}
		return bintree.NewBuilder[int]().Data(2).Left(four).Right(five).Build()
	}()
	if err != nil {
		return nil, err
	}

	right, err := func() (*bintree.Node[int], error) {
		six, err := bintree.NewBuilder[int]().Data(6).Right(bintree.New(9)).Build()
		if err != nil {
			return nil, err
		}
		return bintree.NewBuilder[int]().Data(3).Left(six).Right(bintree.New(7)).Build()
	}()
	if err != nil {
		return nil, err
	}

	return bintree.NewBuilder[int]().Data(1).Left(left).Right(right).Build()
}

func runDemo(w io.Writer, root *bintree.Node[int]) error {
	if err := errors.ValidateDrawHeight(root.Height()); err != nil {
		return err
	}
	fmt.Fprintln(w, StyleTitle.Render("Post-order map"))
	root = bintree.PostOrderMap(root, func(v int) int {
		fmt.Fprintln(w, v)
		return v
	})

	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render("Level order"))
	for _, line := range levelLines(root) {
		fmt.Fprintln(w, strings.Join(line, " "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render("Diagram"))
	if err := bintree.Fprint(w, root); err != nil {
		return err
	}

	fmt.Fprintln(w)
	printNextStep(w, "Render it", "graytree render '"+demoExpr+"' -f svg")
	return nil
}

// levelLines groups the level-order walk of root by depth.
func levelLines[T any](root *bintree.Node[T]) [][]string {
	var lines [][]string
	for level, data := range root.LevelOrder() {
		if level == len(lines) {
			lines = append(lines, nil)
		}
		lines[level] = append(lines[level], fmt.Sprint(data))
	}
	return lines
}

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "stats <expr>",
		Short:   "Summarize the shape of a tree",
		Example: `  graytree stats '1{2{4,5},3{_,6}}'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseArgs(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			s := collectStats(root)
			printKeyNumber(w, "nodes", s.nodes)
			printKeyNumber(w, "height", s.height)
			printKeyNumber(w, "leaves", s.leaves)
			printKeyValue(w, "complete", fmt.Sprint(s.complete()))
			for level, n := range s.widths {
				printKeyNumber(w, fmt.Sprintf("level %d", level), n)
			}
			return nil
		},
	}
}

type treeStats struct {
	nodes  int
	height int
	leaves int
	widths []int // node count per level
}

// complete reports whether every level is full.
func (s treeStats) complete() bool {
	for level, n := range s.widths {
		if n != 1<<level {
			return false
		}
	}
	return true
}

func collectStats[T any](root *bintree.Node[T]) treeStats {
	s := treeStats{
		nodes:  root.Len(),
		height: root.Height(),
		leaves: countLeaves(root),
	}
	for level := range root.LevelOrder() {
		if level == len(s.widths) {
			s.widths = append(s.widths, 0)
		}
		s.widths[level]++
	}
	return s
}

func countLeaves[T any](n *bintree.Node[T]) int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return countLeaves(n.Left()) + countLeaves(n.Right())
}
