package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graytree/pkg/bintree"
	"github.com/matzehuels/graytree/pkg/config"
	"github.com/matzehuels/graytree/pkg/errors"
	"github.com/matzehuels/graytree/pkg/notation"
)

const (
	orderPre   = "pre"
	orderIn    = "in"
	orderPost  = "post"
	orderLevel = "level"
)

// mapOrders are the orders a mapping traversal can follow.
var mapOrders = []string{orderPre, orderIn, orderPost}

// transforms lists the functions accepted by map --fn.
var transforms = []string{"upper", "lower", "len", "reverse", "index"}

func validateOrder(order string, allowed []string) error {
	if !slices.Contains(allowed, order) {
		return errors.New(errors.ErrCodeInvalidOrder, "order %q: must be one of %s", order, strings.Join(allowed, ", "))
	}
	return nil
}

// traverseCommand creates the traverse command.
func (c *CLI) traverseCommand() *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "traverse <expr>",
		Short: "List the elements of a tree in visiting order",
		Long: `List the elements of a tree in visiting order.

Depth-first orders print one line. Level order prints one line per depth,
prefixed by the depth.`,
		Example: `  graytree traverse '1{2{4,5},3{_,6}}' --order in
  graytree traverse '1{2{4,5},3{_,6}}' --order level`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("order") {
				order = c.Config.Order
			}
			if err := validateOrder(order, config.Orders); err != nil {
				return err
			}
			root, err := parseArgs(args)
			if err != nil {
				return err
			}
			return traverse(cmd.OutOrStdout(), root, order)
		},
	}

	cmd.Flags().StringVar(&order, "order", orderPre, "visiting order: pre, in, post, level")
	_ = cmd.RegisterFlagCompletionFunc("order", cobra.FixedCompletions(config.Orders, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

// traverse prints the elements of root in order. Depth-first orders consume
// root.
func traverse(w io.Writer, root *bintree.Node[string], order string) error {
	if order == orderLevel {
		for level, line := range levelLines(root) {
			fmt.Fprintf(w, "%d: %s\n", level, strings.Join(line, " "))
		}
		return nil
	}

	var seen []string
	record := func(s string) struct{} {
		seen = append(seen, s)
		return struct{}{}
	}
	if _, err := mapInOrder(root, order, record); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, strings.Join(seen, " "))
	return err
}

// mapInOrder dispatches to the mapping traversal named by order.
func mapInOrder[U any](root *bintree.Node[string], order string, f func(string) U) (*bintree.Node[U], error) {
	switch order {
	case orderPre:
		return bintree.PreOrderMap(root, f), nil
	case orderIn:
		return bintree.InOrderMap(root, f), nil
	case orderPost:
		return bintree.PostOrderMap(root, f), nil
	}
	return nil, validateOrder(order, mapOrders)
}

// mapCommand creates the map command.
func (c *CLI) mapCommand() *cobra.Command {
	var (
		order string
		fn    string
	)

	cmd := &cobra.Command{
		Use:   "map <expr>",
		Short: "Transform every element of a tree",
		Long: `Transform every element of a tree with a mapping traversal.

The result has the same shape and is printed in brace notation and as a
diagram. Functions:
  upper, lower   change the case of the label
  len            replace the label by its length in characters
  reverse        reverse the label
  index          replace the label by its position in the visiting order

The index function shows the difference between orders: the same tree mapped
in pre, in and post order numbers its elements differently.`,
		Example: `  graytree map '1{2{4,5},3{_,6}}' --fn index --order post`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("order") && c.Config.Order != orderLevel {
				order = c.Config.Order
			}
			if err := validateOrder(order, mapOrders); err != nil {
				return err
			}
			root, err := parseArgs(args)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("mapping", "fn", fn, "order", order, "nodes", root.Len())
			return runMap(cmd.OutOrStdout(), root, order, fn)
		},
	}

	cmd.Flags().StringVar(&order, "order", orderPre, "mapping order: pre, in, post")
	cmd.Flags().StringVar(&fn, "fn", "upper", "function: "+strings.Join(transforms, ", "))
	_ = cmd.RegisterFlagCompletionFunc("order", cobra.FixedCompletions(mapOrders, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("fn", cobra.FixedCompletions(transforms, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func runMap(w io.Writer, root *bintree.Node[string], order, fn string) error {
	switch fn {
	case "upper":
		return mapAndPrint(w, root, order, strings.ToUpper)
	case "lower":
		return mapAndPrint(w, root, order, strings.ToLower)
	case "len":
		return mapAndPrint(w, root, order, utf8.RuneCountInString)
	case "reverse":
		return mapAndPrint(w, root, order, reverse)
	case "index":
		i := 0
		return mapAndPrint(w, root, order, func(string) int {
			i++
			return i
		})
	}
	return errors.New(errors.ErrCodeInvalidTransform, "function %q: must be one of %s", fn, strings.Join(transforms, ", "))
}

func mapAndPrint[U any](w io.Writer, root *bintree.Node[string], order string, f func(string) U) error {
	if err := errors.ValidateDrawHeight(root.Height()); err != nil {
		return err
	}
	out, err := mapInOrder(root, order, f)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, notation.Format(out))
	fmt.Fprintln(w)
	return bintree.Fprint(w, out)
}

func reverse(s string) string {
	r := []rune(s)
	slices.Reverse(r)
	return string(r)
}
