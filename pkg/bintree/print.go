package bintree

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// cell is one slot of a rendered level. Slots without a node keep their column
// so that the level below stays aligned.
type cell struct {
	text    string
	present bool
}

// String renders the tree as a multi-line diagram. The empty tree renders as
// the empty string. Lines carry no trailing blanks and the result has no final
// newline.
//
// Level idx is laid out as 2^idx slots whether or not they hold nodes, so the
// output size is exponential in the height of the tree: every extra level
// roughly quadruples it. Callers drawing untrusted input should bound the
// height first.
func (n *Node[T]) String() string {
	if n == nil {
		return ""
	}
	levels, width := n.cells()
	return strings.Join(drawLevels(levels, width), "\n")
}

// Fprint writes the diagram of the tree rooted at n to w, followed by a
// newline. Nothing is written for the empty tree.
func Fprint[T any](w io.Writer, n *Node[T]) error {
	if n == nil {
		return nil
	}
	_, err := io.WriteString(w, n.String()+"\n")
	return err
}

// cells collects the text of every slot, level by level, as if the tree were
// complete. Level idx has 2^idx slots. It also returns the display width of the
// widest element, at least 1.
func (n *Node[T]) cells() ([][]cell, int) {
	var levels [][]cell
	width := 1
	slots := []*Node[T]{n}
	for {
		row := make([]cell, len(slots))
		next := make([]*Node[T], 2*len(slots))
		deeper := false
		for i, s := range slots {
			if s == nil {
				continue
			}
			text := fmt.Sprint(s.data)
			width = max(width, runewidth.StringWidth(text))
			row[i] = cell{text: text, present: true}
			next[2*i], next[2*i+1] = s.left, s.right
			deeper = deeper || !s.IsLeaf()
		}
		levels = append(levels, row)
		if !deeper {
			return levels, width
		}
		slots = next
	}
}

// drawLevels lays the levels out on a grid of width-sized units. Above every
// level but the root it draws 2^(len-idx-1) connector rows that fan out from
// the parents to their children.
func drawLevels(levels [][]cell, width int) []string {
	blank := strings.Repeat(" ", width)
	units := func(k int) string { return strings.Repeat(blank, k) }

	var lines []string
	depth := len(levels)
	for idx, row := range levels {
		left := 1<<(depth-idx-1) - 1
		mid := 1<<(depth-idx) - 1

		if idx > 0 {
			for i := 1<<(depth-idx-1) - 1; i >= 0; i-- {
				var sb strings.Builder
				sb.WriteString(units(left + i))
				for j, c := range row {
					if j%2 == 0 {
						sb.WriteString(center(branch(c, "/"), width))
						continue
					}
					sb.WriteString(units(mid - 2*i))
					sb.WriteString(center(branch(c, `\`), width))
					sb.WriteString(units(mid + 2*i))
				}
				lines = append(lines, strings.TrimRight(sb.String(), " "))
			}
		}

		var sb strings.Builder
		sb.WriteString(units(left))
		for _, c := range row {
			sb.WriteString(center(c.text, width))
			sb.WriteString(units(mid))
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	return lines
}

func branch(c cell, tag string) string {
	if !c.present {
		return " "
	}
	return tag
}

// center pads s with blanks to width columns, putting the odd blank on the right.
func center(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	l := pad / 2
	return strings.Repeat(" ", l) + s + strings.Repeat(" ", pad-l)
}
