package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graytree/pkg/bintree"
	"github.com/matzehuels/graytree/pkg/errors"
)

// Walk styles
var (
	walkLevelStyle = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	walkDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	walkBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// walkCommand creates the walk command.
func (c *CLI) walkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "walk <expr>",
		Short: "Step through a tree level by level",
		Long: `Step through a tree with the level-order iterator.

Each key press reveals the next element and the depth it was found at.`,
		Example: `  graytree walk '1{2{4,5},3{_,6}}'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseArgs(args)
			if err != nil {
				return err
			}
			if err := errors.ValidateDrawHeight(root.Height()); err != nil {
				return err
			}
			p := tea.NewProgram(newWalkModel(root),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(WalkModel); ok {
				loggerFromContext(cmd.Context()).Debug("walk finished", "visited", m.Visited, "total", m.Total)
			}
			return nil
		},
	}
}

// =============================================================================
// WalkModel - Interactive level-order stepper
// =============================================================================

// WalkModel is the bubbletea model for stepping through a level-order walk.
type WalkModel struct {
	Diagram string
	Levels  [][]string // elements seen so far, by depth
	Visited int
	Total   int
	Done    bool

	iter *bintree.LevelOrderIter[string]
}

func newWalkModel(root *bintree.Node[string]) WalkModel {
	return WalkModel{
		Diagram: root.String(),
		Total:   root.Len(),
		iter:    root.LevelOrderIter(),
	}
}

func (m WalkModel) Init() tea.Cmd {
	return nil
}

func (m WalkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "enter", "n", "right", "l":
			m = m.step()
		case "end", "G":
			for !m.Done {
				m = m.step()
			}
		}
	}
	return m, nil
}

// step advances the iterator by one element.
func (m WalkModel) step() WalkModel {
	level, data, ok := m.iter.Next()
	if !ok {
		m.Done = true
		return m
	}
	for len(m.Levels) <= level {
		m.Levels = append(m.Levels, nil)
	}
	m.Levels[level] = append(m.Levels[level], data)
	m.Visited++
	if m.Visited == m.Total {
		m.Done = true
	}
	return m
}

func (m WalkModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Level-order walk"))
	b.WriteString("\n")
	b.WriteString(walkDimStyle.Render("space/enter: next  G: finish  q: quit"))
	b.WriteString("\n\n")
	b.WriteString(walkBoxStyle.Render(m.Diagram))
	b.WriteString("\n\n")

	for depth, line := range m.Levels {
		b.WriteString(walkLevelStyle.Render(fmt.Sprintf("depth %d", depth)))
		for i, data := range line {
			last := depth == len(m.Levels)-1 && i == len(line)-1
			if last {
				b.WriteString(StyleHighlight.Render(data))
			} else {
				b.WriteString(StyleValue.Render(data))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Done {
		b.WriteString(StyleSuccess.Render(fmt.Sprintf("Visited all %d elements", m.Total)))
	} else {
		b.WriteString(walkDimStyle.Render(fmt.Sprintf("  [%d/%d] next depth %d", m.Visited, m.Total, m.iter.Level())))
	}
	b.WriteString("\n")
	return b.String()
}
