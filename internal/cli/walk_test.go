package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/graytree/pkg/notation"
)

func newTestWalk(t *testing.T, expr string) WalkModel {
	t.Helper()
	root, err := notation.Parse(expr)
	if err != nil {
		t.Fatalf("Parse(%q): %v", expr, err)
	}
	return newWalkModel(root)
}

func press(t *testing.T, m WalkModel, key tea.KeyMsg) (WalkModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	wm, ok := next.(WalkModel)
	if !ok {
		t.Fatalf("Update returned %T, want WalkModel", next)
	}
	return wm, cmd
}

var (
	keyNext  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEnd   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func TestWalkModelSteps(t *testing.T) {
	m := newTestWalk(t, "1{2,3}")
	if m.Total != 3 || m.Visited != 0 || m.Done {
		t.Fatalf("new model = %+v, want 0 of 3 visited", m)
	}
	if !strings.Contains(m.View(), "[0/3] next depth 0") {
		t.Errorf("View() before the first step:\n%s", m.View())
	}

	m, _ = press(t, m, keyNext)
	if got := m.Levels; len(got) != 1 || strings.Join(got[0], " ") != "1" {
		t.Errorf("after one step Levels = %v, want [[1]]", got)
	}
	if !strings.Contains(m.View(), "[1/3] next depth 1") {
		t.Errorf("View() after one step:\n%s", m.View())
	}

	m, _ = press(t, m, keySpace)
	m, _ = press(t, m, keyEnter)
	if len(m.Levels) != 2 || strings.Join(m.Levels[1], " ") != "2 3" {
		t.Errorf("Levels = %v, want [[1] [2 3]]", m.Levels)
	}
	if !m.Done {
		t.Error("model should be done after visiting every element")
	}
	if !strings.Contains(m.View(), "Visited all 3 elements") {
		t.Errorf("View() when done:\n%s", m.View())
	}

	// Stepping past the end changes nothing.
	m, _ = press(t, m, keyNext)
	if m.Visited != 3 {
		t.Errorf("Visited = %d after the end, want 3", m.Visited)
	}
}

func TestWalkModelFinish(t *testing.T) {
	m := newTestWalk(t, "1{2{4,5{8,_}},3{6{_,9},7}}")
	m, _ = press(t, m, keyEnd)

	want := []string{"1", "2 3", "4 5 6 7", "8 9"}
	if len(m.Levels) != len(want) {
		t.Fatalf("Levels = %v, want %d levels", m.Levels, len(want))
	}
	for i, line := range m.Levels {
		if got := strings.Join(line, " "); got != want[i] {
			t.Errorf("level %d = %q, want %q", i, got, want[i])
		}
	}
	if !m.Done || m.Visited != 9 {
		t.Errorf("Done = %v, Visited = %d, want true and 9", m.Done, m.Visited)
	}
}

func TestWalkModelQuit(t *testing.T) {
	m := newTestWalk(t, "1")
	_, cmd := press(t, m, keyQuit)
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
}

func TestWalkModelViewShowsDiagram(t *testing.T) {
	m := newTestWalk(t, "a{b,c}")
	view := m.View()
	for _, line := range strings.Split(m.Diagram, "\n") {
		if !strings.Contains(view, line) {
			t.Errorf("View() missing diagram line %q:\n%s", line, view)
		}
	}
}
