package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grundylab/kayles/pkg/game"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func mustState(t *testing.T, vertices []string, edges []game.Edge) *game.State {
	t.Helper()
	s, err := game.NewState(vertices, edges)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func pathState(t *testing.T, labels ...string) *game.State {
	t.Helper()
	edges := make([]game.Edge, 0, len(labels)-1)
	for i := 1; i < len(labels); i++ {
		edges = append(edges, game.Edge{U: labels[i-1], V: labels[i]})
	}
	return mustState(t, labels, edges)
}

func TestPlayModelCursorMovement(t *testing.T) {
	m := newPlayModel(pathState(t, "a", "b", "c"), true, false)

	next, _ := m.Update(keyMsg("j"))
	m = next.(playModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after one down, want 1", m.cursor)
	}

	next, _ = m.Update(keyMsg("j"))
	m = next.(playModel)
	next, _ = m.Update(keyMsg("j"))
	m = next.(playModel)
	if m.cursor != 2 {
		t.Errorf("cursor = %d, should clamp at last vertex", m.cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(playModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after up, want 1", m.cursor)
	}
}

func TestPlayModelMoveRemovesNeighborhood(t *testing.T) {
	m := newPlayModel(pathState(t, "a", "b", "c"), true, false)

	// Cursor starts on "a"; taking it removes a and b, leaving c.
	next, _ := m.Update(keyMsg("enter"))
	m = next.(playModel)

	if got := m.state.Vertices(); !equalStrings(got, []string{"c"}) {
		t.Fatalf("remaining vertices = %v, want [c]", got)
	}
	if m.turn != 1 {
		t.Errorf("turn = %d, want 1 after the first move", m.turn)
	}
	if m.winner != "" {
		t.Errorf("winner = %q, game is not over", m.winner)
	}

	if len(m.transcript.Turns) != 1 {
		t.Fatalf("transcript has %d turns, want 1", len(m.transcript.Turns))
	}
	turn := m.transcript.Turns[0]
	if turn.Player != "Player 1" || turn.Vertex != "a" {
		t.Errorf("turn = %+v, want Player 1 taking a", turn)
	}
	if !equalStrings(turn.Removed, []string{"a", "b"}) {
		t.Errorf("Removed = %v, want [a b]", turn.Removed)
	}
}

func TestPlayModelWinDetection(t *testing.T) {
	m := newPlayModel(pathState(t, "a", "b", "c"), true, false)

	// Player 1 takes a (removes a, b); Player 2 takes c and wins.
	next, _ := m.Update(keyMsg("enter"))
	m = next.(playModel)
	next, _ = m.Update(keyMsg("enter"))
	m = next.(playModel)

	if !m.state.IsTerminal() {
		t.Fatal("board should be empty")
	}
	if m.winner != "Player 2" {
		t.Errorf("winner = %q, want Player 2", m.winner)
	}
	if !m.transcript.Finished {
		t.Error("transcript should be marked finished")
	}
	if m.transcript.Winner != "Player 2" {
		t.Errorf("transcript winner = %q, want Player 2", m.transcript.Winner)
	}
	if m.transcript.ID == "" {
		t.Error("transcript should carry an ID")
	}

	// Input after the game ends is ignored.
	next, _ = m.Update(keyMsg("enter"))
	m = next.(playModel)
	if len(m.transcript.Turns) != 2 {
		t.Errorf("transcript has %d turns, want 2", len(m.transcript.Turns))
	}
}

func TestPlayModelComputerIgnoresHumanKeys(t *testing.T) {
	m := newPlayModel(pathState(t, "a", "b", "c"), false, true)

	if !m.computer[m.turn] {
		t.Fatal("computer should be on turn with --computer-first")
	}

	next, _ := m.Update(keyMsg("enter"))
	m = next.(playModel)
	if len(m.transcript.Turns) != 0 {
		t.Error("enter during the computer's turn should do nothing")
	}
}

func TestPlayModelComputerPlaysWinningMove(t *testing.T) {
	// On P_3 the unique winning move is the middle vertex.
	m := newPlayModel(pathState(t, "a", "b", "c"), false, true)

	next, _ := m.Update(computerMoveMsg{})
	m = next.(playModel)

	if len(m.transcript.Turns) != 1 {
		t.Fatalf("transcript has %d turns, want 1", len(m.transcript.Turns))
	}
	if got := m.transcript.Turns[0].Vertex; got != "b" {
		t.Errorf("computer took %q, want the winning move b", got)
	}
	if m.winner != "Computer" {
		t.Errorf("winner = %q, taking b empties the board", m.winner)
	}
}

func TestPlayModelViewShowsMover(t *testing.T) {
	m := newPlayModel(pathState(t, "a", "b"), true, false)

	view := m.View()
	if !strings.Contains(view, "Player 1 to move") {
		t.Errorf("view should name the side to move, got:\n%s", view)
	}

	next, _ := m.Update(keyMsg("enter"))
	m = next.(playModel)
	if !strings.Contains(m.View(), "Player 1 wins!") {
		t.Error("view should announce the winner")
	}
}

func TestPlayModelHintToggle(t *testing.T) {
	m := newPlayModel(pathState(t, "a", "b", "c"), true, false)

	next, _ := m.Update(keyMsg("h"))
	m = next.(playModel)
	if !strings.Contains(m.View(), "N-position") {
		t.Error("hint should reveal the verdict for P_3")
	}

	next, _ = m.Update(keyMsg("h"))
	m = next.(playModel)
	if strings.Contains(m.View(), "N-position") {
		t.Error("second h should hide the hint")
	}
}
