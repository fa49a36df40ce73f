package game

import "fmt"

// Position labels a state under optimal play.
type Position int

const (
	// PositionP marks a previous-player win: the player to move loses
	// against optimal play. Grundy value 0.
	PositionP Position = iota
	// PositionN marks a next-player win: the player to move can force a
	// win. Grundy value > 0.
	PositionN
)

// String returns "P" or "N".
func (p Position) String() string {
	if p == PositionN {
		return "N"
	}
	return "P"
}

// MarshalText encodes the position as "P" or "N" for JSON output.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes "P" or "N".
func (p *Position) UnmarshalText(text []byte) error {
	switch string(text) {
	case "N":
		*p = PositionN
	case "P":
		*p = PositionP
	default:
		return fmt.Errorf("invalid position %q", text)
	}
	return nil
}

// Analysis is the full verdict for a state: its Grundy number, the N/P
// label derived from it, and every winning move.
type Analysis struct {
	Grundy       int      `json:"grundy"`
	Position     Position `json:"position"`
	WinningMoves []string `json:"winning_moves,omitempty"`
}

// Classify returns the position label of s: PositionP when the Grundy
// number is 0, PositionN otherwise.
func (e *Engine) Classify(s *State) Position {
	if e.Grundy(s) == 0 {
		return PositionP
	}
	return PositionN
}

// WinningMoves returns every vertex whose removal hands the opponent a
// P-position (resulting Grundy value exactly 0), in sorted order. The
// result is empty for terminal states and for P-positions: from a
// P-position every available move leads to a non-zero value.
func (e *Engine) WinningMoves(s *State) []string {
	var wins []string
	for _, m := range s.Moves() {
		if e.Grundy(m.Result) == 0 {
			wins = append(wins, m.Vertex)
		}
	}
	return wins
}

// Analyze evaluates s once and bundles the Grundy number, position label,
// and winning moves. This is the surface callers normally use.
func (e *Engine) Analyze(s *State) Analysis {
	g := e.Grundy(s)
	a := Analysis{Grundy: g, Position: PositionP}
	if g != 0 {
		a.Position = PositionN
		a.WinningMoves = e.WinningMoves(s)
	}
	return a
}
