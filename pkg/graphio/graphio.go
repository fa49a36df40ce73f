// Package graphio serializes Node Kayles boards and analysis results.
//
// The JSON graph format is the interchange surface between the CLI, saved
// board files, and game transcripts:
//
//	{
//	  "vertices": ["a", "b", "c"],
//	  "edges": [{"u": "a", "v": "b"}, {"u": "b", "v": "c"}]
//	}
//
// The format is human-readable and round-trips exactly: import → evaluate →
// export → re-import produces an identical state.
package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/grundylab/kayles/pkg/game"
)

// Graph is the canonical serialization format for Node Kayles boards.
type Graph struct {
	Vertices []string    `json:"vertices"`
	Edges    []game.Edge `json:"edges,omitempty"`
}

// FromState converts a state to its serialization format.
// Vertices and edges are sorted for deterministic output.
func FromState(s *game.State) Graph {
	return Graph{Vertices: s.Vertices(), Edges: s.Edges()}
}

// ToState converts a Graph to a validated state. It surfaces the same
// validation errors as [game.NewState]: unknown edge endpoints, self-loops,
// duplicate or empty vertex IDs.
func (g Graph) ToState() (*game.State, error) {
	return game.NewState(g.Vertices, g.Edges)
}

// Report is the analysis output written by the analyze command: the board
// together with the engine's verdict.
type Report struct {
	Graph    Graph         `json:"graph"`
	Analysis game.Analysis `json:"analysis"`
}

// Transcript records a finished interactive game for later replay.
type Transcript struct {
	ID       string           `json:"id"`       // UUID assigned at game start
	Started  time.Time        `json:"started"`  // wall-clock game start
	Initial  Graph            `json:"initial"`  // starting board
	Turns    []TranscriptTurn `json:"turns"`    // moves in play order
	Winner   string           `json:"winner"`   // player who removed the last vertex
	Finished bool             `json:"finished"` // false if the game was abandoned
}

// TranscriptTurn is a single move in a transcript.
type TranscriptTurn struct {
	Player  string   `json:"player"`
	Vertex  string   `json:"vertex"`
	Removed []string `json:"removed"` // closed neighborhood taken by the move
}

// ReadJSON decodes a JSON graph from r into a validated state.
//
// Returns a decode error for malformed JSON, or the validation errors of
// [game.NewState] for a structurally invalid board (wrapped, so errors.Is
// works against the game sentinels). ReadJSON does not close r.
func ReadJSON(r io.Reader) (*game.State, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	s, err := g.ToState()
	if err != nil {
		return nil, fmt.Errorf("invalid graph: %w", err)
	}
	return s, nil
}

// WriteJSON writes the state as indented JSON to w.
func WriteJSON(w io.Writer, s *game.State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(FromState(s))
}

// ImportFile reads a JSON board file at path.
func ImportFile(path string) (*game.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return s, nil
}

// ExportFile writes the state as a JSON board file at path.
func ExportFile(path string, s *game.State) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteJSON(f, s); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteReport writes an analysis report as indented JSON to w.
func WriteReport(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ExportTranscript writes a game transcript as indented JSON to path.
func ExportTranscript(path string, tr Transcript) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tr); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
