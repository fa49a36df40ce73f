// Package pkg provides the core libraries for Node Kayles analysis.
//
// # Overview
//
// Kayles evaluates positions of the Node Kayles graph game: players
// alternate removing a vertex together with all of its neighbors, and the
// player who takes the last vertex wins. The pkg directory is organized
// into five areas:
//
//  1. [game] - Domain logic (immutable board states, moves, component
//     decomposition, the Sprague-Grundy engine, N/P classification)
//  2. [gen] - Board construction (random degree-capped boards, paths,
//     cycles, complete graphs, built-in samples)
//  3. [graphio] - Serialization (JSON boards, analysis reports, game
//     transcripts)
//  4. [render] - Visualization (DOT, SVG, and PNG diagrams with verdict
//     annotations)
//  5. [observability] - Pluggable hooks for engine and render events
//
// # Architecture
//
// The typical data flow:
//
//	JSON board / inline flags / generator
//	         ↓
//	    [game] package (state, decomposition, Grundy evaluation)
//	         ↓
//	    [game] Analysis (value, N/P verdict, winning moves)
//	         ↓
//	    [graphio] report or [render] diagram
//
// # Quick Start
//
// Evaluate a board in a few lines:
//
//	s, err := game.NewState([]string{"a", "b", "c"},
//		[]game.Edge{{U: "a", V: "b"}, {U: "b", V: "c"}})
//	if err != nil {
//		log.Fatal(err)
//	}
//	res := game.NewEngine().Analyze(s)
//	fmt.Println(res.Grundy, res.Position, res.WinningMoves)
package pkg
