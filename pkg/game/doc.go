// Package game implements the Node Kayles game engine.
//
// Node Kayles is an impartial combinatorial game played on an undirected
// graph: players alternate turns, and a move selects a vertex and removes
// it together with all of its neighbors. Under the normal play convention
// the player who cannot move loses.
//
// # Architecture
//
// The package is built around two types:
//
//   - [State]: an immutable snapshot of the remaining vertices and their
//     adjacency. States are values - applying a move produces a new State
//     and never mutates the original.
//   - [Engine]: the Sprague-Grundy evaluator. It computes Grundy numbers
//     recursively (mex over moves), decomposes states into connected
//     components combined by XOR, and memoizes repeated subpositions.
//
// # Usage
//
// Build a state, evaluate it, and inspect the winning moves:
//
//	s, err := game.NewState(
//	    []string{"a", "b", "c"},
//	    []game.Edge{{U: "a", V: "b"}, {U: "b", V: "c"}},
//	)
//	if err != nil {
//	    return err
//	}
//
//	eng := game.NewEngine()
//	res := eng.Analyze(s)
//	fmt.Println(res.Grundy)       // 2
//	fmt.Println(res.Position)     // N
//	fmt.Println(res.WinningMoves) // [b]
//
// Advance the game by applying a move:
//
//	next, err := s.Apply("b")
//
// # Memoization
//
// An Engine caches Grundy values keyed by the exact vertex/edge content of
// each state ([State.Key]). The cache is not isomorphism-aware: relabeled
// copies of the same graph occupy distinct keys. An Engine should serve a
// single logical graph; reuse across unrelated graphs is only safe when
// their vertex labels are disjoint, since a colliding key would alias two
// different games. Caching is purely a performance device - values are
// identical with a cold or warm cache.
//
// # Complexity
//
// Computing Grundy values for Node Kayles is exponential in the vertex
// count in the general case. Memoization collapses subpositions that recur
// across move orders but does not change the asymptotic bound. Callers
// needing a ceiling must bound input size before evaluating.
package game
