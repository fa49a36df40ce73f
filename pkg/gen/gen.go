// Package gen builds Node Kayles starting positions: random graphs with a
// degree cap, standard families (paths, cycles, complete graphs), and the
// sample boards used by the CLI. All constructors return validated
// [game.State] values.
package gen

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/grundylab/kayles/pkg/game"
)

var (
	// ErrBadVertexRange is returned by [Random] when the vertex bounds are
	// non-positive or inverted.
	ErrBadVertexRange = errors.New("gen: vertex range must satisfy 0 < min <= max")

	// ErrBadMaxDegree is returned by [Random] when the degree cap is negative.
	ErrBadMaxDegree = errors.New("gen: max degree must not be negative")

	// ErrBadSize is returned by the family constructors for a negative size.
	ErrBadSize = errors.New("gen: size must not be negative")
)

// RandomOptions configures [Random].
type RandomOptions struct {
	MinVertices int    // lower bound on vertex count (inclusive)
	MaxVertices int    // upper bound on vertex count (inclusive)
	MaxDegree   int    // per-vertex degree cap
	Seed        uint64 // RNG seed for reproducible graphs
}

// DefaultRandomOptions mirrors the defaults of the interactive generator:
// 5-12 vertices with at most 3 neighbors each. Denser graphs quickly hit
// the engine's exponential evaluation cost.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{MinVertices: 5, MaxVertices: 12, MaxDegree: 3, Seed: 42}
}

// Random generates a random graph with a bounded vertex count and a
// per-vertex degree cap. Candidate edges are visited in shuffled order and
// accepted while both endpoints are below the cap, so the result is
// deterministic for a given seed.
func Random(opts RandomOptions) (*game.State, error) {
	if opts.MinVertices <= 0 || opts.MinVertices > opts.MaxVertices {
		return nil, ErrBadVertexRange
	}
	if opts.MaxDegree < 0 {
		return nil, ErrBadMaxDegree
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xcafef00d))
	n := opts.MinVertices + rng.IntN(opts.MaxVertices-opts.MinVertices+1)
	vertices := Labels("v", n)

	var candidates []game.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			candidates = append(candidates, game.Edge{U: vertices[i], V: vertices[j]})
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	degree := make(map[string]int, n)
	var edges []game.Edge
	for _, e := range candidates {
		if degree[e.U] < opts.MaxDegree && degree[e.V] < opts.MaxDegree {
			edges = append(edges, e)
			degree[e.U]++
			degree[e.V]++
		}
	}

	return game.NewState(vertices, edges)
}

// Path returns the path graph P_n over n vertices (n-1 edges).
// P_0 is the empty state.
func Path(n int) (*game.State, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	vertices := Labels("p", n)
	var edges []game.Edge
	for i := 1; i < n; i++ {
		edges = append(edges, game.Edge{U: vertices[i-1], V: vertices[i]})
	}
	return game.NewState(vertices, edges)
}

// Cycle returns the cycle graph C_n. Requires n == 0 or n >= 3; smaller
// cycles would need self-loops or parallel edges.
func Cycle(n int) (*game.State, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	if n > 0 && n < 3 {
		return nil, fmt.Errorf("gen: cycle needs at least 3 vertices, got %d", n)
	}
	vertices := Labels("c", n)
	var edges []game.Edge
	for i := 0; i < n; i++ {
		edges = append(edges, game.Edge{U: vertices[i], V: vertices[(i+1)%n]})
	}
	return game.NewState(vertices, edges)
}

// Complete returns the complete graph K_n.
func Complete(n int) (*game.State, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	vertices := Labels("k", n)
	var edges []game.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, game.Edge{U: vertices[i], V: vertices[j]})
		}
	}
	return game.NewState(vertices, edges)
}

// Sample returns the connected demonstration board: a four-cycle with a
// pendant path, bridged to a triangle.
func Sample() *game.State {
	s, err := game.NewState(
		[]string{"A", "B", "C", "D", "E", "F", "G", "H", "I"},
		[]game.Edge{
			{U: "A", V: "B"}, {U: "A", V: "C"}, {U: "B", V: "D"},
			{U: "C", V: "D"}, {U: "C", V: "E"}, {U: "E", V: "F"},
			{U: "G", V: "H"}, {U: "H", V: "I"}, {U: "I", V: "G"},
			{U: "A", V: "G"},
		})
	if err != nil {
		panic(err) // fixed board, cannot fail
	}
	return s
}

// DisconnectedSample returns the three-component demonstration board:
// a triangle, a path of three, and a lone edge.
func DisconnectedSample() *game.State {
	s, err := game.NewState(
		[]string{"0", "1", "2", "3", "4", "5", "6", "7"},
		[]game.Edge{
			{U: "0", V: "1"}, {U: "1", V: "2"}, {U: "2", V: "0"},
			{U: "3", V: "4"}, {U: "4", V: "5"},
			{U: "6", V: "7"},
		})
	if err != nil {
		panic(err) // fixed board, cannot fail
	}
	return s
}

// Union combines states with disjoint vertex sets into one position.
// Label clashes surface as a duplicate-vertex error from [game.NewState].
func Union(states ...*game.State) (*game.State, error) {
	var vertices []string
	var edges []game.Edge
	for _, s := range states {
		vertices = append(vertices, s.Vertices()...)
		edges = append(edges, s.Edges()...)
	}
	return game.NewState(vertices, edges)
}

// Labels produces n zero-padded vertex labels with the given prefix
// ("v00", "v01", ...). Padding keeps lexicographic and numeric order in
// agreement for up to 100 vertices, which is far beyond what the engine
// can evaluate anyway.
func Labels(prefix string, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%s%02d", prefix, i)
	}
	return labels
}
