package game

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrInvalidVertexID is returned by [NewState] when a vertex ID is empty.
	// All vertices must have non-empty identifiers.
	ErrInvalidVertexID = errors.New("vertex ID must not be empty")

	// ErrDuplicateVertex is returned by [NewState] when the same vertex ID
	// is declared twice. Vertex IDs must be unique.
	ErrDuplicateVertex = errors.New("duplicate vertex ID")

	// ErrUnknownVertex is returned by [NewState] when an edge references a
	// vertex that is not in the declared vertex set. The engine refuses to
	// compute on such a graph rather than silently miscompute.
	ErrUnknownVertex = errors.New("edge references unknown vertex")

	// ErrSelfLoop is returned by [NewState] when an edge joins a vertex to
	// itself. The removal rule has no defined meaning for a self-adjacent
	// vertex, so self-loops are rejected rather than dropped.
	ErrSelfLoop = errors.New("self-loops are not allowed")

	// ErrVertexNotInState is returned by [State.Apply] when the chosen
	// vertex is not present in the state.
	ErrVertexNotInState = errors.New("vertex not in state")
)

// Edge is an unordered pair of vertex IDs.
type Edge struct {
	U string `json:"u"`
	V string `json:"v"`
}

// Key is a canonical, order-independent encoding of a state's vertex and
// edge content, used as the memoization lookup key. Two states built from
// the same vertices and edges share a Key regardless of construction order.
// Isomorphic but relabeled states do not.
type Key string

// Move pairs a chosen vertex with the state that results from removing it
// and all of its neighbors.
type Move struct {
	Vertex string
	Result *State
}

// State is an immutable Node Kayles position: the set of remaining vertices
// and the adjacency relation restricted to them. The adjacency is symmetric,
// irreflexive, and deduplicated at construction time.
//
// States are never mutated - [State.Apply] and [State.Moves] derive new
// states, leaving the receiver valid for further moves. The zero value is
// not usable; use [NewState].
type State struct {
	vertices []string            // sorted
	adj      map[string][]string // vertex -> sorted neighbor IDs
}

// NewState builds a state from a vertex collection and an edge collection.
//
// Validation: vertex IDs must be non-empty and unique; every edge endpoint
// must be a declared vertex; self-loops are rejected. Parallel edges are
// deduplicated silently, so duplicate input edges never yield duplicate
// moves or neighbors.
func NewState(vertices []string, edges []Edge) (*State, error) {
	adj := make(map[string][]string, len(vertices))
	for _, v := range vertices {
		if v == "" {
			return nil, ErrInvalidVertexID
		}
		if _, exists := adj[v]; exists {
			return nil, ErrDuplicateVertex
		}
		adj[v] = nil
	}

	seen := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		if e.U == e.V {
			return nil, ErrSelfLoop
		}
		if _, ok := adj[e.U]; !ok {
			return nil, ErrUnknownVertex
		}
		if _, ok := adj[e.V]; !ok {
			return nil, ErrUnknownVertex
		}
		if seen[normalizeEdge(e)] {
			continue
		}
		seen[normalizeEdge(e)] = true
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	sorted := make([]string, 0, len(adj))
	for v := range adj {
		sorted = append(sorted, v)
	}
	slices.Sort(sorted)
	for _, ns := range adj {
		slices.Sort(ns)
	}

	return &State{vertices: sorted, adj: adj}, nil
}

// normalizeEdge orders the endpoints so that {a,b} and {b,a} compare equal.
func normalizeEdge(e Edge) Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// Len returns the number of remaining vertices.
func (s *State) Len() int { return len(s.vertices) }

// IsTerminal reports whether the state has no vertices left. In a terminal
// position the player to move has no move and loses.
func (s *State) IsTerminal() bool { return len(s.vertices) == 0 }

// Vertices returns the remaining vertex IDs in sorted order.
// The returned slice is a copy.
func (s *State) Vertices() []string { return slices.Clone(s.vertices) }

// HasVertex reports whether v is present in the state.
func (s *State) HasVertex(v string) bool {
	_, ok := s.adj[v]
	return ok
}

// Neighbors returns the IDs adjacent to v in sorted order, or nil if v is
// absent or isolated. The returned slice is a copy.
func (s *State) Neighbors(v string) []string { return slices.Clone(s.adj[v]) }

// Degree returns the number of neighbors of v, or 0 if v is absent.
func (s *State) Degree(v string) int { return len(s.adj[v]) }

// Edges returns the edges of the state, each with U < V, sorted.
// The returned slice is freshly allocated.
func (s *State) Edges() []Edge {
	var edges []Edge
	for _, u := range s.vertices {
		for _, v := range s.adj[u] {
			if u < v {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}
	return edges
}

// Apply removes v and all of its neighbors, returning the resulting state.
// Returns ErrVertexNotInState if v is not present; the receiver is never
// modified either way.
func (s *State) Apply(v string) (*State, error) {
	if !s.HasVertex(v) {
		return nil, ErrVertexNotInState
	}
	return s.remove(v), nil
}

// Moves enumerates one candidate move per remaining vertex, in sorted
// vertex order. A terminal state yields no moves.
func (s *State) Moves() []Move {
	moves := make([]Move, 0, len(s.vertices))
	for _, v := range s.vertices {
		moves = append(moves, Move{Vertex: v, Result: s.remove(v)})
	}
	return moves
}

// remove builds the successor state with v's closed neighborhood deleted.
// The caller guarantees v is present.
func (s *State) remove(v string) *State {
	gone := make(map[string]bool, len(s.adj[v])+1)
	gone[v] = true
	for _, n := range s.adj[v] {
		gone[n] = true
	}

	vertices := make([]string, 0, len(s.vertices)-len(gone))
	adj := make(map[string][]string, len(s.vertices)-len(gone))
	for _, u := range s.vertices {
		if gone[u] {
			continue
		}
		vertices = append(vertices, u)
		var ns []string
		for _, n := range s.adj[u] {
			if !gone[n] {
				ns = append(ns, n)
			}
		}
		adj[u] = ns
	}
	return &State{vertices: vertices, adj: adj}
}

// Key returns the canonical encoding of the state. Vertex IDs are quoted so
// that arbitrary labels cannot collide across the separators.
func (s *State) Key() Key {
	var b strings.Builder
	for i, v := range s.vertices {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(v))
	}
	b.WriteByte('|')
	for i, e := range s.Edges() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(e.U))
		b.WriteByte('-')
		b.WriteString(strconv.Quote(e.V))
	}
	return Key(b.String())
}

// String renders the state as "{a,b,c | a-b,b-c}" for logs and errors.
func (s *State) String() string {
	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(strings.Join(s.vertices, ","))
	b.WriteString(" | ")
	edges := s.Edges()
	for i, e := range edges {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e.U)
		b.WriteByte('-')
		b.WriteString(e.V)
	}
	b.WriteByte('}')
	return b.String()
}
