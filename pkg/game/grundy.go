package game

import (
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/grundylab/kayles/pkg/observability"
)

// Engine computes Sprague-Grundy values for Node Kayles states.
//
// An Engine owns a memo table keyed by [State.Key]. It is intended to serve
// one logical graph: the root position handed to [Engine.Analyze] and every
// subposition reachable from it. See the package documentation for the
// aliasing caveat when reusing an Engine across graphs.
//
// Engine is safe for concurrent use; the memo table is mutex-guarded.
type Engine struct {
	mu       sync.Mutex
	memo     map[Key]int
	parallel bool
}

// Option configures an Engine.
type Option func(*Engine)

// EvalParallel makes the engine evaluate independent connected components
// on separate goroutines before combining their values by XOR. This is a
// performance knob only - results are identical to sequential evaluation.
func EvalParallel() Option {
	return func(e *Engine) { e.parallel = true }
}

// NewEngine creates an engine with an empty memo table.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{memo: make(map[Key]int)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MemoSize returns the number of memoized subpositions. Useful for
// debug logging and for verifying cache behavior in tests.
func (e *Engine) MemoSize() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.memo)
}

// Grundy returns the Grundy number of s:
//
//  1. The empty state has value 0 (no moves, terminal).
//  2. A disconnected state is the XOR of its components' values.
//  3. A connected state is mex over the values of all move results.
//
// The memo table short-circuits steps 2-3 for previously seen states.
func (e *Engine) Grundy(s *State) int {
	start := time.Now()
	observability.Engine().OnEvaluateStart(s.Len())
	g := e.grundy(s)
	observability.Engine().OnEvaluateComplete(s.Len(), g, time.Since(start))
	return g
}

func (e *Engine) grundy(s *State) int {
	if s.IsTerminal() {
		return 0
	}

	key := s.Key()
	e.mu.Lock()
	g, ok := e.memo[key]
	e.mu.Unlock()
	if ok {
		observability.Engine().OnMemoHit()
		return g
	}
	observability.Engine().OnMemoMiss()

	comps := s.Components()
	if len(comps) > 1 {
		g = e.combine(comps)
	} else {
		g = e.mexOverMoves(s)
	}

	// A concurrent evaluation may have stored the key already; both
	// computations yield the same value, so last write wins is fine.
	e.mu.Lock()
	e.memo[key] = g
	e.mu.Unlock()
	return g
}

// combine XORs the Grundy values of independent components
// (the Sprague-Grundy sum rule).
func (e *Engine) combine(comps []*State) int {
	if e.parallel {
		return e.combineParallel(comps)
	}
	g := 0
	for _, c := range comps {
		g ^= e.grundy(c)
	}
	return g
}

// combineParallel evaluates components on separate goroutines. Components
// are mutually independent games, so ordering does not matter; only the
// memo table is shared, and it is synchronized.
func (e *Engine) combineParallel(comps []*State) int {
	values := make([]int, len(comps))
	var eg errgroup.Group
	for i, c := range comps {
		eg.Go(func() error {
			values[i] = e.grundy(c)
			return nil
		})
	}
	_ = eg.Wait() // workers never fail
	g := 0
	for _, v := range values {
		g ^= v
	}
	return g
}

// mexOverMoves computes the minimum excludant of the values reachable in
// one move from a connected, non-empty state.
func (e *Engine) mexOverMoves(s *State) int {
	seen := make(map[int]bool, s.Len())
	for _, m := range s.Moves() {
		seen[e.grundy(m.Result)] = true
	}
	return mex(seen)
}

// mex returns the smallest non-negative integer absent from seen.
func mex(seen map[int]bool) int {
	g := 0
	for seen[g] {
		g++
	}
	return g
}
