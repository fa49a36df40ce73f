package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grundylab/kayles/pkg/game"
	"github.com/grundylab/kayles/pkg/gen"
	"github.com/grundylab/kayles/pkg/graphio"
)

// boardFlags holds the shared board-input flags: a JSON file, or a board
// described inline with --vertex and --edge.
type boardFlags struct {
	file     string
	vertices []string
	edges    []string
	sample   string
}

// register adds the board-input flags to cmd.
func (b *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&b.file, "file", "f", "", "board JSON file")
	cmd.Flags().StringArrayVar(&b.vertices, "vertex", nil, "declare a vertex (repeatable); implied by --edge")
	cmd.Flags().StringArrayVar(&b.edges, "edge", nil, "edge as u-v (repeatable)")
	cmd.Flags().StringVar(&b.sample, "sample", "", "built-in board: connected, disconnected")
}

// state resolves the flags into a validated game state.
// Exactly one input source must be used.
func (b *boardFlags) state(c *CLI) (*game.State, error) {
	sources := 0
	if b.file != "" {
		sources++
	}
	if len(b.vertices) > 0 || len(b.edges) > 0 {
		sources++
	}
	if b.sample != "" {
		sources++
	}
	if sources == 0 {
		return nil, fmt.Errorf("no board given: use --file, --edge/--vertex, or --sample")
	}
	if sources > 1 {
		return nil, fmt.Errorf("choose one board source: --file, --edge/--vertex, or --sample")
	}

	switch {
	case b.file != "":
		return graphio.ImportFile(b.file)
	case b.sample != "":
		return sampleBoard(b.sample)
	default:
		return buildBoard(b.vertices, b.edges)
	}
}

// buildBoard assembles a state from inline flags. Vertices referenced by
// edges are declared implicitly; --vertex adds isolated vertices.
func buildBoard(vertices, edgeSpecs []string) (*game.State, error) {
	declared := make(map[string]bool)
	var all []string
	add := func(v string) {
		if !declared[v] {
			declared[v] = true
			all = append(all, v)
		}
	}
	for _, v := range vertices {
		add(v)
	}

	edges := make([]game.Edge, 0, len(edgeSpecs))
	for _, spec := range edgeSpecs {
		e, err := parseEdge(spec)
		if err != nil {
			return nil, err
		}
		add(e.U)
		add(e.V)
		edges = append(edges, e)
	}

	return game.NewState(all, edges)
}

// parseEdge parses "u-v" into an edge. Labels themselves must not contain
// a dash; use a JSON board file for such labels.
func parseEdge(spec string) (game.Edge, error) {
	u, v, ok := strings.Cut(spec, "-")
	if !ok || u == "" || v == "" {
		return game.Edge{}, fmt.Errorf("invalid edge %q: want u-v", spec)
	}
	if strings.Contains(v, "-") {
		return game.Edge{}, fmt.Errorf("invalid edge %q: labels must not contain '-'", spec)
	}
	return game.Edge{U: u, V: v}, nil
}

// sampleBoard returns one of the built-in demonstration boards.
func sampleBoard(name string) (*game.State, error) {
	switch name {
	case "connected":
		return gen.Sample(), nil
	case "disconnected":
		return gen.DisconnectedSample(), nil
	default:
		return nil, fmt.Errorf("unknown sample %q: want connected or disconnected", name)
	}
}

// checkSize enforces the configured vertex ceiling before an exponential
// evaluation is attempted.
func (c *CLI) checkSize(s *game.State) error {
	if s.Len() > c.Config.MaxVertices {
		return fmt.Errorf("board has %d vertices, limit is %d (see max_vertices in config)",
			s.Len(), c.Config.MaxVertices)
	}
	return nil
}
