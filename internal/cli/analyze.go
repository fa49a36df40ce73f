package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grundylab/kayles/pkg/game"
	"github.com/grundylab/kayles/pkg/graphio"
)

// analyzeCommand creates the analyze command for evaluating a board.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		board    boardFlags
		asJSON   bool
		parallel bool
		maxSize  int
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Evaluate a board: Grundy number, N/P verdict, winning moves",
		Long: `Evaluate a Node Kayles board.

The board can come from a JSON file (--file), inline flags (--edge a-b
--edge b-c, with --vertex for isolated vertices), or a built-in sample
(--sample connected|disconnected).

The command prints the Grundy number, whether the player to move wins
(N-position) or loses (P-position), and every winning move. Use --json
for a machine-readable report.

Evaluation cost grows exponentially with the vertex count; boards above
the configured ceiling are rejected up front (override with --max-vertices).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxSize > 0 {
				c.Config.MaxVertices = maxSize
			}
			s, err := board.state(c)
			if err != nil {
				return err
			}
			return c.runAnalyze(cmd, s, asJSON, parallel)
		},
	}

	board.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit a JSON report instead of text")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "evaluate independent components concurrently")
	cmd.Flags().IntVar(&maxSize, "max-vertices", 0, "override the configured vertex ceiling")

	return cmd
}

// runAnalyze evaluates the state and writes the verdict.
func (c *CLI) runAnalyze(cmd *cobra.Command, s *game.State, asJSON, parallel bool) error {
	if err := c.checkSize(s); err != nil {
		return err
	}

	logger := loggerFromContext(cmd.Context())
	logger.Debug("evaluating board", "vertices", s.Len(), "edges", len(s.Edges()), "components", len(s.Components()))

	var opts []game.Option
	if parallel {
		opts = append(opts, game.EvalParallel())
	}
	eng := game.NewEngine(opts...)

	prog := newProgress(logger)
	res := eng.Analyze(s)
	prog.done(fmt.Sprintf("Evaluated %d vertices, %d subpositions memoized", s.Len(), eng.MemoSize()))

	if asJSON {
		return graphio.WriteReport(c.out, graphio.Report{
			Graph:    graphio.FromState(s),
			Analysis: res,
		})
	}

	fmt.Fprintln(c.out, StyleTitle.Render("Board"))
	fmt.Fprintln(c.out, formatBoard(s))
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, StyleTitle.Render("Verdict"))
	fmt.Fprintln(c.out, formatVerdict(res))
	return nil
}
