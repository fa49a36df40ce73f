package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/grundylab/kayles/pkg/gen"
	"github.com/grundylab/kayles/pkg/graphio"
)

// randomCommand creates the random command for generating boards.
func (c *CLI) randomCommand() *cobra.Command {
	var (
		opts     gen.RandomOptions
		output   string
		analyze  bool
		parallel bool
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random degree-capped board",
		Long: `Generate a random Node Kayles board.

The generator picks a vertex count in [--min, --max] and adds shuffled
candidate edges while both endpoints stay under the --degree cap. For a
fixed --seed the board is reproducible; without one, a fresh seed is
drawn per invocation.

By default the generated board is analyzed immediately; pass
--analyze=false to skip evaluation (useful for large boards destined
for a file). Save the board with --output board.json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.Seed = rand.Uint64()
			}
			return c.runRandom(cmd, opts, output, analyze, parallel)
		},
	}

	defaults := c.Config.Random
	cmd.Flags().IntVar(&opts.MinVertices, "min", defaults.MinVertices, "minimum vertex count")
	cmd.Flags().IntVar(&opts.MaxVertices, "max", defaults.MaxVertices, "maximum vertex count")
	cmd.Flags().IntVar(&opts.MaxDegree, "degree", defaults.MaxDegree, "per-vertex degree cap")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "RNG seed for a reproducible board")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the board to a JSON file")
	cmd.Flags().BoolVar(&analyze, "analyze", true, "evaluate the generated board")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "evaluate independent components concurrently")

	return cmd
}

func (c *CLI) runRandom(cmd *cobra.Command, opts gen.RandomOptions, output string, analyze, parallel bool) error {
	logger := loggerFromContext(cmd.Context())
	logger.Debug("generating board", "min", opts.MinVertices, "max", opts.MaxVertices,
		"degree", opts.MaxDegree, "seed", opts.Seed)

	s, err := gen.Random(opts)
	if err != nil {
		return err
	}
	logger.Info("generated board", "vertices", s.Len(), "edges", len(s.Edges()), "seed", opts.Seed)

	if output != "" {
		if err := graphio.ExportFile(output, s); err != nil {
			return err
		}
		logger.Info("wrote board", "path", output)
	}

	if !analyze {
		fmt.Fprintln(c.out, formatBoard(s))
		return nil
	}
	return c.runAnalyze(cmd, s, false, parallel)
}
