package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grundylab/kayles/pkg/game"
	"github.com/grundylab/kayles/pkg/render"
)

// drawCommand creates the draw command for rendering a board as a diagram.
func (c *CLI) drawCommand() *cobra.Command {
	var (
		board    boardFlags
		output   string
		format   string
		title    string
		annotate bool
	)

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Render a board to DOT, SVG, or PNG",
		Long: `Render a Node Kayles board as a node-link diagram.

By default the board is analyzed first and the diagram is annotated:
winning moves are filled green, other vertices grey, and an N/P verdict
badge is added. Disable with --annotate=false for a plain drawing.

The output format is taken from --format, or inferred from the --output
file extension (.svg, .png, .dot) when set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := board.state(c)
			if err != nil {
				return err
			}
			return c.runDraw(cmd, s, output, format, title, annotate)
		},
	}

	board.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout for dot, board.<format> otherwise)")
	cmd.Flags().StringVar(&format, "format", "", "output format: svg, png, dot (default from config)")
	cmd.Flags().StringVar(&title, "title", "", "diagram title")
	cmd.Flags().BoolVar(&annotate, "annotate", true, "color winning moves and add the N/P badge")

	return cmd
}

func (c *CLI) runDraw(cmd *cobra.Command, s *game.State, output, format, title string, annotate bool) error {
	logger := loggerFromContext(cmd.Context())

	if format == "" {
		format = formatFromPath(output, c.Config.Draw.Format)
	}
	switch format {
	case "svg", "png", "dot":
	default:
		return fmt.Errorf("unknown format %q: want svg, png, or dot", format)
	}

	opts := render.Options{Title: title}
	if annotate && !s.IsTerminal() {
		if err := c.checkSize(s); err != nil {
			return err
		}
		res := game.NewEngine().Analyze(s)
		opts.Analysis = &res
	}

	dot := render.ToDOT(s, opts)

	var data []byte
	var err error
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = render.SVG(dot)
	case "png":
		data, err = render.PNG(dot)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	if output == "" {
		if format == "dot" {
			fmt.Fprint(c.out, dot)
			return nil
		}
		output = "board." + format
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	logger.Info("wrote diagram", "path", output, "format", format, "bytes", len(data))
	return nil
}

// formatFromPath infers the render format from the output extension,
// falling back to the configured default.
func formatFromPath(output, fallback string) string {
	switch strings.ToLower(filepath.Ext(output)) {
	case ".svg":
		return "svg"
	case ".png":
		return "png"
	case ".dot", ".gv":
		return "dot"
	default:
		return fallback
	}
}
