// Package cli implements the kayles command-line interface.
//
// This package provides commands for analyzing Node Kayles positions,
// playing interactive games, generating random boards, and rendering
// boards as diagrams. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - analyze: Evaluate a board and report the Grundy number, N/P verdict,
//     and winning moves
//   - play: Play an interactive game against the optimal engine or a friend
//   - random: Generate a random degree-capped board
//   - grid: Show the N/P chessboard for two-path component games
//   - draw: Render a board to DOT, SVG, or PNG
//   - rules: Print the game rules
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grundylab/kayles/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "kayles"

	// defaultMaxVertices caps the board size accepted by the evaluating
	// commands. Grundy evaluation is exponential in the vertex count, so
	// the ceiling is the caller-side guard against unbounded computation.
	defaultMaxVertices = 20
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	out io.Writer // command output (stdout in production, buffer in tests)
}

// New creates a new CLI instance with a default logger writing to errW and
// command output going to outW. Configuration is loaded from the config
// file if one exists, falling back to defaults.
func New(outW, errW io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(errW, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: DefaultConfig(),
		out:    outW,
	}
	if cfg, err := LoadConfig(); err != nil {
		c.Logger.Warn("ignoring config file", "err", err)
	} else {
		c.Config = cfg
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "kayles",
		Short:        "Kayles analyzes and plays the Node Kayles graph game",
		Long:         `Kayles is a CLI tool for the Node Kayles combinatorial game: pick a vertex, remove it and its neighbors, last player to move wins. It computes Sprague-Grundy values, classifies positions as N or P, finds every winning move, and plays the game interactively.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.randomCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.drawCommand())
	root.AddCommand(c.rulesCommand())
	root.AddCommand(c.completionCommand())

	return root
}
