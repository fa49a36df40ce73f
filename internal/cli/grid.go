package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/grundylab/kayles/pkg/game"
	"github.com/grundylab/kayles/pkg/gen"
)

// maxGridSize bounds the grid computation; path values beyond this take
// noticeably long through the plain recursive engine.
const maxGridSize = 15

// gridCommand creates the grid command: the N/P chessboard for games made
// of two disconnected path components.
func (c *CLI) gridCommand() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Show the N/P chessboard for two-path games",
		Long: `Show N/P positions for boards made of two disconnected paths.

Cell (m, n) is the game "path of m vertices plus path of n vertices";
its value is Grundy(P_m) XOR Grundy(P_n). Green N cells are wins for the
player to move, red P cells are losses. The first row and column list
the single-path games themselves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 1 || size > maxGridSize {
				return fmt.Errorf("grid size %d outside [1,%d]", size, maxGridSize)
			}
			return c.runGrid(cmd, size)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 10, "maximum path length per axis")

	return cmd
}

func (c *CLI) runGrid(cmd *cobra.Command, size int) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	values, err := pathGrundyValues(size)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Computed path values P_0..P_%d", size))

	fmt.Fprintln(c.out, StyleTitle.Render("Grundy numbers for single paths"))
	for n := 0; n <= size; n++ {
		verdict := StyleLose.Render("P")
		if values[n] != 0 {
			verdict = StyleWin.Render("N")
		}
		fmt.Fprintf(c.out, "  %s  Grundy=%s  %s\n",
			StyleLabel.Render(fmt.Sprintf("P_%-2d", n)),
			StyleValue.Render(fmt.Sprintf("%d", values[n])),
			verdict)
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, StyleTitle.Render("Two-path N/P grid"))
	fmt.Fprint(c.out, renderGrid(values))
	fmt.Fprintln(c.out, StyleDim.Render("cell (m,n) = P_m + P_n; green N = mover wins, red P = mover loses"))
	return nil
}

// pathGrundyValues computes Grundy(P_0..P_max). One engine serves all
// sizes: a longer path's subpositions revisit the shorter paths' keys only
// when labels match, which they do because gen.Path labels by index.
func pathGrundyValues(maxSize int) ([]int, error) {
	eng := game.NewEngine()
	values := make([]int, maxSize+1)
	for n := 0; n <= maxSize; n++ {
		p, err := gen.Path(n)
		if err != nil {
			return nil, err
		}
		values[n] = eng.Grundy(p)
	}
	return values, nil
}

// Grid cell styles: green for N, red for P, matching the diagram colors.
var (
	styleCellN = lipgloss.NewStyle().Background(lipgloss.Color("35")).Foreground(lipgloss.Color("255")).Padding(0, 1)
	styleCellP = lipgloss.NewStyle().Background(lipgloss.Color("167")).Foreground(lipgloss.Color("255")).Padding(0, 1)
)

// renderGrid renders the chessboard with axis labels.
func renderGrid(values []int) string {
	var b strings.Builder

	// Header row: path-1 sizes.
	b.WriteString("     ")
	for m := range values {
		b.WriteString(StyleLabel.Render(fmt.Sprintf(" %2d ", m)))
	}
	b.WriteString("\n")

	for n := range values {
		b.WriteString(StyleLabel.Render(fmt.Sprintf(" %2d  ", n)))
		for m := range values {
			if values[m]^values[n] != 0 {
				b.WriteString(styleCellN.Render("N "))
			} else {
				b.WriteString(styleCellP.Render("P "))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
