package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const rulesText = `Node Kayles is played on an undirected graph.

Players alternate turns. On a turn you pick a surviving vertex; that
vertex and every vertex adjacent to it are removed from the board,
along with all edges touching them.

The player who removes the last vertex wins: if the board is empty on
your turn, you have no move and you lose.

Strategy comes from Sprague-Grundy theory. Every board has a Grundy
number; boards with value zero are losses for the player to move (P),
everything else is a win (N). Disconnected boards split into
independent components whose values combine by XOR, so a winning move
is one that leaves the opponent a zero board.`

var styleRulesBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("36")).
	Padding(1, 2)

// rulesCommand creates the rules command.
func (c *CLI) rulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Explain how Node Kayles is played",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(c.out, StyleTitle.Render("Node Kayles"))
			fmt.Fprintln(c.out, styleRulesBox.Render(rulesText))
		},
	}
}
