package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grundylab/kayles/pkg/game"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - N-positions, winning moves
	colorRed   = lipgloss.Color("167") // Soft red - P-positions, losses
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWin for N-positions and winning moves.
	StyleWin = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)

	// StyleLose for P-positions.
	StyleLose = lipgloss.NewStyle().Bold(true).Foreground(colorRed)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleLabel for field labels.
	StyleLabel = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Verdict Formatting
// =============================================================================

// formatVerdict renders an analysis as the two-line human verdict used by
// the analyze and random commands.
func formatVerdict(a game.Analysis) string {
	var b strings.Builder
	if a.Position == game.PositionN {
		b.WriteString(StyleWin.Render(fmt.Sprintf("N-position (Grundy=%d)", a.Grundy)))
		b.WriteString("\n")
		b.WriteString(StyleLabel.Render("Player to move can win. Winning moves: "))
		b.WriteString(StyleValue.Render(strings.Join(a.WinningMoves, ", ")))
	} else {
		b.WriteString(StyleLose.Render("P-position (Grundy=0)"))
		b.WriteString("\n")
		b.WriteString(StyleLabel.Render("Player to move loses against optimal play."))
	}
	return b.String()
}

// formatBoard renders the vertex and edge summary of a state.
func formatBoard(s *game.State) string {
	var b strings.Builder
	b.WriteString(StyleLabel.Render("Vertices: "))
	b.WriteString(StyleValue.Render(strings.Join(s.Vertices(), ", ")))
	b.WriteString("\n")
	b.WriteString(StyleLabel.Render("Edges:    "))
	edges := s.Edges()
	if len(edges) == 0 {
		b.WriteString(StyleDim.Render("(none)"))
		return b.String()
	}
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.U + "-" + e.V
	}
	b.WriteString(StyleValue.Render(strings.Join(parts, ", ")))
	return b.String()
}
