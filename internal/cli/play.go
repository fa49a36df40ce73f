package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/grundylab/kayles/pkg/game"
	"github.com/grundylab/kayles/pkg/graphio"
)

// playCommand creates the play command for interactive games.
func (c *CLI) playCommand() *cobra.Command {
	var (
		board          boardFlags
		hotseat        bool
		computerFirst  bool
		transcriptPath string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play Node Kayles against the engine or a friend",
		Long: `Play an interactive game of Node Kayles.

Pick a vertex with the arrow keys and confirm with enter; the vertex
and all its neighbors leave the board. Whoever removes the last vertex
wins. By default you face the engine, which plays optimally; --hotseat
hands the board between two human players instead.

Press h during the game to reveal the current winning moves.

Without a board source the game starts on the built-in connected sample.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				s   *game.State
				err error
			)
			if board.file == "" && board.sample == "" && len(board.vertices) == 0 && len(board.edges) == 0 {
				s, err = sampleBoard("connected")
			} else {
				s, err = board.state(c)
			}
			if err != nil {
				return err
			}
			return c.runPlay(cmd, s, hotseat, computerFirst, transcriptPath)
		},
	}

	board.register(cmd)
	cmd.Flags().BoolVar(&hotseat, "hotseat", false, "two human players instead of the engine")
	cmd.Flags().BoolVar(&computerFirst, "computer-first", false, "let the engine make the first move")
	cmd.Flags().StringVar(&transcriptPath, "transcript", "", "write the finished game as a JSON transcript")

	return cmd
}

// runPlay drives the interactive game loop and exports the transcript.
func (c *CLI) runPlay(cmd *cobra.Command, s *game.State, hotseat, computerFirst bool, transcriptPath string) error {
	if err := c.checkSize(s); err != nil {
		return err
	}

	logger := loggerFromContext(cmd.Context())
	logger.Debug("starting game", "vertices", s.Len(), "hotseat", hotseat)

	m := newPlayModel(s, hotseat, computerFirst)
	p := tea.NewProgram(m, tea.WithOutput(c.out))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	final, ok := finalModel.(playModel)
	if !ok {
		return fmt.Errorf("unexpected model type %T", finalModel)
	}
	if final.err != nil {
		return final.err
	}

	if transcriptPath != "" {
		if err := graphio.ExportTranscript(transcriptPath, final.transcript); err != nil {
			return err
		}
		logger.Info("transcript written", "path", transcriptPath, "id", final.transcript.ID)
	}
	return nil
}

// =============================================================================
// playModel - Interactive game loop
// =============================================================================

// computerMoveMsg triggers the engine's move after a short pause so the
// human can see the board change.
type computerMoveMsg struct{}

// playModel is the bubbletea model for an interactive game.
type playModel struct {
	state  *game.State
	engine *game.Engine

	players  [2]string
	computer [2]bool
	turn     int // index into players of the side to move

	cursor   int
	showHint bool
	winner   string
	err      error

	transcript graphio.Transcript
}

func newPlayModel(s *game.State, hotseat, computerFirst bool) playModel {
	m := playModel{
		state:  s,
		engine: game.NewEngine(),
		transcript: graphio.Transcript{
			ID:      uuid.NewString(),
			Started: time.Now(),
			Initial: graphio.FromState(s),
		},
	}
	if hotseat {
		m.players = [2]string{"Player 1", "Player 2"}
	} else {
		m.players = [2]string{"You", "Computer"}
		m.computer[1] = true
		if computerFirst {
			m.turn = 1
		}
	}
	return m
}

func (m playModel) Init() tea.Cmd {
	if m.computer[m.turn] {
		return scheduleComputerMove()
	}
	return nil
}

func scheduleComputerMove() tea.Cmd {
	return tea.Tick(600*time.Millisecond, func(time.Time) tea.Msg {
		return computerMoveMsg{}
	})
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "up", "k":
			if m.gameOver() || m.computer[m.turn] {
				return m, nil
			}
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "down", "j":
			if m.gameOver() || m.computer[m.turn] {
				return m, nil
			}
			if m.cursor < m.state.Len()-1 {
				m.cursor++
			}
		case "h":
			m.showHint = !m.showHint
		case "enter", " ":
			if m.gameOver() || m.computer[m.turn] {
				return m, nil
			}
			return m.playMove(m.state.Vertices()[m.cursor])
		}

	case computerMoveMsg:
		if m.gameOver() || !m.computer[m.turn] {
			return m, nil
		}
		return m.playMove(m.bestMove())
	}
	return m, nil
}

// playMove applies the chosen vertex for the side to move, records the
// turn, and hands play to the other side.
func (m playModel) playMove(v string) (tea.Model, tea.Cmd) {
	removed := append([]string{v}, m.state.Neighbors(v)...)
	next, err := m.state.Apply(v)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.transcript.Turns = append(m.transcript.Turns, graphio.TranscriptTurn{
		Player:  m.players[m.turn],
		Vertex:  v,
		Removed: removed,
	})
	m.state = next

	if next.IsTerminal() {
		m.winner = m.players[m.turn]
		m.transcript.Winner = m.winner
		m.transcript.Finished = true
		return m, nil
	}

	m.turn = 1 - m.turn
	if m.cursor >= m.state.Len() {
		m.cursor = m.state.Len() - 1
	}
	if m.computer[m.turn] {
		return m, scheduleComputerMove()
	}
	return m, nil
}

// bestMove returns a winning move when one exists, otherwise the first
// vertex. From a P-position every move loses equally, so any choice does.
func (m playModel) bestMove() string {
	if wins := m.engine.WinningMoves(m.state); len(wins) > 0 {
		return wins[0]
	}
	return m.state.Vertices()[0]
}

func (m playModel) gameOver() bool {
	return m.winner != "" || m.state.IsTerminal()
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Node Kayles"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("arrows: move  enter: take vertex  h: hint  q: quit"))
	b.WriteString("\n\n")

	b.WriteString(m.viewBoard())
	b.WriteString("\n\n")

	if m.gameOver() {
		b.WriteString(StyleWin.Render(fmt.Sprintf("%s wins!", m.winner)))
		b.WriteString("\n")
		b.WriteString(StyleDim.Render("press q to exit"))
		b.WriteString("\n")
		return b.String()
	}

	mover := m.players[m.turn]
	if m.computer[m.turn] {
		b.WriteString(StyleLabel.Render(fmt.Sprintf("%s is thinking...", mover)))
	} else {
		b.WriteString(StyleLabel.Render(fmt.Sprintf("%s to move", mover)))
	}
	b.WriteString("\n")

	if m.showHint {
		b.WriteString(m.viewHint())
		b.WriteString("\n")
	}
	return b.String()
}

// viewBoard renders the surviving vertices in a row with the cursor on the
// highlighted one, followed by the edge summary.
func (m playModel) viewBoard() string {
	var b strings.Builder

	for i, v := range m.state.Vertices() {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == m.cursor && !m.computer[m.turn] && !m.gameOver() {
			b.WriteString(StyleWin.Render("[" + v + "]"))
		} else {
			b.WriteString(StyleValue.Render(" " + v + " "))
		}
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(formatBoard(m.state)))
	return b.String()
}

// viewHint shows the engine's verdict for the current board.
func (m playModel) viewHint() string {
	res := m.engine.Analyze(m.state)
	return formatVerdict(res)
}
