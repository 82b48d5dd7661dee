package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-spider/internal/config"
	"github.com/vovakirdan/tui-spider/internal/engine"
	"github.com/vovakirdan/tui-spider/internal/save"
	"github.com/vovakirdan/tui-spider/internal/storage"
)

// Options configures one game session.
type Options struct {
	Config      config.Config
	Store       *storage.Store // nil disables result recording
	Difficulty  engine.Difficulty
	Seed        string
	IncludeAces bool
	Resume      *engine.Snapshot // non-nil restores instead of dealing
	SavePath    string           // "" disables quit-time saving
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	game *engine.Game
	sink *hookSink
	keys KeyMap
	help help.Model
	opts Options

	cursor      int
	picked      bool
	pickedFrom  int
	pickedCount int
	hint        *engine.Candidate

	message string
	msgErr  bool

	width       int
	height      int
	resultSaved bool
	quitting    bool
}

// NewModel creates a model and starts (or resumes) its game.
func NewModel(opts Options) Model {
	sink := &hookSink{}
	game := engine.New(sink, engine.Scoring{
		StartingScore:   opts.Config.Scoring.StartingScore,
		MovePenalty:     opts.Config.Scoring.MovePenalty,
		CompletionBonus: opts.Config.Scoring.CompletionBonus,
	})

	restored := false
	if opts.Resume != nil {
		restored = game.RestoreSnapshot(*opts.Resume) == nil
	}
	if !restored {
		game.NewGame(opts.Difficulty, opts.Seed, opts.IncludeAces)
	}

	m := Model{
		game: game,
		sink: sink,
		keys: DefaultKeyMap(),
		help: help.New(),
		opts: opts,
	}
	if restored {
		m.message = "game resumed"
	}
	return m
}

// Init starts the clock.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.game.Advance(time.Second)
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.cursor = (m.cursor + engine.NumColumns - 1) % engine.NumColumns
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.cursor = (m.cursor + 1) % engine.NumColumns
		return m, nil

	case key.Matches(msg, m.keys.More):
		if m.picked && m.pickedCount < m.game.MovableTail(m.pickedFrom) {
			m.pickedCount++
		}
		return m, nil

	case key.Matches(msg, m.keys.Less):
		if m.picked && m.pickedCount > 1 {
			m.pickedCount--
		}
		return m, nil

	case key.Matches(msg, m.keys.Pick):
		return m.pickOrDrop()

	case key.Matches(msg, m.keys.Cancel):
		m.picked = false
		return m, nil

	case key.Matches(msg, m.keys.Deal):
		m.picked = false
		m.hint = nil
		//nolint:errcheck // Rejection reasons arrive through the hook sink
		m.game.DealRow()
		m.drainSink()
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		m.picked = false
		m.hint = nil
		m.game.Undo()
		m.drainSink()
		return m, nil

	case key.Matches(msg, m.keys.Redo):
		m.picked = false
		m.hint = nil
		m.game.Redo()
		m.drainSink()
		return m, nil

	case key.Matches(msg, m.keys.Hint):
		m.showHint()
		return m, nil

	case key.Matches(msg, m.keys.New):
		return m.newGame()
	}

	// Digit keys jump straight to a column (1..9, 0 = tenth).
	if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		col := int(s[0] - '1')
		if s[0] == '0' {
			col = 9
		}
		m.cursor = col
	}
	return m, nil
}

// pickOrDrop runs the two-step move interaction: first press grabs the
// movable tail of the cursor column, second press drops it.
func (m Model) pickOrDrop() (tea.Model, tea.Cmd) {
	if !m.picked {
		tail := m.game.MovableTail(m.cursor)
		if tail == 0 {
			m.message, m.msgErr = "nothing to pick up there", true
			return m, nil
		}
		m.picked = true
		m.pickedFrom = m.cursor
		m.pickedCount = tail
		m.message, m.msgErr = "", false
		return m, nil
	}

	if m.cursor == m.pickedFrom {
		m.picked = false
		return m, nil
	}

	start := len(m.game.Tableau[m.pickedFrom]) - m.pickedCount
	if err := m.game.Move(m.pickedFrom, start, m.cursor); err == nil {
		m.picked = false
		m.hint = nil
	}
	m.drainSink()
	return m, nil
}

func (m *Model) showHint() {
	hints := m.game.Hint()
	if len(hints) == 0 {
		m.hint = nil
		m.message, m.msgErr = "no moves available - deal or undo", true
		return
	}
	h := hints[0]
	m.hint = &h
	card := m.game.Tableau[h.From][h.Start]
	m.message = fmt.Sprintf("try %s: column %d to column %d", card.Label(), h.From+1, h.To+1)
	m.msgErr = false
}

func (m Model) newGame() (tea.Model, tea.Cmd) {
	if m.opts.SavePath != "" {
		//nolint:errcheck // Best-effort cleanup of the old save
		save.Delete(m.opts.SavePath)
	}
	m.game.NewGame(m.opts.Difficulty, "", m.opts.IncludeAces)
	m.picked = false
	m.hint = nil
	m.resultSaved = false
	m.message, m.msgErr = "new game: seed "+m.game.Seed, false
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if !m.game.Won() && m.opts.SavePath != "" {
		//nolint:errcheck // Best-effort save, quit proceeds regardless
		save.Write(m.opts.SavePath, m.game.Snapshot())
	}
	return m, tea.Quit
}

// drainSink pulls pending hook output into the view state and records
// the result once when the game is won.
func (m *Model) drainSink() {
	if text, isErr, ok := m.sink.takeMessage(); ok {
		m.message, m.msgErr = text, isErr
	}
	if m.sink.won && !m.resultSaved {
		m.resultSaved = true
		if m.opts.Store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.opts.Store.SaveResult(storage.GameResult{
				Seed:          m.game.Seed,
				Difficulty:    m.game.Difficulty.Label(),
				IncludeAces:   m.game.IncludeAces,
				Won:           true,
				Score:         m.game.Score,
				Moves:         m.game.Moves,
				CompletedRuns: m.game.Foundations.Completed,
				DurationSecs:  int(m.game.Elapsed.Seconds()),
			})
		}
		if m.opts.SavePath != "" {
			//nolint:errcheck // The finished game's save is stale either way
			save.Delete(m.opts.SavePath)
		}
	}
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderGame(m)
}

// Run starts the Bubble Tea program for a game session.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
