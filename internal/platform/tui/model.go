package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fusegrid/fusegrid/internal/core"
	"github.com/fusegrid/fusegrid/internal/engine"
	"github.com/fusegrid/fusegrid/internal/game"
	"github.com/fusegrid/fusegrid/internal/storage"
)

// Model is the Bubble Tea model for a running game. The game is turn
// based, so there is no tick loop: the session advances only on key
// events and the screen is redrawn after each one.
type Model struct {
	session *game.Session
	screen  *core.Screen
	store   *storage.Store
	keymap  *KeyMapper
	mode    string

	// Power-up targeting. While targeting is true, direction keys move
	// the cursor instead of sliding the board.
	targeting bool
	armed     engine.PowerUp
	cursor    engine.Position

	message    string
	quitting   bool
	scoreSaved bool
}

// NewModel creates a Bubble Tea model for the given session.
func NewModel(session *game.Session, store *storage.Store, mode string, width, height int) Model {
	return Model{
		session: session,
		screen:  core.NewScreen(width, height),
		store:   store,
		keymap:  NewKeyMapper(),
		mode:    mode,
	}
}

// Init implements tea.Model. No commands are needed at startup.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keymap.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	m.message = ""

	if m.targeting {
		return m.handleTargetingKey(action), nil
	}

	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.session.Move(directionFor(action))
		m.saveScoreOnGameOver()

	case core.ActionDivider, core.ActionDoubler, core.ActionSwapper:
		m.startTargeting(powerUpFor(action))

	case core.ActionUndo:
		if err := m.session.ApplyPowerUp(engine.PowerUpUndo, 0); err != nil {
			m.message = undoMessage(err)
		}

	case core.ActionRestart:
		m.session.Restart(0)
		m.scoreSaved = false
		m.targeting = false
	}

	return m, nil
}

// startTargeting arms a power-up and places the cursor on the first tile.
func (m *Model) startTargeting(kind engine.PowerUp) {
	if m.session.PowerUps().Remaining(kind) <= 0 {
		m.message = "No " + kind.String() + " uses left"
		return
	}

	m.targeting = true
	m.armed = kind
	m.cursor = engine.Position{}
	if tiles := m.session.Board().Tiles; len(tiles) > 0 {
		m.cursor = tiles[0].Pos
	}
}

// handleTargetingKey moves the cursor or fires the armed power-up.
func (m Model) handleTargetingKey(action core.Action) Model {
	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.moveCursor(directionFor(action))

	case core.ActionConfirm:
		m.fireArmed()

	case core.ActionBack:
		m.targeting = false
		m.message = "Cancelled"
	}
	return m
}

// moveCursor shifts the targeting cursor one cell, clamped to the board.
func (m *Model) moveCursor(dir engine.Direction) {
	dRow, dCol := dir.Vector()
	next := engine.Position{Row: m.cursor.Row + dRow, Col: m.cursor.Col + dCol}
	if m.session.Board().InBounds(next) {
		m.cursor = next
	}
}

// fireArmed applies the armed power-up to the tile under the cursor.
// The swapper stays armed after its first selection so the second tile
// can be picked with the same cursor.
func (m *Model) fireArmed() {
	tile, ok := m.session.Board().TileAt(m.cursor)
	if !ok {
		m.message = "No tile there"
		return
	}

	before := m.session.PowerUps()
	err := m.session.ApplyPowerUp(m.armed, tile.ID)
	switch {
	case err != nil:
		m.message = powerUpMessage(m.armed, err)
		m.targeting = false

	case m.armed == engine.PowerUpSwapper && m.session.PowerUps().Swapper == before.Swapper:
		// First pick of a swap, or the pick was toggled off.
		if m.session.PowerUps().SelectedTileID != 0 {
			m.message = "Pick the tile to swap with"
		} else {
			m.message = "Selection cleared"
			m.targeting = false
		}

	default:
		m.targeting = false
		m.saveScoreOnGameOver()
	}
}

// saveScoreOnGameOver persists the finished game once. Saving is best
// effort: the game keeps rendering even if storage is unavailable.
func (m *Model) saveScoreOnGameOver() {
	if !m.session.GameOver() || m.scoreSaved || m.store == nil {
		return
	}

	//nolint:errcheck
	m.store.SaveScore(storage.ScoreEntry{
		Mode:       m.mode,
		GridSize:   m.session.GridSize(),
		Difficulty: string(m.session.Difficulty()),
		Score:      m.session.Score(),
		MaxTile:    m.session.MaxTile(),
		Moves:      m.session.Moves(),
		Won:        m.session.Won(),
	})
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	opts := game.RenderOptions{Message: m.message}
	if m.targeting {
		cursor := m.cursor
		opts.Cursor = &cursor
		opts.Armed = m.armed
	}

	m.session.Render(m.screen, opts)
	return RenderScreen(m.screen)
}

func directionFor(a core.Action) engine.Direction {
	switch a {
	case core.ActionUp:
		return engine.DirUp
	case core.ActionDown:
		return engine.DirDown
	case core.ActionLeft:
		return engine.DirLeft
	default:
		return engine.DirRight
	}
}

func powerUpFor(a core.Action) engine.PowerUp {
	switch a {
	case core.ActionDivider:
		return engine.PowerUpDivider
	case core.ActionDoubler:
		return engine.PowerUpDoubler
	default:
		return engine.PowerUpSwapper
	}
}

func undoMessage(err error) string {
	switch {
	case err == engine.ErrNoHistory:
		return "Nothing to undo"
	case err == engine.ErrExhausted:
		return "No undo uses left"
	default:
		return err.Error()
	}
}

func powerUpMessage(kind engine.PowerUp, err error) string {
	switch {
	case err == engine.ErrInvalidTarget:
		return "Cannot use " + kind.String() + " on that tile"
	case err == engine.ErrExhausted:
		return "No " + kind.String() + " uses left"
	default:
		return err.Error()
	}
}

// Run starts the Bubble Tea program with the given session.
func Run(session *game.Session, store *storage.Store, mode string, width, height int) error {
	model := NewModel(session, store, mode, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
