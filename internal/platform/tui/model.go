package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/engine"
	"github.com/vovakirdan/tui-invaders/internal/logging"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// eventSource is implemented by games that report per-tick engine events.
type eventSource interface {
	Events() []engine.Event
}

// Session carries what a game run needs besides the game itself.
type Session struct {
	Store      *storage.Store // nil disables score saving
	Logger     *log.Logger    // nil discards
	Difficulty string
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	session    Session
	keyMapper  *KeyMapper
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool // user asked to return to the menu
	scoreSaved bool // score of the current game over has been stored
}

// NewModel creates a model for game. A zero seed is replaced by the clock.
func NewModel(game registry.Game, session Session, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if session.Logger == nil {
		session.Logger = logging.Discard()
	}

	return Model{
		game:       game,
		session:    session,
		keyMapper:  NewKeyMapper(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.session.Logger.Info("game started",
		"game", m.game.ID(), "difficulty", m.session.Difficulty,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionBack) {
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize restarts the game for the new size unless it is already over.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.session.Logger.Debug("screen resized, game restarted", "width", msg.Width, "height", msg.Height)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	wasOver := m.gameState.GameOver
	m.gameState = result.State
	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.session.Logger.Info("game restarted")
	}

	if src, ok := m.game.(eventSource); ok {
		m.logEvents(src.Events())
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(events []engine.Event) {
	logger := m.session.Logger
	for _, ev := range events {
		switch ev.Type {
		case engine.EventWaveCleared:
			logger.Info("wave cleared", "level", ev.Value)
		case engine.EventGameOver:
			logger.Info("game over", "score", ev.Value, "level", m.gameState.Level)
		default:
			logger.Debug(ev.Type.String(), "x", ev.Pos.X, "y", ev.Pos.Y, "value", ev.Value)
		}
	}
}

// saveScore stores the finished game. Zero scores are not recorded.
func (m Model) saveScore() {
	if m.session.Store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.session.Store.SaveScore(context.Background(), storage.Score{
		GameID:     m.game.ID(),
		Difficulty: m.session.Difficulty,
		Score:      m.gameState.Score,
		Level:      m.gameState.Level,
	})
	if err != nil {
		m.session.Logger.Error("could not save score", "error", err)
		return
	}
	m.session.Logger.Info("score saved", "score", m.gameState.Score, "level", m.gameState.Level)
}

// saveScreenshot writes the current frame as plain text under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.session.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.session.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.session.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.session.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// GoingBack reports whether the user asked to return to the menu.
func (m Model) GoingBack() bool {
	return m.back
}

// Run plays game until the user quits or goes back.
// Returns true when the user asked for the menu.
func Run(game registry.Game, session Session, cfg core.RuntimeConfig) (goBack bool, err error) {
	p := tea.NewProgram(
		NewModel(game, session, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.GoingBack(), nil
}
