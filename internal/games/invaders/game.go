// Package invaders adapts the Space Invaders engine to the platform game
// interface: input actions become engine commands, fixed ticks become
// Update calls and engine state is drawn into a core.Screen.
package invaders

import (
	"errors"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/engine"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// ID is the registry and score-storage identifier of the game.
const ID = "invaders"

// Screen space taken outside the playfield: one HUD row on top and a
// one-cell border around the field.
const (
	hudRows     = 1
	borderCells = 1

	minScreenW = 30
	minScreenH = 15
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game implements registry.Game on top of engine.Engine.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	preset  config.DifficultyPreset
	loadErr error

	fixedConfig *config.InvadersConfig

	eng    *engine.Engine
	origin core.Point // screen position of playfield cell (0,0)
	events []engine.Event

	paused       bool
	tooSmall     bool
	tooSmallQuit bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always plays with cfg, ignoring config
// files and the package-level difficulty preset.
func NewWithConfig(cfg config.InvadersConfig, preset config.DifficultyPreset) *Game {
	return &Game{cfg: cfg, preset: preset, fixedConfig: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset loads the configuration and starts a new game sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.tooSmallQuit = false
	g.events = nil
	g.loadConfig()

	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	if g.tooSmall {
		g.eng = nil
		return
	}

	g.origin = core.Point{X: borderCells, Y: hudRows + borderCells}
	w := runtime.ScreenW - 2*borderCells
	h := runtime.ScreenH - hudRows - 2*borderCells

	eng, cfg, err := buildEngine(w, h, g.cfg, runtime.Seed)
	if err != nil {
		g.loadErr = errors.Join(g.loadErr, err)
	}
	g.cfg = cfg
	g.eng = eng
}

// buildEngine creates the engine for a w x h playfield. A config the engine
// rejects is replaced by the defaults and the rejection is still returned.
// The engine is nil only when the defaults fail too.
func buildEngine(w, h int, cfg config.InvadersConfig, seed int64) (*engine.Engine, config.InvadersConfig, error) {
	eng, err := engine.New(w, h, engine.WithConfig(cfg), engine.WithSeed(seed))
	if err == nil {
		return eng, cfg, nil
	}

	def := config.DefaultInvadersConfig()
	eng, fallbackErr := engine.New(w, h, engine.WithConfig(def), engine.WithSeed(seed))
	if fallbackErr != nil {
		return nil, def, errors.Join(err, fallbackErr)
	}
	return eng, def, err
}

func (g *Game) loadConfig() {
	if g.fixedConfig != nil {
		g.cfg = *g.fixedConfig
		g.loadErr = nil
		return
	}

	cfg, err := config.LoadInvaders(configPath)
	g.loadErr = err
	config.ApplyInvadersPreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.preset = difficultyPreset
}

// Step applies one frame of input and advances the engine by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	if g.eng == nil {
		if in.Has(core.ActionQuit) {
			g.tooSmallQuit = true
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.eng.RequestQuit()
		return core.StepResult{State: g.State()}
	}

	if g.eng.GameOver() {
		if in.Has(core.ActionRestart) {
			g.eng.Reset()
			g.paused = false
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.eng.MoveShip(-1)
	}
	if in.Has(core.ActionRight) {
		g.eng.MoveShip(1)
	}
	if in.Has(core.ActionFire) {
		g.eng.Fire()
	}

	g.eng.Update(g.runtime.TickSeconds())
	g.events = g.eng.Events()
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{Quit: g.tooSmallQuit}
	}
	return core.GameState{
		Score:    g.eng.Score(),
		Lives:    g.eng.Lives(),
		Level:    g.eng.Level(),
		GameOver: g.eng.GameOver(),
		Paused:   g.paused,
		Quit:     g.eng.Quit(),
	}
}

// Events returns what the engine reported during the last Step.
func (g *Game) Events() []engine.Event {
	return g.events
}

// Engine exposes the underlying engine for read-only inspection.
// It is nil while the screen is too small.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Difficulty returns the preset the current game runs with.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.preset
}

// Config returns the parameters the current game runs with.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// ConfigError returns the error from the last config load, if any.
// The game falls back to defaults when loading fails.
func (g *Game) ConfigError() error {
	return g.loadErr
}

// Snapshot returns the engine snapshot, or the zero value while the screen
// is too small.
func (g *Game) Snapshot() engine.Snapshot {
	if g.eng == nil {
		return engine.Snapshot{}
	}
	return g.eng.Snapshot()
}
