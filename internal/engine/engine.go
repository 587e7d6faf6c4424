// Package engine is the authoritative Space Invaders simulation: entity pools,
// the per-tick update with collision resolution, wave progression and a
// read-only query surface for renderers.
//
// The engine is single-threaded. The caller owns the clock and advances the
// simulation with Update(dt); nothing in this package sleeps, blocks or logs.
package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Minimum playfield size. The ship row is height-2 and player shots spawn one
// row above it, so anything shorter has nowhere to fire.
const (
	MinWidth  = 1
	MinHeight = 3
)

// ErrInvalidDimensions is returned by New for a playfield that cannot hold a game.
var ErrInvalidDimensions = errors.New("invalid playfield dimensions")

// Rand is the random source used for enemy fire and strong-enemy rolls.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Option customizes an Engine at construction.
type Option func(*options)

type options struct {
	cfg  config.InvadersConfig
	rng  Rand
	seed int64
}

// WithConfig replaces the default game parameters.
func WithConfig(cfg config.InvadersConfig) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithRand injects the random source. Takes precedence over WithSeed.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed seeds the engine's own random source.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// Engine owns every entity of one game.
type Engine struct {
	width  int
	height int
	cfg    config.InvadersConfig
	rng    Rand

	player   Player
	lives    int
	score    int
	level    int
	elapsed  float64
	ticks    uint64
	quit     bool
	gameOver bool

	enemies      *Pool[Enemy]
	direction    int // +1 right, -1 left
	moveAcc      float64
	moveInterval float64

	shields     *Pool[Shield]
	projectiles *Pool[Projectile]
	particles   *Pool[Particle]

	events []Event
}

// New creates an engine for a width x height playfield in its initial state.
func New(width, height int, opts ...Option) (*Engine, error) {
	o := options{cfg: config.DefaultInvadersConfig(), seed: 1}
	for _, opt := range opts {
		opt(&o)
	}

	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("engine: %dx%d playfield: %w", width, height, ErrInvalidDimensions)
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(o.seed)) //#nosec G404 -- gameplay randomness
	}

	e := &Engine{
		width:       width,
		height:      height,
		cfg:         o.cfg,
		rng:         rng,
		enemies:     NewPool[Enemy](MaxEnemies),
		shields:     NewPool[Shield](MaxShields),
		projectiles: NewPool[Projectile](MaxProjectiles),
		particles:   NewPool[Particle](MaxParticles),
		events:      make([]Event, 0, 16),
	}
	e.Reset()
	return e, nil
}

// Reset restores the initial state without reallocating any pool.
// The random source keeps its current position.
func (e *Engine) Reset() {
	e.player = Player{Entity: Entity{
		Pos:    core.Point{X: e.width / 2, Y: e.height - 1},
		Alive:  true,
		Health: 1,
		Damage: 1,
	}}
	e.lives = e.cfg.Player.Lives
	e.score = 0
	e.level = 1
	e.elapsed = 0
	e.ticks = 0
	e.quit = false
	e.gameOver = false

	e.direction = 1
	e.moveAcc = 0
	e.moveInterval = e.cfg.Waves.MoveInterval
	e.spawnFormation()
	e.spawnShields()

	e.projectiles.Clear()
	e.particles.Clear()
	e.events = e.events[:0]
}

// Update advances the simulation by dt seconds. Negative dt counts as zero.
// Once the game is over Update does nothing until Reset.
func (e *Engine) Update(dt float64) {
	e.events = e.events[:0]
	if e.gameOver {
		return
	}
	if dt < 0 {
		dt = 0
	}

	e.elapsed += dt
	e.ticks++

	e.ageParticles()
	e.moveProjectiles()
	e.advanceWave(dt)
	e.enemyFire()
	e.checkInvasion()
}

// MoveShip moves the ship horizontally by dir cells, clamped to the playfield.
func (e *Engine) MoveShip(dir int) {
	e.player.Pos.X = core.Clamp(e.player.Pos.X+dir, 0, e.width-1)
}

// Fire launches a player projectile from just above the ship row.
// When every projectile slot is taken the shot is dropped.
func (e *Engine) Fire() {
	e.spawnProjectile(core.Point{X: e.player.Pos.X, Y: e.ShipRow() - 1}, OwnerPlayer)
}

// RequestQuit raises the quit flag for the frame loop to observe.
func (e *Engine) RequestQuit() {
	e.quit = true
}

func (e *Engine) spawnProjectile(pos core.Point, owner Owner) {
	dy := -1
	if owner == OwnerEnemy {
		dy = 1
	}
	e.projectiles.TryInsert(Projectile{Pos: pos, DY: dy, Owner: owner})
}

func (e *Engine) ageParticles() {
	e.particles.Each(func(idx int, p *Particle) bool {
		p.Pos = p.Pos.Add(p.Vel)
		p.TTL--
		if p.TTL <= 0 {
			e.particles.Deactivate(idx)
		}
		return true
	})
}

// explode spawns one particle per radial direction. Bursts that do not fit
// in the particle pool are truncated.
func (e *Engine) explode(pos core.Point, origin Kind) {
	speed := e.cfg.Explosion.Speed
	for _, dir := range explosionDirs {
		_, ok := e.particles.TryInsert(Particle{
			Pos:    pos,
			Vel:    core.Point{X: dir.X * speed, Y: dir.Y * speed},
			TTL:    e.cfg.Explosion.TTL,
			Origin: origin,
		})
		if !ok {
			return
		}
	}
}

func (e *Engine) endGame() {
	if e.gameOver {
		return
	}
	e.gameOver = true
	e.emit(EventGameOver, e.player.Pos, e.score)
}
