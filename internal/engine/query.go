package engine

import "github.com/vovakirdan/tui-invaders/internal/config"

// Read-only accessors. Pool accessors index over active entries only, in slot
// order; an index outside [0, Count) yields the zero value.

// ShipX returns the ship column.
func (e *Engine) ShipX() int { return e.player.Pos.X }

// ShipRow returns the row on which the ship is hit by enemy fire.
func (e *Engine) ShipRow() int { return e.height - 2 }

// Player returns a copy of the ship entity.
func (e *Engine) Player() Player { return e.player }

// Width returns the playfield width in cells.
func (e *Engine) Width() int { return e.width }

// Height returns the playfield height in cells.
func (e *Engine) Height() int { return e.height }

// Lives returns the remaining lives.
func (e *Engine) Lives() int { return e.lives }

// Score returns the points scored since the last Reset.
func (e *Engine) Score() int { return e.score }

// Level returns the current wave, starting at 1.
func (e *Engine) Level() int { return e.level }

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool { return e.gameOver }

// Quit reports whether a quit was requested.
func (e *Engine) Quit() bool { return e.quit }

// Elapsed returns the simulated time in seconds since the last Reset.
func (e *Engine) Elapsed() float64 { return e.elapsed }

// Ticks returns the number of updates since the last Reset.
func (e *Engine) Ticks() uint64 { return e.ticks }

// MoveInterval returns the current seconds between formation steps.
func (e *Engine) MoveInterval() float64 { return e.moveInterval }

// Direction returns +1 when the formation moves right, -1 when left.
func (e *Engine) Direction() int { return e.direction }

// Config returns the parameters the engine runs with.
func (e *Engine) Config() config.InvadersConfig { return e.cfg }

// EnemyCount returns the number of active enemies.
func (e *Engine) EnemyCount() int { return e.enemies.Len() }

// Enemy returns the i-th active enemy.
func (e *Engine) Enemy(i int) Enemy {
	en, _ := e.enemies.Nth(i)
	return en
}

// Enemies returns all active enemies.
func (e *Engine) Enemies() []Enemy { return e.enemies.Values() }

// ShieldCount returns the number of active shields.
func (e *Engine) ShieldCount() int { return e.shields.Len() }

// Shield returns the i-th active shield.
func (e *Engine) Shield(i int) Shield {
	s, _ := e.shields.Nth(i)
	return s
}

// Shields returns all active shields.
func (e *Engine) Shields() []Shield { return e.shields.Values() }

// ProjectileCount returns the number of active projectiles.
func (e *Engine) ProjectileCount() int { return e.projectiles.Len() }

// Projectile returns the i-th active projectile.
func (e *Engine) Projectile(i int) Projectile {
	p, _ := e.projectiles.Nth(i)
	return p
}

// Projectiles returns all active projectiles.
func (e *Engine) Projectiles() []Projectile { return e.projectiles.Values() }

// ParticleCount returns the number of active particles.
func (e *Engine) ParticleCount() int { return e.particles.Len() }

// Particle returns the i-th active particle.
func (e *Engine) Particle(i int) Particle {
	p, _ := e.particles.Nth(i)
	return p
}

// Particles returns all active particles.
func (e *Engine) Particles() []Particle { return e.particles.Values() }

// Events returns what happened during the last Update.
func (e *Engine) Events() []Event {
	out := make([]Event, len(e.events))
	copy(out, e.events)
	return out
}
