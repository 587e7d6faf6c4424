package engine

import "github.com/vovakirdan/tui-invaders/internal/core"

// columnSpacing is the horizontal distance between formation columns.
func (e *Engine) columnSpacing() int {
	f := e.cfg.Formation
	return core.Max(f.MinColumnSpacing, (e.width-4)/f.Columns)
}

// spawnFormation fills the enemy pool with a fresh grid for the current level.
// Each enemy independently rolls for the strong variant from level 2 on.
func (e *Engine) spawnFormation() {
	e.enemies.Clear()

	f := e.cfg.Formation
	spacing := e.columnSpacing()
	strong := e.cfg.Waves.StrongPercent(e.level)

	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Columns; c++ {
			if e.enemies.Full() {
				return
			}
			variant := VariantWeak
			if strong > 0 && e.rng.Intn(100) < strong {
				variant = VariantStrong
			}
			e.enemies.TryInsert(Enemy{
				Entity: Entity{
					Pos:    core.Point{X: f.StartX + c*spacing, Y: f.StartY + r*f.RowSpacing},
					Alive:  true,
					Health: variant.Health(),
					Damage: 1,
				},
				Variant: variant,
			})
		}
	}
}

// spawnShields places the shields evenly across the middle row.
func (e *Engine) spawnShields() {
	e.shields.Clear()

	count := core.Min(e.cfg.Shields.Count, MaxShields)
	spacing := e.width / (count + 1)
	for i := 0; i < count; i++ {
		e.shields.TryInsert(Shield{Entity: Entity{
			Pos:    core.Point{X: spacing * (i + 1), Y: e.height / 2},
			Alive:  true,
			Health: e.cfg.Shields.Health,
			Damage: 0,
		}})
	}
}

// advanceWave either starts the next wave, when the formation is gone, or
// steps the formation once its movement timer expires.
func (e *Engine) advanceWave(dt float64) {
	e.moveAcc += dt

	if e.enemies.Len() == 0 {
		e.level++
		e.moveInterval = e.cfg.Waves.NextInterval(e.moveInterval)
		e.spawnFormation()
		e.emit(EventWaveCleared, core.Point{}, e.level)
		return
	}

	if e.moveAcc < e.moveInterval {
		return
	}
	e.moveAcc = 0
	e.stepFormation()
}

// stepFormation moves all enemies one cell in the current direction, or, when
// any of them would leave the playfield, reverses direction and drops every
// enemy one row instead.
func (e *Engine) stepFormation() {
	blocked := false
	e.enemies.Each(func(_ int, en *Enemy) bool {
		nx := en.Pos.X + e.direction
		if nx < 0 || nx >= e.width {
			blocked = true
			return false
		}
		return true
	})

	if blocked {
		e.direction = -e.direction
		e.enemies.Each(func(_ int, en *Enemy) bool {
			en.Pos.Y++
			return true
		})
		e.emit(EventFormationBounce, core.Point{}, e.direction)
		return
	}

	e.enemies.Each(func(_ int, en *Enemy) bool {
		en.Pos.X += e.direction
		return true
	})
}

// enemyFire gives the formation a FirePercent chance per tick to shoot from a
// uniformly chosen living enemy.
func (e *Engine) enemyFire() {
	if e.rng.Intn(100) >= e.cfg.Waves.FirePercent {
		return
	}
	n := e.enemies.Len()
	if n == 0 {
		return
	}
	shooter, ok := e.enemies.Nth(e.rng.Intn(n))
	if !ok {
		return
	}
	e.spawnProjectile(core.Point{X: shooter.Pos.X, Y: shooter.Pos.Y + 1}, OwnerEnemy)
}

// checkInvasion ends the game as soon as any enemy reaches the ship row,
// regardless of remaining lives.
func (e *Engine) checkInvasion() {
	row := e.ShipRow()
	invaded := false
	e.enemies.Each(func(_ int, en *Enemy) bool {
		if en.Pos.Y >= row {
			invaded = true
			return false
		}
		return true
	})
	if invaded {
		e.lives = 0
		e.endGame()
	}
}
