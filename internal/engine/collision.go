package engine

import "github.com/vovakirdan/tui-invaders/internal/core"

// moveProjectiles advances every projectile one row and resolves what it hits.
// Movement is per tick, not scaled by dt.
func (e *Engine) moveProjectiles() {
	e.projectiles.Each(func(idx int, p *Projectile) bool {
		p.Pos.Y += p.DY
		if p.Pos.Y < 0 || p.Pos.Y >= e.height {
			e.projectiles.Deactivate(idx)
			return true
		}
		if e.resolveProjectile(*p) {
			e.projectiles.Deactivate(idx)
		}
		return true
	})
}

// resolveProjectile applies the effect of p on whatever occupies its cell and
// reports whether p was consumed. A projectile hits at most one target: enemies
// (or the ship, for enemy fire) are checked before shields.
func (e *Engine) resolveProjectile(p Projectile) bool {
	switch p.Owner {
	case OwnerPlayer:
		if e.hitEnemy(p.Pos) {
			return true
		}
	case OwnerEnemy:
		if e.hitShip(p.Pos) {
			return true
		}
	}
	return e.hitShield(p.Pos)
}

func (e *Engine) hitEnemy(pos core.Point) bool {
	hit := false
	e.enemies.Each(func(idx int, en *Enemy) bool {
		if en.Pos != pos {
			return true
		}
		hit = true
		en.Health--
		if en.Health > 0 {
			e.emit(EventEnemyHit, pos, en.Health)
			return false
		}
		en.Alive = false
		e.explode(pos, en.Variant.Kind())
		e.score += e.cfg.Scoring.KillPoints
		e.emit(EventEnemyKilled, pos, e.cfg.Scoring.KillPoints)
		e.enemies.Deactivate(idx)
		return false
	})
	return hit
}

func (e *Engine) hitShip(pos core.Point) bool {
	if pos.X != e.player.Pos.X || pos.Y != e.ShipRow() {
		return false
	}
	e.lives--
	e.emit(EventPlayerHit, pos, e.lives)
	if e.lives <= 0 {
		e.endGame()
	}
	return true
}

func (e *Engine) hitShield(pos core.Point) bool {
	hit := false
	e.shields.Each(func(idx int, s *Shield) bool {
		if s.Pos != pos {
			return true
		}
		hit = true
		s.Health--
		if s.Health > 0 {
			e.emit(EventShieldHit, pos, s.Health)
			return false
		}
		s.Alive = false
		e.explode(pos, KindShield)
		e.emit(EventShieldDestroyed, pos, 0)
		e.shields.Deactivate(idx)
		return false
	})
	return hit
}
