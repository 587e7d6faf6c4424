package engine

import "math"

// Snapshot is a flattened copy of the engine state built from primitive types,
// used by headless runs and determinism tests.
type Snapshot struct {
	Tick     uint64
	ShipX    int
	Lives    int
	Score    int
	Level    int
	GameOver bool

	Direction    int
	MoveInterval float64

	// Each enemy is 4 ints: X, Y, Health, Variant
	EnemyData []int
	// Each shield is 3 ints: X, Y, Health
	ShieldData []int
	// Each projectile is 4 ints: X, Y, DY, Owner
	ProjectileData []int
	// Each particle is 4 ints: X, Y, TTL, Origin
	ParticleData []int
}

// Snapshot returns the current state as a Snapshot.
func (e *Engine) Snapshot() Snapshot {
	enemies := make([]int, 0, e.enemies.Len()*4)
	e.enemies.Each(func(_ int, en *Enemy) bool {
		enemies = append(enemies, en.Pos.X, en.Pos.Y, en.Health, int(en.Variant))
		return true
	})

	shields := make([]int, 0, e.shields.Len()*3)
	e.shields.Each(func(_ int, s *Shield) bool {
		shields = append(shields, s.Pos.X, s.Pos.Y, s.Health)
		return true
	})

	projectiles := make([]int, 0, e.projectiles.Len()*4)
	e.projectiles.Each(func(_ int, p *Projectile) bool {
		projectiles = append(projectiles, p.Pos.X, p.Pos.Y, p.DY, int(p.Owner))
		return true
	})

	particles := make([]int, 0, e.particles.Len()*4)
	e.particles.Each(func(_ int, p *Particle) bool {
		particles = append(particles, p.Pos.X, p.Pos.Y, p.TTL, int(p.Origin))
		return true
	})

	return Snapshot{
		Tick:     e.ticks,
		ShipX:    e.player.Pos.X,
		Lives:    e.lives,
		Score:    e.score,
		Level:    e.level,
		GameOver: e.gameOver,

		Direction:    e.direction,
		MoveInterval: e.moveInterval,

		EnemyData:      enemies,
		ShieldData:     shields,
		ProjectileData: projectiles,
		ParticleData:   particles,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.ShipX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.MoveInterval)
	if snap.GameOver {
		h = h*31 + 1
	}

	for _, data := range [][]int{snap.EnemyData, snap.ShieldData, snap.ProjectileData, snap.ParticleData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	return h
}
