package engine

import "github.com/vovakirdan/tui-invaders/internal/core"

// Pool capacities. Configured counts are clamped to these.
const (
	MaxEnemies     = 24
	MaxShields     = 4
	MaxProjectiles = 64
	MaxParticles   = 256
)

// Kind tags the role of an entity. Particles carry the kind of whatever
// exploded so the renderer can color them.
type Kind int

const (
	KindPlayer Kind = iota
	KindWeakEnemy
	KindStrongEnemy
	KindShield
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindWeakEnemy:
		return "weak enemy"
	case KindStrongEnemy:
		return "strong enemy"
	case KindShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Variant is the strength tier of an enemy.
type Variant int

const (
	VariantWeak Variant = iota
	VariantStrong
)

// Health returns the starting health of an enemy of this variant.
func (v Variant) Health() int {
	if v == VariantStrong {
		return 2
	}
	return 1
}

// Kind maps the variant onto the entity kind used for explosions.
func (v Variant) Kind() Kind {
	if v == VariantStrong {
		return KindStrongEnemy
	}
	return KindWeakEnemy
}

// Entity holds the fields shared by the player, enemies and shields.
type Entity struct {
	Pos    core.Point
	Alive  bool
	Health int
	Damage int
}

// Player is the ship. Lives and score live on the engine, not here.
type Player struct {
	Entity
}

// Enemy is one invader of the formation.
type Enemy struct {
	Entity
	Variant Variant
}

// Shield is a destructible block. Shields never deal damage.
type Shield struct {
	Entity
}

// Owner identifies who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// String returns the name of the owner.
func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

// Projectile moves one row per tick: up for the player, down for enemies.
type Projectile struct {
	Pos   core.Point
	DY    int
	Owner Owner
}

// Particle is one fragment of an explosion.
type Particle struct {
	Pos    core.Point
	Vel    core.Point
	TTL    int
	Origin Kind
}

// explosionDirs are the 8 radial directions of an explosion burst.
var explosionDirs = [8]core.Point{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1},
}
