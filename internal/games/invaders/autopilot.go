package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/engine"
)

// Autopilot picks the input for one tick of a headless game: it steers the
// ship under the nearest enemy column and fires once lined up, unless a shot
// of its own is already travelling up that column.
func Autopilot(eng *engine.Engine) core.InputFrame {
	in := core.NewInputFrame()
	if eng == nil || eng.GameOver() || eng.EnemyCount() == 0 {
		return in
	}

	shipX := eng.ShipX()
	target, best := shipX, -1
	for _, en := range eng.Enemies() {
		d := en.Pos.X - shipX
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			target, best = en.Pos.X, d
		}
	}

	switch {
	case target < shipX:
		in.Set(core.ActionLeft)
	case target > shipX:
		in.Set(core.ActionRight)
	default:
		if !shotInFlight(eng, shipX) {
			in.Set(core.ActionFire)
		}
	}
	return in
}

func shotInFlight(eng *engine.Engine, x int) bool {
	for _, p := range eng.Projectiles() {
		if p.Owner == engine.OwnerPlayer && p.Pos.X == x {
			return true
		}
	}
	return false
}
