package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/engine"
)

// Visual characters for rendering
const (
	ShipChar        = 'A'
	WeakEnemyChar   = 'W'
	StrongEnemyChar = 'M'
	PlayerShotChar  = '|'
	EnemyShotChar   = '!'
)

// Shield glyphs by remaining health, index 0 unused.
var shieldGlyphs = []rune{' ', '▒', '▓', '█'}

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.eng == nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorHUD)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorHUD)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows), core.ColorBorder)

	g.renderShields(dst)
	g.renderEnemies(dst)
	g.renderProjectiles(dst)
	g.renderParticles(dst)
	g.renderShip(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.eng.Score()), core.ColorHUD)
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.eng.Lives()), core.ColorHUD)

	levelText := fmt.Sprintf("Level: %d", g.eng.Level())
	if g.preset != "" {
		levelText = fmt.Sprintf("%s  %s", g.preset.Title(), levelText)
	}
	dst.DrawTextColored(dst.Width()-len(levelText)-1, 0, levelText, core.ColorHUD)
}

// plot draws one playfield cell, skipping cells outside the field.
func (g *Game) plot(dst *core.Screen, p core.Point, r rune, c core.Color) {
	if p.X < 0 || p.X >= g.eng.Width() || p.Y < 0 || p.Y >= g.eng.Height() {
		return
	}
	at := g.origin.Add(p)
	dst.SetColored(at.X, at.Y, r, c)
}

func (g *Game) renderShields(dst *core.Screen) {
	for i := 0; i < g.eng.ShieldCount(); i++ {
		s := g.eng.Shield(i)
		glyph := shieldGlyphs[core.Clamp(s.Health, 1, len(shieldGlyphs)-1)]
		g.plot(dst, s.Pos, glyph, core.ColorShield)
	}
}

func (g *Game) renderEnemies(dst *core.Screen) {
	for i := 0; i < g.eng.EnemyCount(); i++ {
		en := g.eng.Enemy(i)
		if !en.Alive {
			continue
		}
		switch {
		case en.Variant == engine.VariantStrong && en.Health > 1:
			g.plot(dst, en.Pos, StrongEnemyChar, core.ColorStrongEnemy)
		case en.Variant == engine.VariantStrong:
			// wounded strong enemies keep their glyph but fade to the weak color
			g.plot(dst, en.Pos, StrongEnemyChar, core.ColorWeakEnemy)
		default:
			g.plot(dst, en.Pos, WeakEnemyChar, core.ColorWeakEnemy)
		}
	}
}

func (g *Game) renderProjectiles(dst *core.Screen) {
	for i := 0; i < g.eng.ProjectileCount(); i++ {
		p := g.eng.Projectile(i)
		if p.Owner == engine.OwnerEnemy {
			g.plot(dst, p.Pos, EnemyShotChar, core.ColorEnemyShot)
		} else {
			g.plot(dst, p.Pos, PlayerShotChar, core.ColorPlayerShot)
		}
	}
}

func (g *Game) renderParticles(dst *core.Screen) {
	ttl := g.cfg.Explosion.TTL
	for i := 0; i < g.eng.ParticleCount(); i++ {
		p := g.eng.Particle(i)
		g.plot(dst, p.Pos, particleGlyph(p.TTL, ttl), particleColor(p.Origin))
	}
}

// particleGlyph fades a fragment as it ages.
func particleGlyph(ttl, full int) rune {
	switch {
	case ttl*3 > full*2:
		return '*'
	case ttl*3 > full:
		return '+'
	default:
		return '.'
	}
}

func particleColor(origin engine.Kind) core.Color {
	switch origin {
	case engine.KindStrongEnemy:
		return core.ColorStrongEnemy
	case engine.KindShield:
		return core.ColorShield
	case engine.KindPlayer:
		return core.ColorShip
	default:
		return core.ColorWeakEnemy
	}
}

func (g *Game) renderShip(dst *core.Screen) {
	g.plot(dst, core.Point{X: g.eng.ShipX(), Y: g.eng.ShipRow()}, ShipChar, core.ColorShip)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.eng.GameOver():
		subtitle := fmt.Sprintf("Score: %d  |  Level: %d  |  R to restart", g.eng.Score(), g.eng.Level())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorHUD)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorHUD)
}
