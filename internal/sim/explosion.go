package sim

import (
	"math"

	"github.com/vovakirdan/star-raid/internal/core"
)

// Explosion is one additive glow particle of a death burst.
type Explosion struct {
	X, Y   float64
	VX, VY float64
	Color  core.Color
	// A is both the fade alpha and the remaining life in ticks.
	A int
}

// explosionPalette holds the color presets a particle is drawn from.
var explosionPalette = [...]core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorWhite,
}

// AddExplosions spawns count particles around (x, y).
func (w *World) AddExplosions(x, y float64, count int) {
	spread := w.cfg.Effects.ExplosionSpread
	ox, oy := math.Trunc(x), math.Trunc(y)

	for range count {
		e := Explosion{}
		e.X = ox + float64(w.rng.Intn(spread)-w.rng.Intn(spread))
		e.Y = oy + float64(w.rng.Intn(spread)-w.rng.Intn(spread))
		e.VX = 0.1 * float64(w.rng.Intn(10)-w.rng.Intn(10))
		e.VY = 0.1 * float64(w.rng.Intn(10)-w.rng.Intn(10))
		e.Color = explosionPalette[w.rng.Intn(len(explosionPalette))]
		e.A = w.rng.Intn(w.fps * 2)
		w.explosions.Add(e)
	}
}

func (w *World) updateExplosions() {
	w.explosions.Retain(func(e *Explosion) bool {
		e.X += e.VX
		e.Y += e.VY
		if e.A <= 0 {
			return false
		}
		e.A--
		return true
	})
}
