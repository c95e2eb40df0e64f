package sim

import "github.com/vovakirdan/star-raid/internal/core"

// Debris is a tumbling fragment cut out of a destroyed entity's sprite.
type Debris struct {
	X, Y   float64
	VX, VY float64
	Src    core.Rect // Region of Sprite this fragment shows
	Sprite Sprite
	// Life is the remaining ticks; frontends also use it as fade alpha.
	Life int
}

// AddDebris splits the entity's sprite into a grid and throws one fragment
// per cell from the entity's centre.
func (w *World) AddDebris(e *Entity) {
	grid := w.cfg.Effects.DebrisGrid
	cellW := e.W / grid
	cellH := e.H / grid
	cx := e.X + 0.5*float64(e.W)
	cy := e.Y + 0.5*float64(e.H)

	for row := range grid {
		for col := range grid {
			d := Debris{
				X:      cx,
				Y:      cy,
				Sprite: e.Sprite,
				Life:   w.fps * 2,
				Src:    core.NewRect(col*cellW, row*cellH, cellW, cellH),
			}
			d.VX = 0.3 * float64(w.rng.Intn(10)-w.rng.Intn(10))
			d.VY = 0.3 * float64(w.rng.Intn(10)-w.rng.Intn(10))
			w.debris.Add(d)
		}
	}
}

func (w *World) updateDebris() {
	w.debris.Retain(func(d *Debris) bool {
		d.X += d.VX
		d.Y += d.VY
		if d.Life <= 0 {
			return false
		}
		d.Life--
		return true
	})
}
