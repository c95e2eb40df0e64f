package sim

import "github.com/vovakirdan/star-raid/internal/core"

// axis converts a pair of opposing held actions into -1, 0 or +1.
// Holding both, or neither, cancels out.
func axis(in core.InputFrame, neg, pos core.Action) float64 {
	n, p := in.Has(neg), in.Has(pos)
	switch {
	case p && !n:
		return 1
	case n && !p:
		return -1
	default:
		return 0
	}
}

// updatePlayer applies one tick of input to the player ship.
func (w *World) updatePlayer(in core.InputFrame) {
	p := &w.player
	if !p.Alive() {
		return
	}

	p.VX = axis(in, core.ActionLeft, core.ActionRight) * p.Speed
	p.VY = axis(in, core.ActionUp, core.ActionDown) * p.Speed
	p.Move()
	p.X = core.ClampF(p.X, 0, float64(w.cfg.Screen.Width-p.W))
	p.Y = core.ClampF(p.Y, 0, float64(w.cfg.Screen.Height-p.H))

	if in.Has(core.ActionFire) && p.Reload <= 0 {
		w.firePlayerBullet()
		p.Reload = w.cfg.Player.Reload
	}
	if p.Reload > 0 {
		p.Reload--
	}

	w.ram()
}
