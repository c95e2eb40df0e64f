package sim

// burst spawns the death effects for an entity that was just destroyed.
func (w *World) burst(e *Entity) {
	w.AddExplosions(e.X, e.Y, w.cfg.Effects.ExplosionCount)
	w.AddDebris(e)
}

// damage removes one point of health from e and bursts it if that hit was
// fatal. Reports whether e was destroyed.
func (w *World) damage(e *Entity) bool {
	if !e.takeHit() {
		return false
	}
	w.burst(e)
	if e.Side == SidePlayer {
		w.stats.Deaths++
	} else {
		w.stats.Kills++
	}
	return true
}

// collides reports whether a can hit b this tick: b must still be alive,
// on the other side, and overlapping.
func collides(a, b *Entity) bool {
	return b.Alive() && Hostile(a, b) && a.Box().Overlaps(b.Box())
}

// ram resolves the player against the first live enemy ship it touches.
// Both take one point of damage.
func (w *World) ram() bool {
	p := &w.player
	for i := range w.ships.Len() {
		s := w.ships.At(i)
		if !collides(p, s) {
			continue
		}
		w.damage(p)
		w.damage(s)
		return true
	}
	return false
}

// strike resolves a bullet against ships first, then the player. The bullet
// is spent on the first hit.
func (w *World) strike(b *Entity) bool {
	for i := range w.ships.Len() {
		s := w.ships.At(i)
		if !collides(b, s) {
			continue
		}
		b.takeHit()
		w.damage(s)
		return true
	}

	if collides(b, &w.player) {
		b.takeHit()
		w.damage(&w.player)
		return true
	}
	return false
}
