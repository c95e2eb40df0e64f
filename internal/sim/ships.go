package sim

// spawnEnemies counts the spawn timer down and adds one enemy when it
// expires. The timer starts expired, so the first enemy arrives on the
// first tick after a reset.
func (w *World) spawnEnemies() {
	w.spawnTimer--
	if w.spawnTimer > 0 {
		return
	}
	ec := w.cfg.Enemy
	w.spawnTimer = ec.SpawnMin + w.rng.Intn(ec.SpawnRange)

	sp := w.sprites.Enemy
	e := Entity{
		X:      float64(w.cfg.Screen.Width),
		W:      sp.W,
		H:      sp.H,
		Health: ec.Health,
		Side:   SideEnemy,
		Sprite: sp,
	}
	// Any y in [0, H-h] keeps the ship fully on screen.
	e.Y = float64(w.rng.Intn(max(1, w.cfg.Screen.Height-sp.H+1)))
	e.VX = -float64(ec.SpeedMin + w.rng.Intn(ec.SpeedRange))

	w.ships.Add(e)
	w.stats.Spawned++
}

// updateShips moves every enemy, drops the ones that left the screen or
// died, and lets the survivors fire.
func (w *World) updateShips() {
	w.ships.Retain(func(s *Entity) bool {
		s.Move()
		if s.X < -float64(s.W) || !s.Alive() {
			return false
		}
		if s.Reload <= 0 {
			w.fireEnemyBullet(s)
			s.Reload = w.cfg.Enemy.Reload
		} else {
			s.Reload--
		}
		return true
	})
}

// reapShips removes ships destroyed by bullets this tick.
func (w *World) reapShips() {
	w.ships.Retain(func(s *Entity) bool {
		return s.Alive()
	})
}
