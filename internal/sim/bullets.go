package sim

func (w *World) firePlayerBullet() {
	p := &w.player
	sp := w.sprites.PlayerBullet
	w.bullets.Add(Entity{
		X:      p.X + 0.8*float64(p.W) - 0.5*float64(sp.W),
		Y:      p.Y + 0.5*float64(p.H) - 0.5*float64(sp.H),
		VX:     w.cfg.Player.BulletSpeed,
		W:      sp.W,
		H:      sp.H,
		Health: 1,
		Side:   SidePlayer,
		Sprite: sp,
	})
}

func (w *World) fireEnemyBullet(s *Entity) {
	ec := w.cfg.Enemy
	sp := w.sprites.EnemyBullet
	w.bullets.Add(Entity{
		X:      s.X + 0.2*float64(s.W) - 0.5*float64(sp.W),
		Y:      s.Y + 0.5*float64(s.H) - 0.5*float64(sp.H),
		VX:     s.VX - float64(ec.BulletBoostMin+w.rng.Intn(ec.BulletBoostRange)),
		W:      sp.W,
		H:      sp.H,
		Health: 1,
		Side:   SideEnemy,
		Sprite: sp,
	})
}

// updateBullets moves every bullet and removes those that hit something or
// left the screen horizontally.
func (w *World) updateBullets() {
	screenW := float64(w.cfg.Screen.Width)
	w.bullets.Retain(func(b *Entity) bool {
		b.Move()
		if w.strike(b) {
			return false
		}
		return b.X >= -float64(b.W) && b.X <= screenW
	})
}
