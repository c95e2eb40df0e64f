package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/star-raid/internal/config"
	"github.com/vovakirdan/star-raid/internal/core"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return New(config.DefaultShooterConfig(), DefaultSprites(), 12345)
}

// quiet stops the spawner so a test controls every ship on screen.
func quiet(w *World) {
	w.spawnTimer = 1 << 20
}

func enemyAt(w *World, x, y float64) Entity {
	sp := w.sprites.Enemy
	return Entity{X: x, Y: y, W: sp.W, H: sp.H, Health: 1, Reload: 1000, Side: SideEnemy, Sprite: sp}
}

func bulletAt(w *World, x, y float64, side Side) Entity {
	sp := w.sprites.PlayerBullet
	if side == SideEnemy {
		sp = w.sprites.EnemyBullet
	}
	return Entity{X: x, Y: y, W: sp.W, H: sp.H, Health: 1, Side: side, Sprite: sp}
}

func countSide(es []Entity, side Side) int {
	n := 0
	for _, e := range es {
		if e.Side == side {
			n++
		}
	}
	return n
}

func TestNewWorldInitialState(t *testing.T) {
	w := newTestWorld(t)

	p := w.Player()
	if p.X != 100 || p.Y != 100 {
		t.Errorf("player at (%f, %f), expected (100, 100)", p.X, p.Y)
	}
	if p.Health != 3 {
		t.Errorf("player health = %d, expected 3", p.Health)
	}
	if p.Reload != 0 {
		t.Errorf("player reload = %d, expected 0", p.Reload)
	}
	if len(w.Ships())+len(w.Bullets())+len(w.Explosions())+len(w.Debris()) != 0 {
		t.Error("collections should start empty")
	}
	if w.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", w.Phase())
	}
	if w.ResetTimer() != 124 {
		t.Errorf("ResetTimer() = %d, expected 2*62", w.ResetTimer())
	}
	if len(w.Stars()) != 512 {
		t.Errorf("len(Stars()) = %d, expected 512", len(w.Stars()))
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name         string
		actions      []core.Action
		wantX, wantY float64
	}{
		{"idle", nil, 100, 100},
		{"right", []core.Action{core.ActionRight}, 104, 100},
		{"left", []core.Action{core.ActionLeft}, 96, 100},
		{"up", []core.Action{core.ActionUp}, 100, 96},
		{"down", []core.Action{core.ActionDown}, 100, 104},
		{"left and right cancel", []core.Action{core.ActionLeft, core.ActionRight}, 100, 100},
		{"up and down cancel", []core.Action{core.ActionUp, core.ActionDown}, 100, 100},
		{"diagonal", []core.Action{core.ActionRight, core.ActionDown}, 104, 104},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			quiet(w)
			w.Tick(core.FrameOf(tc.actions...))

			p := w.Player()
			if p.X != tc.wantX || p.Y != tc.wantY {
				t.Errorf("player at (%f, %f), expected (%f, %f)", p.X, p.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestPlayerClampedToScreen(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"left edge", -10, 100, 0, 100},
		{"right edge", 1280, 100, 1280 - 48, 100},
		{"top edge", 100, -5, 100, 0},
		{"bottom edge", 100, 720, 100, 720 - 46},
		{"inside", 500, 300, 500, 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			quiet(w)
			w.player.X, w.player.Y = tc.x, tc.y
			w.Tick(core.NewInputFrame())

			p := w.Player()
			if p.X != tc.wantX || p.Y != tc.wantY {
				t.Errorf("player at (%f, %f), expected (%f, %f)", p.X, p.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestPlayerReloadCadence(t *testing.T) {
	w := newTestWorld(t)
	quiet(w)
	fire := core.FrameOf(core.ActionFire)

	var firedAt []int
	for i := 1; i <= 20; i++ {
		before := countSide(w.Bullets(), SidePlayer)
		w.Tick(fire)
		if countSide(w.Bullets(), SidePlayer) > before {
			firedAt = append(firedAt, i)
		}
		if w.player.Reload < 0 {
			t.Fatalf("reload went negative at tick %d", i)
		}
	}

	want := []int{1, 9, 17}
	if len(firedAt) != len(want) {
		t.Fatalf("fired at ticks %v, expected %v", firedAt, want)
	}
	for i := range want {
		if firedAt[i] != want[i] {
			t.Errorf("fired at ticks %v, expected %v", firedAt, want)
			break
		}
	}
}

func TestPlayerBulletSpawnPosition(t *testing.T) {
	w := newTestWorld(t)
	quiet(w)
	w.Tick(core.FrameOf(core.ActionFire))

	if len(w.Bullets()) != 1 {
		t.Fatalf("len(Bullets()) = %d, expected 1", len(w.Bullets()))
	}
	b := w.Bullets()[0]
	// Spawned at 100 + 0.8*48 - 0.5*22 = 127.4, then moved by 8 in the same tick.
	if math.Abs(b.X-135.4) > 1e-9 {
		t.Errorf("bullet X = %f, expected 135.4", b.X)
	}
	if b.Y != 100+23-5 {
		t.Errorf("bullet Y = %f, expected 118", b.Y)
	}
	if b.VX != 8 || b.Side != SidePlayer || b.Health != 1 {
		t.Errorf("unexpected bullet %+v", b)
	}
}

func TestDeadPlayerIsInert(t *testing.T) {
	w := newTestWorld(t)
	quiet(w)
	w.player.Health = 0

	w.Tick(core.FrameOf(core.ActionRight, core.ActionFire))

	if w.player.X != 100 {
		t.Errorf("dead player moved to %f", w.player.X)
	}
	if len(w.Bullets()) != 0 {
		t.Error("dead player fired")
	}
}

func TestFirstTickSpawnsEnemy(t *testing.T) {
	w := newTestWorld(t)
	w.Tick(core.NewInputFrame())

	if len(w.Ships()) != 1 {
		t.Fatalf("len(Ships()) = %d, expected 1 after the first tick", len(w.Ships()))
	}
	s := w.Ships()[0]
	if s.X != 1280 {
		t.Errorf("enemy X = %f, expected the right screen edge", s.X)
	}
	if s.Y < 0 || s.Y+float64(s.H) > 720 {
		t.Errorf("enemy Y = %f is not fully on screen", s.Y)
	}
	if s.VX < -5 || s.VX > -2 {
		t.Errorf("enemy VX = %f, expected in [-5, -2]", s.VX)
	}
	if s.Health != 1 || s.Reload != 0 || s.Side != SideEnemy {
		t.Errorf("unexpected enemy %+v", s)
	}
	if w.spawnTimer < 30 || w.spawnTimer >= 90 {
		t.Errorf("spawn timer = %d, expected in [30, 90)", w.spawnTimer)
	}
}

func TestSpawnTimerCadence(t *testing.T) {
	w := newTestWorld(t)
	w.Tick(core.NewInputFrame())
	wait := w.spawnTimer

	for i := 1; i < wait; i++ {
		w.Tick(core.NewInputFrame())
		if w.Stats().Spawned != 1 {
			t.Fatalf("second enemy spawned after %d ticks, expected %d", i, wait)
		}
	}
	w.Tick(core.NewInputFrame())
	if w.Stats().Spawned != 2 {
		t.Errorf("Spawned = %d after %d ticks, expected 2", w.Stats().Spawned, wait)
	}
}

func TestEnemyFiresWhenReloaded(t *testing.T) {
	w := newTestWorld(t)
	quiet(w)
	e := enemyAt(w, 800, 400)
	e.Reload = 0
	e.VX = -3
	w.ships.Add(e)

	w.Tick(core.NewInputFrame())

	if countSide(w.Bullets(), SideEnemy) != 1 {
		t.Fatalf("expected one enemy bullet, got %d", countSide(w.Bullets(), SideEnemy))
	}
	if w.Ships()[0].Reload != 100 {
		t.Errorf("enemy reload = %d, expected 100", w.Ships()[0].Reload)
	}
	b := w.Bullets()[0]
	if b.VX > -3-2 || b.VX < -3-8 {
		t.Errorf("enemy bullet VX = %f, expected in [-11, -5]", b.VX)
	}

	// The next shot comes after 100 decrements.
	for range 100 {
		w.Tick(core.NewInputFrame())
	}
	if w.Ships()[0].Reload != 0 {
		t.Fatalf("enemy reload = %d after 100 ticks, expected 0", w.Ships()[0].Reload)
	}
	w.Tick(core.NewInputFrame())
	if w.Ships()[0].Reload != 100 {
		t.Errorf("enemy reload = %d, expected a fresh 100 after firing", w.Ships()[0].Reload)
	}
	if last := w.bullets.Last(); last == nil || last.Side != SideEnemy || last.X < 400 {
		t.Errorf("expected a new enemy bullet next to the ship, got %+v", last)
	}
}

func TestShipRemovedOffScreen(t *testing.T) {
	w := newTestWorld(t)
	quiet(w)
	gone := enemyAt(w, -48, 400)
	gone.VX = -1
	edge := enemyAt(w, -47, 500)
	edge.VX = -1
	w.ships.Add(gone)
	w.ships.Add(edge)

	w.Tick(core.NewInputFrame())

	if len(w.Ships()) != 1 || w.Ships()[0].Y != 500 {
		t.Errorf("only the ship still touching the screen should remain, got %+v", w.Ships())
	}
}

func TestBulletRemovedOffScreen(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		keep bool
	}{
		{"past right edge", 1281, false},
		{"at right edge", 1280, true},
		{"past left edge", -23, false},
		{"at left edge", -22, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			quiet(w)
			w.bullets.Add(bulletAt(w, tc.x, 600, SidePlayer))

			w.Tick(core.NewInputFrame())

			if got := len(w.Bullets()) == 1; got != tc.keep {
				t.Errorf("bullet kept = %v, expected %v", got, tc.keep)
			}
		})
	}
}

func TestBulletDestroysShip(t *testing.T) {
	w := newTestWorld(t)
	quiet(w)
	w.ships.Add(enemyAt(w, 600, 400))
	w.bullets.Add(bulletAt(w, 610, 410, SidePlayer))

	w.Tick(core.NewInputFrame())

	if len(w.Bullets()) != 0 {
		t.Error("bullet should be spent on hit")
	}
	if len(w.Ships()) != 0 {
		t.Error("destroyed ship should be removed in the same tick")
	}
	if w.Stats().Kills != 1 {
		t.Errorf("Kills = %d, expected 1", w.Stats().Kills)
	}
	if len(w.Debris()) != 4 {
		t.Errorf("len(Debris()) = %d, expected 4", len(w.Debris()))
	}
}

func TestFriendlyBulletPassesThrough(t *testing.T) {
	w := newTestWorld(t)
	quiet(w)
	w.bullets.Add(bulletAt(w, 110, 110, SidePlayer))

	w.Tick(core.NewInputFrame())

	if w.player.Health != 3 {
		t.Error("player bullet should not hurt the player")
	}
	if len(w.Bullets()) != 1 {
		t.Error("player bullet should keep flying")
	}
}

func TestBulletHitsFirstShipOnly(t *testing.T) {
	w := newTestWorld(t)
	quiet(w)
	w.ships.Add(enemyAt(w, 600, 400))
	w.ships.Add(enemyAt(w, 605, 400))
	w.bullets.Add(bulletAt(w, 620, 410, SidePlayer))

	w.Tick(core.NewInputFrame())

	if len(w.Ships()) != 1 || w.Ships()[0].X != 605 {
		t.Errorf("only the first overlapping ship should die, got %+v", w.Ships())
	}
}

func TestEnemyBulletKillsPlayer(t *testing.T) {
	w := newTestWorld(t)
	quiet(w)
	w.player.Health = 1
	w.bullets.Add(bulletAt(w, 110, 110, SideEnemy))

	res := w.Tick(core.NewInputFrame())

	if !res.PlayerDied {
		t.Error("TickResult.PlayerDied should be set")
	}
	if res.Phase != PhaseDying {
		t.Errorf("Phase = %v, expected dying", res.Phase)
	}
	if w.Stats().Deaths != 1 {
		t.Errorf("Deaths = %d, expected 1", w.Stats().Deaths)
	}
	if len(w.Debris()) != 4 {
		t.Errorf("len(Debris()) = %d, expected 4", len(w.Debris()))
	}
}

func TestRamDamagesBoth(t *testing.T) {
	w := newTestWorld(t)
	quiet(w)
	w.ships.Add(enemyAt(w, 120, 110))
	w.ships.Add(enemyAt(w, 110, 100))

	w.Tick(core.NewInputFrame())

	if w.player.Health != 2 {
		t.Errorf("player health = %d, expected 2 (one ram per tick)", w.player.Health)
	}
	if len(w.Ships()) != 1 {
		t.Errorf("len(Ships()) = %d, expected 1", len(w.Ships()))
	}
	if w.Stats().Kills != 1 {
		t.Errorf("Kills = %d, expected 1", w.Stats().Kills)
	}
}

func TestBurstExactlyOnce(t *testing.T) {
	w := newTestWorld(t)
	e := enemyAt(w, 300, 300)

	if !w.damage(&e) {
		t.Fatal("first hit on a 1-health ship should destroy it")
	}
	if len(w.Explosions()) != 32 {
		t.Errorf("len(Explosions()) = %d, expected 32", len(w.Explosions()))
	}
	if len(w.Debris()) != 4 {
		t.Errorf("len(Debris()) = %d, expected 4", len(w.Debris()))
	}

	if w.damage(&e) {
		t.Error("hitting a dead ship should not destroy it again")
	}
	if e.Health != 0 {
		t.Errorf("health = %d, expected to stay at 0", e.Health)
	}
	if len(w.Explosions()) != 32 || len(w.Debris()) != 4 {
		t.Error("a dead ship must not burst twice")
	}
}

func TestDeadShipIsNotATarget(t *testing.T) {
	w := newTestWorld(t)
	s := enemyAt(w, 300, 300)
	s.Health = 0
	w.ships.Add(s)
	b := bulletAt(w, 310, 310, SidePlayer)

	if w.strike(&b) {
		t.Error("bullet should pass through a dead ship")
	}
	if b.Health != 1 {
		t.Error("bullet should not be spent on a dead ship")
	}
}

func TestGameOverResetsAfterGrace(t *testing.T) {
	w := newTestWorld(t)
	quiet(w)
	w.player.Health = 1
	w.bullets.Add(bulletAt(w, 110, 110, SideEnemy))

	res := w.Tick(core.NewInputFrame())
	if !res.PlayerDied {
		t.Fatal("player should die on the first tick")
	}

	// The grace countdown starts at 2*FPS and the reset happens once it
	// has gone negative.
	grace := 2 * w.fps
	for i := 1; i <= grace; i++ {
		if r := w.Tick(core.NewInputFrame()); r.WorldReset {
			t.Fatalf("world reset after %d ticks, expected %d", i, grace+1)
		}
	}
	res = w.Tick(core.NewInputFrame())
	if !res.WorldReset {
		t.Fatal("world should reset when the grace countdown goes negative")
	}
	if res.Phase != PhasePlaying {
		t.Errorf("Phase = %v after reset, expected playing", res.Phase)
	}

	p := w.Player()
	if p.Health != 3 || p.X != 100 || p.Y != 100 {
		t.Errorf("player not reinitialised: %+v", p)
	}
	if len(w.Ships())+len(w.Bullets())+len(w.Explosions())+len(w.Debris()) != 0 {
		t.Error("reset should empty every collection")
	}
	if w.ResetTimer() != grace {
		t.Errorf("ResetTimer() = %d, expected %d", w.ResetTimer(), grace)
	}
	if w.Stats().Resets != 1 {
		t.Errorf("Resets = %d, expected 1", w.Stats().Resets)
	}
}

func TestResetIdempotent(t *testing.T) {
	w := newTestWorld(t)
	fire := core.FrameOf(core.ActionFire, core.ActionDown)
	for range 300 {
		w.Tick(fire)
	}

	w.Reset()
	once := w.Snapshot()
	w.Reset()
	twice := w.Snapshot()

	if once.Hash() != twice.Hash() {
		t.Errorf("Reset twice differs from once: %d vs %d", once.Hash(), twice.Hash())
	}
	if len(twice.Ships) != 0 || twice.SpawnTimer != 0 {
		t.Errorf("reset state should have no ships and an expired spawn timer")
	}
}

func TestWorldDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 1500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%3 == 0 {
			inputs[i].Set(core.ActionFire)
		}
		if (i/40)%2 == 0 {
			inputs[i].Set(core.ActionDown)
		} else {
			inputs[i].Set(core.ActionUp)
		}
	}

	run := func(seed int64) uint64 {
		w := New(config.DefaultShooterConfig(), DefaultSprites(), seed)
		for _, in := range inputs {
			w.Tick(in)
		}
		return w.Snapshot().Hash()
	}

	if run(99) != run(99) {
		t.Error("same seed and inputs should give identical state")
	}
	if run(99) == run(100) {
		t.Error("different seeds should give different state")
	}
}

func TestStatsSurviveReset(t *testing.T) {
	w := newTestWorld(t)
	w.stats.Kills = 5
	w.Reset()
	if w.Stats().Kills != 5 {
		t.Error("Reset should not clear session stats")
	}
}
