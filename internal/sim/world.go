// Package sim implements the shooter simulation: a player ship, scrolling
// enemies, bullets and death effects advanced in fixed time steps.
// It is a pure model with no dependencies on any frontend.
package sim

import (
	"github.com/vovakirdan/star-raid/internal/config"
	"github.com/vovakirdan/star-raid/internal/core"
)

// starSeedSalt decorrelates the starfield stream from the combat stream.
const starSeedSalt = 0x5eed5eed

// Phase is the coarse game state.
type Phase int

const (
	PhasePlaying Phase = iota // Player alive
	PhaseDying                // Player dead, waiting for the reset timer
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhasePlaying {
		return "playing"
	}
	return "dying"
}

// Stats are session counters. They survive resets.
type Stats struct {
	Kills   int
	Deaths  int
	Resets  int
	Spawned int
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Tick       uint64
	Phase      Phase
	PlayerDied bool
	WorldReset bool
}

// World owns every piece of simulation state.
type World struct {
	cfg     config.ShooterConfig
	sprites Sprites
	fps     int
	seed    int64
	rng     *RNG

	player     Entity
	ships      Pool[Entity]
	bullets    Pool[Entity]
	explosions Pool[Explosion]
	debris     Pool[Debris]
	stars      *Starfield

	spawnTimer int
	resetTimer int
	tick       uint64
	stats      Stats
}

// New creates a world in its freshly reset state.
func New(cfg config.ShooterConfig, sprites Sprites, seed int64) *World {
	w := &World{
		cfg:     cfg,
		sprites: sprites,
		fps:     cfg.TickRate(),
		seed:    seed,
		rng:     NewRNG(seed),
	}
	w.stars = NewStarfield(cfg.Starfield.Stars, cfg.Screen.Width, cfg.Screen.Height, seed^starSeedSalt)
	w.Reset()
	return w
}

// Reset clears all entities and effects and puts a fresh player at the
// start position. Calling it twice in a row yields the same state as once.
func (w *World) Reset() {
	w.ships.Clear()
	w.bullets.Clear()
	w.explosions.Clear()
	w.debris.Clear()

	pc := w.cfg.Player
	sp := w.sprites.Player
	w.player = Entity{
		X:      pc.StartX,
		Y:      pc.StartY,
		W:      sp.W,
		H:      sp.H,
		Speed:  pc.Speed,
		Health: pc.Health,
		Side:   SidePlayer,
		Sprite: sp,
	}

	w.stars.Reset()
	w.spawnTimer = 0
	w.resetTimer = w.fps * 2
}

// Tick advances the simulation by one fixed step.
func (w *World) Tick(in core.InputFrame) TickResult {
	w.tick++
	wasAlive := w.player.Alive()

	w.updatePlayer(in)
	w.updateShips()
	w.updateBullets()
	w.reapShips()
	w.spawnEnemies()
	w.updateExplosions()
	w.updateDebris()
	w.stars.Update()

	res := TickResult{
		Tick:       w.tick,
		PlayerDied: wasAlive && !w.player.Alive(),
	}

	if !w.player.Alive() {
		if w.resetTimer < 0 {
			w.Reset()
			w.stats.Resets++
			res.WorldReset = true
		} else {
			w.resetTimer--
		}
	}

	res.Phase = w.Phase()
	return res
}

// Phase reports whether the player is alive.
func (w *World) Phase() Phase {
	if w.player.Alive() {
		return PhasePlaying
	}
	return PhaseDying
}

// Player returns a copy of the player entity.
func (w *World) Player() Entity { return w.player }

// Ships returns the live enemy ships in spawn order.
func (w *World) Ships() []Entity { return w.ships.Items() }

// Bullets returns the live bullets in fire order.
func (w *World) Bullets() []Entity { return w.bullets.Items() }

// Explosions returns the live explosion particles.
func (w *World) Explosions() []Explosion { return w.explosions.Items() }

// Debris returns the live debris fragments.
func (w *World) Debris() []Debris { return w.debris.Items() }

// Stars returns the background stars.
func (w *World) Stars() []Star { return w.stars.Stars() }

// Stats returns the session counters.
func (w *World) Stats() Stats { return w.stats }

// TickCount returns the number of ticks run since creation.
func (w *World) TickCount() uint64 { return w.tick }

// Seed returns the seed the world was created with.
func (w *World) Seed() int64 { return w.seed }

// Config returns the configuration the world runs with.
func (w *World) Config() config.ShooterConfig { return w.cfg }

// ResetTimer returns the remaining grace ticks before a reset.
func (w *World) ResetTimer() int { return w.resetTimer }
