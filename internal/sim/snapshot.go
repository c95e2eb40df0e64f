package sim

import "math"

// Snapshot is a value copy of the world used for determinism checks and
// replay verification.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Player     Entity
	Ships      []Entity
	Bullets    []Entity
	Explosions []Explosion
	Debris     []Debris
	SpawnTimer int
	ResetTimer int
	RNGState   uint64
	StarState  uint64
	Stats      Stats
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:       w.tick,
		Phase:      w.Phase(),
		Player:     w.player,
		Ships:      append([]Entity(nil), w.ships.Items()...),
		Bullets:    append([]Entity(nil), w.bullets.Items()...),
		Explosions: append([]Explosion(nil), w.explosions.Items()...),
		Debris:     append([]Debris(nil), w.debris.Items()...),
		SpawnTimer: w.spawnTimer,
		ResetTimer: w.resetTimer,
		RNGState:   w.rng.State(),
		StarState:  w.stars.state(),
		Stats:      w.stats,
	}
}

// Hash returns a hash of the snapshot for quick comparison.
func (s Snapshot) Hash() uint64 {
	var h uint64 = 17
	mix := func(v uint64) { h = h*31 + v }
	mixInt := func(v int) { mix(uint64(v)) } //#nosec G115 -- hashing only
	mixF := func(v float64) { mix(math.Float64bits(v)) }
	mixEntity := func(e Entity) {
		mixF(e.X)
		mixF(e.Y)
		mixF(e.VX)
		mixF(e.VY)
		mixInt(e.Reload)
		mixInt(e.Health)
		mixInt(int(e.Side))
	}

	mix(s.Tick)
	mixInt(int(s.Phase))
	mixEntity(s.Player)

	mixInt(len(s.Ships))
	for _, e := range s.Ships {
		mixEntity(e)
	}
	mixInt(len(s.Bullets))
	for _, e := range s.Bullets {
		mixEntity(e)
	}
	mixInt(len(s.Explosions))
	for _, e := range s.Explosions {
		mixF(e.X)
		mixF(e.Y)
		mixInt(e.A)
	}
	mixInt(len(s.Debris))
	for _, d := range s.Debris {
		mixF(d.X)
		mixF(d.Y)
		mixInt(d.Life)
	}

	mixInt(s.SpawnTimer)
	mixInt(s.ResetTimer)
	mix(s.RNGState)
	mix(s.StarState)
	mixInt(s.Stats.Kills)
	mixInt(s.Stats.Deaths)
	mixInt(s.Stats.Resets)
	return h
}
