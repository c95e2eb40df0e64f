// Package replay drives the simulation headlessly with scripted input and
// irregular frame timing, recording state hashes that can be verified later.
package replay

import (
	"github.com/vovakirdan/star-raid/internal/core"
	"github.com/vovakirdan/star-raid/internal/sim"
)

// scriptSalt keeps the bot's stream apart from the world's own seed.
const scriptSalt = 0x0b07

// Script is a deterministic bot. It weaves up and down in runs of random
// length and holds fire most of the time.
type Script struct {
	rng     *sim.RNG
	dir     core.Action
	hold    int
	fireOff int
}

// NewScript creates a bot whose moves depend only on seed.
func NewScript(seed int64) *Script {
	return &Script{rng: sim.NewRNG(seed ^ scriptSalt), dir: core.ActionDown}
}

// Next returns the input for the next frame.
func (s *Script) Next() core.InputFrame {
	if s.hold <= 0 {
		switch s.rng.Intn(3) {
		case 0:
			s.dir = core.ActionUp
		case 1:
			s.dir = core.ActionDown
		default:
			s.dir = core.ActionNone
		}
		s.hold = 10 + s.rng.Intn(50)
	}
	s.hold--

	in := core.NewInputFrame()
	if s.dir != core.ActionNone {
		in.Set(s.dir)
	}
	if s.rng.Intn(8) == 0 {
		in.Set(core.ActionRight)
	} else if s.rng.Intn(8) == 0 {
		in.Set(core.ActionLeft)
	}

	if s.fireOff > 0 {
		s.fireOff--
	} else if s.rng.Intn(20) == 0 {
		s.fireOff = s.rng.Intn(15)
	} else {
		in.Set(core.ActionFire)
	}
	return in
}

// Deltas is a deterministic sequence of irregular frame durations in
// milliseconds, averaging roughly one display refresh.
type Deltas struct {
	rng *sim.RNG
	max int
}

// NewDeltas creates a frame-duration profile. maxMS bounds a single frame;
// zero-length frames are allowed.
func NewDeltas(seed int64, maxMS int) *Deltas {
	return &Deltas{rng: sim.NewRNG(seed), max: max(maxMS, 1)}
}

// Next returns the next frame duration.
func (d *Deltas) Next() uint64 {
	return uint64(d.rng.Intn(d.max + 1)) //#nosec G115 -- Intn is never negative
}
