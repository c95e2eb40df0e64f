package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/star-raid/internal/config"
	"github.com/vovakirdan/star-raid/internal/sim"
)

// ErrDiverged is returned by Verify when a re-run does not reproduce a
// recorded hash.
var ErrDiverged = errors.New("replay: run diverged")

// Options selects what to simulate.
type Options struct {
	Seed            int64
	Ticks           int
	CheckpointEvery int // Record a hash every N ticks; 0 records only the end
	MaxFrameMS      int // Upper bound of a random frame duration; 0 uses 40
}

// Checkpoint is the state hash at the end of a tick.
type Checkpoint struct {
	Tick uint64
	Hash uint64
}

// Result is the trace of one headless run.
type Result struct {
	Seed        int64
	Ticks       uint64
	FinalHash   uint64
	Checkpoints []Checkpoint
	Stats       sim.Stats
	Frames      int
}

// Run simulates opts.Ticks ticks. Frames have random durations, so each
// frame runs zero or more ticks with the same bot input, exactly as a
// frontend would.
func Run(cfg config.ShooterConfig, sprites sim.Sprites, opts Options) Result {
	maxFrame := opts.MaxFrameMS
	if maxFrame <= 0 {
		maxFrame = 40
	}
	target := uint64(max(opts.Ticks, 0)) //#nosec G115 -- clamped

	src := &sim.ManualTime{}
	w := sim.New(cfg, sprites, opts.Seed)
	clock := sim.NewClock(src, cfg.Timing.StepMS)
	bot := NewScript(opts.Seed)
	deltas := NewDeltas(opts.Seed, maxFrame)

	res := Result{Seed: opts.Seed}
	for w.TickCount() < target {
		src.Advance(deltas.Next())
		in := bot.Next()
		res.Frames++

		n := clock.Advance()
		for range n {
			if w.TickCount() >= target {
				break
			}
			r := w.Tick(in)
			if opts.CheckpointEvery > 0 && r.Tick%uint64(opts.CheckpointEvery) == 0 { //#nosec G115 -- positive
				res.Checkpoints = append(res.Checkpoints, Checkpoint{Tick: r.Tick, Hash: w.Snapshot().Hash()})
			}
		}
	}

	res.Ticks = w.TickCount()
	res.FinalHash = w.Snapshot().Hash()
	res.Stats = w.Stats()
	return res
}

// Verify re-runs a recorded trace and reports the first tick whose hash
// does not match.
func Verify(cfg config.ShooterConfig, sprites sim.Sprites, opts Options, want Result) error {
	got := Run(cfg, sprites, opts)

	if len(got.Checkpoints) != len(want.Checkpoints) {
		return fmt.Errorf("%w: %d checkpoints, recorded %d", ErrDiverged, len(got.Checkpoints), len(want.Checkpoints))
	}
	for i, cp := range want.Checkpoints {
		if got.Checkpoints[i] != cp {
			return fmt.Errorf("%w: at tick %d hash %x, recorded %x", ErrDiverged, cp.Tick, got.Checkpoints[i].Hash, cp.Hash)
		}
	}
	if got.FinalHash != want.FinalHash {
		return fmt.Errorf("%w: final hash %x, recorded %x", ErrDiverged, got.FinalHash, want.FinalHash)
	}
	return nil
}
