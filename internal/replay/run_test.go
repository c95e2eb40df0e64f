package replay

import (
	"errors"
	"testing"

	"github.com/vovakirdan/star-raid/internal/config"
	"github.com/vovakirdan/star-raid/internal/core"
	"github.com/vovakirdan/star-raid/internal/sim"
)

func TestRunStopsAtTarget(t *testing.T) {
	res := Run(config.DefaultShooterConfig(), sim.DefaultSprites(), Options{Seed: 1, Ticks: 500, CheckpointEvery: 100})

	if res.Ticks != 500 {
		t.Errorf("Ticks = %d, expected 500", res.Ticks)
	}
	if len(res.Checkpoints) != 5 {
		t.Fatalf("len(Checkpoints) = %d, expected 5", len(res.Checkpoints))
	}
	for i, cp := range res.Checkpoints {
		if cp.Tick != uint64(i+1)*100 {
			t.Errorf("checkpoint %d at tick %d, expected %d", i, cp.Tick, (i+1)*100)
		}
	}
	if res.Checkpoints[4].Hash != res.FinalHash {
		t.Error("last checkpoint should equal the final hash")
	}
	if res.Frames == 0 {
		t.Error("Frames should be counted")
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	opts := Options{Seed: 77, Ticks: 2000, CheckpointEvery: 250}

	a := Run(cfg, sim.DefaultSprites(), opts)
	b := Run(cfg, sim.DefaultSprites(), opts)

	if a.FinalHash != b.FinalHash {
		t.Errorf("same options produced different hashes: %x vs %x", a.FinalHash, b.FinalHash)
	}
	if a.Stats != b.Stats {
		t.Errorf("same options produced different stats: %+v vs %+v", a.Stats, b.Stats)
	}

	c := Run(cfg, sim.DefaultSprites(), Options{Seed: 78, Ticks: 2000})
	if a.FinalHash == c.FinalHash {
		t.Error("different seeds should diverge")
	}
}

func TestVerify(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	opts := Options{Seed: 5, Ticks: 600, CheckpointEvery: 60}
	rec := Run(cfg, sim.DefaultSprites(), opts)

	if err := Verify(cfg, sim.DefaultSprites(), opts, rec); err != nil {
		t.Fatalf("Verify() of an untouched record failed: %v", err)
	}

	tampered := rec
	tampered.Checkpoints = append([]Checkpoint(nil), rec.Checkpoints...)
	tampered.Checkpoints[3].Hash ^= 1
	err := Verify(cfg, sim.DefaultSprites(), opts, tampered)
	if !errors.Is(err, ErrDiverged) {
		t.Errorf("Verify() of a tampered record = %v, expected ErrDiverged", err)
	}

	changed := cfg
	changed.Enemy.Reload = 50
	if err := Verify(changed, sim.DefaultSprites(), opts, rec); !errors.Is(err, ErrDiverged) {
		t.Errorf("Verify() under a different config = %v, expected ErrDiverged", err)
	}
}

func TestScriptDeterministic(t *testing.T) {
	a, b := NewScript(9), NewScript(9)
	fires := 0
	for i := range 500 {
		ia, ib := a.Next(), b.Next()
		for _, act := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire} {
			if ia.Has(act) != ib.Has(act) {
				t.Fatalf("frame %d: scripts disagree on %v", i, act)
			}
		}
		if ia.Has(core.ActionUp) && ia.Has(core.ActionDown) {
			t.Fatalf("frame %d: bot holds up and down", i)
		}
		if ia.Has(core.ActionFire) {
			fires++
		}
	}
	if fires == 0 {
		t.Error("bot never fired")
	}
}

func TestDeltasBounded(t *testing.T) {
	d := NewDeltas(3, 40)
	var sum uint64
	for range 1000 {
		v := d.Next()
		if v > 40 {
			t.Fatalf("delta %d exceeds 40", v)
		}
		sum += v
	}
	if sum == 0 {
		t.Error("deltas should advance time")
	}
}
