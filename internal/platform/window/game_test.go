package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/star-raid/internal/assets"
	"github.com/vovakirdan/star-raid/internal/config"
	"github.com/vovakirdan/star-raid/internal/core"
	"github.com/vovakirdan/star-raid/internal/sim"
)

func TestSampleInput(t *testing.T) {
	tests := []struct {
		name string
		down []ebiten.Key
		want []core.Action
	}{
		{"nothing", nil, nil},
		{"wasd", []ebiten.Key{ebiten.KeyW, ebiten.KeyD}, []core.Action{core.ActionUp, core.ActionRight}},
		{"arrows", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowDown}, []core.Action{core.ActionLeft, core.ActionDown}},
		{"fire", []ebiten.Key{ebiten.KeyControlLeft}, []core.Action{core.ActionFire}},
	}

	all := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := sampleInput(func(k ebiten.Key) bool {
				for _, d := range tc.down {
					if d == k {
						return true
					}
				}
				return false
			})

			want := map[core.Action]bool{}
			for _, a := range tc.want {
				want[a] = true
			}
			for _, a := range all {
				if in.Has(a) != want[a] {
					t.Errorf("Has(%v) = %v, expected %v", a, in.Has(a), want[a])
				}
			}
		})
	}
}

func TestLayoutIsLogicalSize(t *testing.T) {
	lib, err := assets.Load("")
	if err != nil {
		t.Fatalf("assets.Load failed: %v", err)
	}
	w := sim.New(config.DefaultShooterConfig(), lib.Sprites(), 1)
	g := NewGame(sim.NewFrameLoop(w, &sim.ManualTime{}), lib, nil)

	gw, gh := g.Layout(1920, 1080)
	if gw != 1280 || gh != 720 {
		t.Errorf("Layout() = %dx%d, expected 1280x720", gw, gh)
	}
}

func TestDrawOptionsAdditive(t *testing.T) {
	op := drawOptions(10, 20, sim.Modulation{Color: core.ColorRed, Alpha: 128, Additive: true})
	if op.Blend != ebiten.BlendLighter {
		t.Error("additive modulation should use BlendLighter")
	}

	plain := drawOptions(0, 0, sim.Opaque)
	if plain.Blend == ebiten.BlendLighter {
		t.Error("opaque modulation should use the default blend")
	}
}
