// Package window provides the desktop frontend built on ebiten. It draws
// the real sprites at full resolution with additive explosions.
package window

import (
	"errors"
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/star-raid/internal/assets"
	"github.com/vovakirdan/star-raid/internal/core"
	"github.com/vovakirdan/star-raid/internal/registry"
	"github.com/vovakirdan/star-raid/internal/sim"
)

func init() {
	registry.Register("window", func() registry.Frontend { return &Frontend{} })
}

// keyBindings lists the keys that hold each action.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionFire:  {ebiten.KeySpace, ebiten.KeyControlLeft, ebiten.KeyControlRight},
}

// sampleInput builds an input frame from the keys currently down.
func sampleInput(pressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for action, keys := range keyBindings {
		for _, k := range keys {
			if pressed(k) {
				in.Set(action)
				break
			}
		}
	}
	return in
}

// Game adapts a FrameLoop to ebiten's game interface.
type Game struct {
	loop     *sim.FrameLoop
	renderer *ImageRenderer
	logger   *log.Logger
	paused   bool
}

// NewGame creates a game drawing with the library's images.
func NewGame(loop *sim.FrameLoop, lib *assets.Library, logger *log.Logger) *Game {
	return &Game{
		loop:     loop,
		renderer: NewImageRenderer(lib),
		logger:   logger,
	}
}

// Update samples the keyboard once and runs every tick that is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		if !g.paused {
			g.loop.Clock.Resync()
		}
	}
	if g.paused {
		return nil
	}

	fr := g.loop.Frame(sampleInput(ebiten.IsKeyPressed))
	if g.logger != nil {
		w := g.loop.World
		if fr.PlayerDied {
			g.logger.Info("player destroyed", "tick", w.TickCount(), "deaths", w.Stats().Deaths)
		}
		if fr.WorldReset {
			g.logger.Info("world reset", "tick", w.TickCount(), "resets", w.Stats().Resets)
		}
	}
	return nil
}

// Draw renders the world.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.dst = screen
	g.loop.World.Draw(g.renderer)
	g.renderer.dst = nil
}

// Layout keeps the logical playfield size regardless of window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.loop.World.Config()
	return cfg.Screen.Width, cfg.Screen.Height
}

// Frontend plays the game in a desktop window.
type Frontend struct{}

// ID returns the frontend identifier.
func (f *Frontend) ID() string { return "window" }

// Title returns the display name.
func (f *Frontend) Title() string { return "Desktop window" }

// Run opens the window and plays until it is closed.
func (f *Frontend) Run(s registry.Session) error {
	world := sim.New(s.Config, s.Assets.Sprites(), s.Seed)
	loop := sim.NewFrameLoop(world, sim.NewSystemTime())

	ebiten.SetWindowTitle("Star Raid")
	ebiten.SetWindowSize(s.Config.Screen.Width, s.Config.Screen.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if s.Logger != nil {
		s.Logger.Info("session started", "frontend", f.ID(), "seed", s.Seed)
	}
	err := ebiten.RunGame(NewGame(loop, s.Assets, s.Logger))
	if s.Logger != nil {
		st := world.Stats()
		s.Logger.Info("session ended", "ticks", world.TickCount(), "kills", st.Kills, "deaths", st.Deaths, "resets", st.Resets)
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// subImage cuts src out of img.
func subImage(img *ebiten.Image, src core.Rect) *ebiten.Image {
	r := image.Rect(src.X, src.Y, src.Right(), src.Bottom())
	sub, _ := img.SubImage(r).(*ebiten.Image)
	return sub
}
