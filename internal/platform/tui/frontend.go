package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/star-raid/internal/registry"
	"github.com/vovakirdan/star-raid/internal/sim"
)

func init() {
	registry.Register("tui", func() registry.Frontend { return &Frontend{} })
}

// Frontend plays the game in the terminal.
type Frontend struct{}

// ID returns the frontend identifier.
func (f *Frontend) ID() string { return "tui" }

// Title returns the display name.
func (f *Frontend) Title() string { return "Terminal" }

// Run plays until the user quits.
func (f *Frontend) Run(s registry.Session) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		width, height = w, h
	}

	world := sim.New(s.Config, s.Assets.Sprites(), s.Seed)
	loop := sim.NewFrameLoop(world, sim.NewSystemTime())
	model := NewModel(loop, s.Assets, s.Logger, width, height)

	start := time.Now()
	if s.Logger != nil {
		s.Logger.Info("session started", "frontend", f.ID(), "seed", s.Seed, "size", fmt.Sprintf("%dx%d", width, height))
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	if s.Logger != nil {
		st := world.Stats()
		s.Logger.Info("session ended",
			"ticks", world.TickCount(),
			"kills", st.Kills,
			"deaths", st.Deaths,
			"resets", st.Resets,
			"duration", time.Since(start).Round(time.Second),
		)
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
