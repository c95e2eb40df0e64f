package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-raid/internal/assets"
	"github.com/vovakirdan/star-raid/internal/config"
	"github.com/vovakirdan/star-raid/internal/core"
	"github.com/vovakirdan/star-raid/internal/sim"
)

// Model is the Bubble Tea model running the shooter in a terminal.
type Model struct {
	loop     *sim.FrameLoop
	screen   *core.Screen
	renderer *CellRenderer
	keys     *HeldKeys
	mapper   *KeyMapper
	logger   *log.Logger
	now      func() time.Time
	paused   bool
	quitting bool
}

// NewModel creates a model drawing loop's world at the given terminal size.
func NewModel(loop *sim.FrameLoop, lib *assets.Library, logger *log.Logger, width, height int) Model {
	cfg := loop.World.Config()
	screen := core.NewScreen(width, height)
	return Model{
		loop:     loop,
		screen:   screen,
		renderer: NewCellRenderer(screen, lib, cfg.Screen.Width, cfg.Screen.Height),
		keys:     NewHeldKeys(),
		mapper:   NewKeyMapper(),
		logger:   logger,
		now:      time.Now,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(frameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.mapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionPause:
		m.paused = !m.paused
		m.keys.Release()
		if !m.paused {
			// Time spent paused must not be simulated.
			m.loop.Clock.Resync()
		}
	case action != core.ActionNone && !m.paused:
		m.keys.Press(action, m.now())
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	cfg := m.loop.World.Config()
	m.screen.Resize(msg.Width, msg.Height)
	m.renderer.Resize(cfg.Screen.Width, cfg.Screen.Height)
	return m, nil
}

// handleFrame runs the ticks that are due and schedules the next frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, frameCmd(frameRate)
	}

	fr := m.loop.Frame(m.keys.Frame(now))
	if m.logger != nil {
		w := m.loop.World
		if fr.PlayerDied {
			m.logger.Info("player destroyed", "tick", w.TickCount(), "deaths", w.Stats().Deaths)
		}
		if fr.WorldReset {
			m.logger.Info("world reset", "tick", w.TickCount(), "resets", w.Stats().Resets)
		}
	}

	return m, frameCmd(frameRate)
}

// draw renders the world into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()
	m.loop.World.Draw(m.renderer)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorWhite)
	}
}

// saveScreenshot saves the current screen to a file and copies it to the
// clipboard.
func (m *Model) saveScreenshot() {
	m.draw()
	text := m.screen.String()

	dir := filepath.Join(config.DataDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logWarn("screenshot directory", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("starraid_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		m.logWarn("screenshot save", err)
		return
	}

	// Headless sessions have no clipboard; the file is enough.
	if err := clipboard.WriteAll(text); err != nil {
		m.logWarn("screenshot clipboard", err)
	}
	if m.logger != nil {
		m.logger.Info("screenshot saved", "path", path)
	}
}

func (m *Model) logWarn(what string, err error) {
	if m.logger != nil {
		m.logger.Warn(what+" failed", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}
