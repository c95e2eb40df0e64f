package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-raid/internal/core"
)

// holdWindow is how long a key counts as held after its last press event.
// Terminals report no key releases, only repeats, so a held key is one
// that keeps repeating.
const holdWindow = 180 * time.Millisecond

// firstHoldWindow covers the delay before the terminal starts repeating.
const firstHoldWindow = 300 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "z", "f":
		return core.ActionFire, false
	case "p", "esc":
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

type pressState struct {
	first time.Time
	last  time.Time
}

// HeldKeys turns a stream of key press events into a per-frame set of held
// actions.
type HeldKeys struct {
	pressed map[core.Action]pressState
}

// NewHeldKeys creates an empty tracker.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{pressed: make(map[core.Action]pressState)}
}

// Press records a press or repeat of action at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	st, ok := h.pressed[a]
	if !ok || now.Sub(st.last) > h.window(st) {
		st.first = now
	}
	st.last = now
	h.pressed[a] = st
}

// Frame returns the actions held at now and forgets expired ones.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, st := range h.pressed {
		if now.Sub(st.last) > h.window(st) {
			delete(h.pressed, a)
			continue
		}
		in.Set(a)
	}
	return in
}

// Release forgets every held key, e.g. when pausing.
func (h *HeldKeys) Release() {
	clear(h.pressed)
}

func (h *HeldKeys) window(st pressState) time.Duration {
	// A single press has not started repeating yet.
	if st.last.Equal(st.first) {
		return firstHoldWindow
	}
	return holdWindow
}
