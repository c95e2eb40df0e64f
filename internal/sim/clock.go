package sim

import (
	"sync"
	"time"

	"github.com/vovakirdan/star-raid/internal/core"
)

// TimeSource supplies monotonic milliseconds to a Clock.
type TimeSource interface {
	NowMillis() uint64
}

// SystemTime is the wall clock, measured from its creation.
type SystemTime struct {
	start time.Time
}

// NewSystemTime creates a SystemTime starting at zero now.
func NewSystemTime() *SystemTime {
	return &SystemTime{start: time.Now()}
}

// NowMillis returns the milliseconds elapsed since creation.
func (s *SystemTime) NowMillis() uint64 {
	return uint64(time.Since(s.start).Milliseconds()) //#nosec G115 -- monotonic, never negative
}

// ManualTime is a TimeSource moved only by explicit calls.
type ManualTime struct {
	mu  sync.Mutex
	now uint64
}

// NowMillis returns the current manual time.
func (m *ManualTime) NowMillis() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves time forward by ms.
func (m *ManualTime) Advance(ms uint64) {
	m.mu.Lock()
	m.now += ms
	m.mu.Unlock()
}

// Set jumps to an absolute time.
func (m *ManualTime) Set(ms uint64) {
	m.mu.Lock()
	m.now = ms
	m.mu.Unlock()
}

// Clock turns irregular real time into a whole number of fixed steps.
// Leftover time is kept in the accumulator for the next frame.
type Clock struct {
	src         TimeSource
	step        uint64
	accumulator uint64
	prev        uint64
}

// NewClock creates a clock that emits one tick per stepMS of real time.
func NewClock(src TimeSource, stepMS int) *Clock {
	return &Clock{
		src:  src,
		step: uint64(max(stepMS, 1)), //#nosec G115 -- clamped positive
		prev: src.NowMillis(),
	}
}

// Advance samples the time source and returns how many ticks are due.
func (c *Clock) Advance() int {
	return c.AdvanceTo(c.src.NowMillis())
}

// AdvanceTo accounts for time up to now and returns how many ticks are due.
// A tick is due only while strictly more than one step is accumulated.
func (c *Clock) AdvanceTo(now uint64) int {
	if now > c.prev {
		c.accumulator += now - c.prev
	}
	c.prev = now

	n := 0
	for c.accumulator > c.step {
		c.accumulator -= c.step
		n++
	}
	return n
}

// Resync forgets time elapsed since the last sample, e.g. after a pause.
func (c *Clock) Resync() {
	c.prev = c.src.NowMillis()
}

// Accumulator returns the time carried into the next frame.
func (c *Clock) Accumulator() uint64 { return c.accumulator }

// FrameResult summarises the ticks run for one rendered frame.
type FrameResult struct {
	Ticks      int
	PlayerDied bool
	WorldReset bool
	Last       TickResult
}

// FrameLoop couples a world to a clock.
type FrameLoop struct {
	World *World
	Clock *Clock
}

// NewFrameLoop creates a loop stepping w at its configured rate.
func NewFrameLoop(w *World, src TimeSource) *FrameLoop {
	return &FrameLoop{World: w, Clock: NewClock(src, w.cfg.Timing.StepMS)}
}

// Frame runs every tick that is due. All of them see the same input.
func (l *FrameLoop) Frame(in core.InputFrame) FrameResult {
	var fr FrameResult
	n := l.Clock.Advance()
	for range n {
		r := l.World.Tick(in)
		fr.PlayerDied = fr.PlayerDied || r.PlayerDied
		fr.WorldReset = fr.WorldReset || r.WorldReset
		fr.Last = r
	}
	fr.Ticks = n
	return fr
}
