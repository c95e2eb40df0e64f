package sim

import "github.com/vovakirdan/star-raid/internal/core"

// Side is the faction tag that decides who can hit whom.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "enemy"
}

// Entity is a ship or a bullet.
type Entity struct {
	X, Y   float64 // Top-left position
	VX, VY float64 // Velocity per tick
	W, H   int     // Size from the sprite
	Reload int     // Ticks until the next shot
	Speed  float64 // Movement scalar (player only)
	Health int     // Reaching 0 marks the entity for removal
	Side   Side
	Sprite Sprite
}

// Box returns the entity's collision box.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Alive reports whether the entity still has health.
func (e *Entity) Alive() bool {
	return e.Health > 0
}

// Move integrates position by velocity.
func (e *Entity) Move() {
	e.X += e.VX
	e.Y += e.VY
}

// takeHit removes one point of health. Health never drops below zero, and
// the return value is true only for the hit that brought it to exactly zero.
func (e *Entity) takeHit() bool {
	if e.Health <= 0 {
		return false
	}
	e.Health--
	return e.Health == 0
}

// Hostile reports whether a can damage b.
func Hostile(a, b *Entity) bool {
	return a.Side != b.Side
}
