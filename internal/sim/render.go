package sim

import "github.com/vovakirdan/star-raid/internal/core"

// Modulation tints a sprite draw.
type Modulation struct {
	Color    core.Color // Multiplied into the sprite
	Alpha    int        // 0..255
	Additive bool       // Add to the destination instead of blending over it
}

// Opaque is the neutral modulation.
var Opaque = Modulation{Color: core.ColorWhite, Alpha: 255}

// Renderer is implemented by frontends. Coordinates are in world pixels.
type Renderer interface {
	DrawSprite(s Sprite, x, y float64, mod Modulation)
	DrawSpriteRegion(s Sprite, src core.Rect, x, y float64, mod Modulation)
	DrawLine(x0, y0, x1, y1 float64, c core.Color, alpha int)
}

// Draw emits the scene back to front: stars, ships, the player if alive,
// bullets, debris, then additive explosions.
func (w *World) Draw(r Renderer) {
	for _, s := range w.stars.Stars() {
		x, y := float64(s.X), float64(s.Y)
		r.DrawLine(x, y, x+float64(s.W), y, core.ColorGray, s.Alpha())
	}

	for _, s := range w.ships.Items() {
		r.DrawSprite(s.Sprite, s.X, s.Y, Opaque)
	}

	if w.player.Alive() {
		r.DrawSprite(w.player.Sprite, w.player.X, w.player.Y, Opaque)
	}

	for _, b := range w.bullets.Items() {
		r.DrawSprite(b.Sprite, b.X, b.Y, Opaque)
	}

	for _, d := range w.debris.Items() {
		mod := Opaque
		mod.Alpha = core.Clamp(d.Life, 0, 255)
		r.DrawSpriteRegion(d.Sprite, d.Src, d.X, d.Y, mod)
	}

	for _, e := range w.explosions.Items() {
		r.DrawSprite(w.sprites.Explosion, e.X, e.Y, Modulation{
			Color:    e.Color,
			Alpha:    core.Clamp(e.A, 0, 255),
			Additive: true,
		})
	}
}
