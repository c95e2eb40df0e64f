package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/star-raid/internal/assets"
	"github.com/vovakirdan/star-raid/internal/core"
	"github.com/vovakirdan/star-raid/internal/sim"
)

// ImageRenderer draws sprites onto an ebiten image.
type ImageRenderer struct {
	lib    *assets.Library
	images map[string]*ebiten.Image
	dst    *ebiten.Image
}

// NewImageRenderer creates a renderer; GPU images are created on first use.
func NewImageRenderer(lib *assets.Library) *ImageRenderer {
	return &ImageRenderer{lib: lib, images: make(map[string]*ebiten.Image)}
}

func (r *ImageRenderer) image(id string) *ebiten.Image {
	if img, ok := r.images[id]; ok {
		return img
	}
	src := r.lib.Image(id)
	if src == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	r.images[id] = img
	return img
}

// drawOptions turns a modulation into ebiten draw options.
func drawOptions(x, y float64, mod sim.Modulation) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.RGBA{R: mod.Color.R, G: mod.Color.G, B: mod.Color.B, A: 255})
	op.ColorScale.ScaleAlpha(float32(core.Clamp(mod.Alpha, 0, 255)) / 255)
	if mod.Additive {
		op.Blend = ebiten.BlendLighter
	}
	return op
}

// DrawSprite draws a whole sprite.
func (r *ImageRenderer) DrawSprite(s sim.Sprite, x, y float64, mod sim.Modulation) {
	img := r.image(s.ID)
	if img == nil || r.dst == nil {
		return
	}
	r.dst.DrawImage(img, drawOptions(x, y, mod))
}

// DrawSpriteRegion draws the src part of a sprite.
func (r *ImageRenderer) DrawSpriteRegion(s sim.Sprite, src core.Rect, x, y float64, mod sim.Modulation) {
	img := r.image(s.ID)
	if img == nil || r.dst == nil || src.Empty() {
		return
	}
	r.dst.DrawImage(subImage(img, src), drawOptions(x, y, mod))
}

// DrawLine strokes a one pixel line.
func (r *ImageRenderer) DrawLine(x0, y0, x1, y1 float64, c core.Color, alpha int) {
	if r.dst == nil {
		return
	}
	clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(core.Clamp(alpha, 0, 255))} //#nosec G115 -- clamped
	vector.StrokeLine(r.dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, false)
}
