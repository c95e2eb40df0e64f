package assets

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/vovakirdan/star-raid/internal/sim"
)

type point struct{ x, y float32 }

// Generate rasterises stand-in art for a sprite at its default size.
func Generate(s sim.Sprite) image.Image {
	w, h := float32(s.W), float32(s.H)
	img := image.NewRGBA(image.Rect(0, 0, s.W, s.H))

	switch s.ID {
	case sim.SpritePlayer:
		// Arrow pointing right with a notched tail.
		fill(img, color.RGBA{R: 80, G: 200, B: 255, A: 255},
			point{0, 0}, point{w, h / 2}, point{0, h}, point{w / 4, h / 2})
		fill(img, color.RGBA{R: 255, G: 255, B: 255, A: 255},
			point{w / 2, h/2 - 3}, point{w/2 + 8, h / 2}, point{w / 2, h/2 + 3})
	case sim.SpriteEnemy:
		// Arrow pointing left.
		fill(img, color.RGBA{R: 230, G: 60, B: 90, A: 255},
			point{w, 0}, point{0, h / 2}, point{w, h}, point{w * 3 / 4, h / 2})
		fill(img, color.RGBA{R: 255, G: 220, B: 0, A: 255},
			point{w / 2, h/2 - 3}, point{w/2 - 8, h / 2}, point{w / 2, h/2 + 3})
	case sim.SpritePlayerBullet:
		fill(img, color.RGBA{R: 120, G: 255, B: 120, A: 255},
			point{0, h / 4}, point{w - h/2, h / 4}, point{w, h / 2}, point{w - h/2, h * 3 / 4}, point{0, h * 3 / 4})
	case sim.SpriteEnemyBullet:
		fill(img, color.RGBA{R: 255, G: 140, B: 40, A: 255},
			point{w / 2, 0}, point{w, h / 2}, point{w / 2, h}, point{0, h / 2})
	default:
		// White disc; the game tints it.
		fill(img, color.RGBA{R: 255, G: 255, B: 255, A: 255}, disc(w/2, h/2, min(w, h)/2, 24)...)
	}
	return img
}

// fill rasterises a closed polygon onto dst.
func fill(dst *image.RGBA, c color.Color, pts ...point) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(pts[0].x, pts[0].y)
	for _, p := range pts[1:] {
		z.LineTo(p.x, p.y)
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func disc(cx, cy, r float32, n int) []point {
	pts := make([]point, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = point{cx + r*float32(math.Cos(a)), cy + r*float32(math.Sin(a))}
	}
	return pts
}
