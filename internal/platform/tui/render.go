package tui

import (
	"image"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-raid/internal/assets"
	"github.com/vovakirdan/star-raid/internal/core"
	"github.com/vovakirdan/star-raid/internal/sim"
)

// glyphs gives each sprite a terminal character.
var glyphs = map[string]rune{
	sim.SpritePlayer:       '>',
	sim.SpriteEnemy:        '<',
	sim.SpritePlayerBullet: '-',
	sim.SpriteEnemyBullet:  'o',
	sim.SpriteExplosion:    '*',
}

// CellRenderer draws the world into a character Screen, scaling world
// pixels down to terminal cells.
type CellRenderer struct {
	screen *core.Screen
	sx, sy float64 // World pixels per cell
	tints  map[string]core.Color
}

// NewCellRenderer creates a renderer for a world of worldW x worldH pixels.
// Sprite colors are sampled from the library's images.
func NewCellRenderer(screen *core.Screen, lib *assets.Library, worldW, worldH int) *CellRenderer {
	r := &CellRenderer{screen: screen, tints: make(map[string]core.Color)}
	for _, s := range lib.Sprites().All() {
		r.tints[s.ID] = averageColor(lib.Image(s.ID))
	}
	r.Resize(worldW, worldH)
	return r
}

// Resize recomputes the scale after the screen changed size.
func (r *CellRenderer) Resize(worldW, worldH int) {
	r.sx = float64(worldW) / float64(max(r.screen.Width(), 1))
	r.sy = float64(worldH) / float64(max(r.screen.Height(), 1))
}

func (r *CellRenderer) cell(x, y float64) (int, int) {
	return int(math.Floor(x / r.sx)), int(math.Floor(y / r.sy))
}

// DrawSprite fills the cells a sprite covers. Additive sprites are reduced
// to their centre cell so overlapping particles brighten it.
func (r *CellRenderer) DrawSprite(s sim.Sprite, x, y float64, mod sim.Modulation) {
	glyph, ok := glyphs[s.ID]
	if !ok {
		glyph = '#'
	}
	c := r.tints[s.ID].Modulate(mod.Color).Scale(mod.Alpha)

	if mod.Additive {
		cx, cy := r.cell(x+float64(s.W)/2, y+float64(s.H)/2)
		r.screen.Blend(cx, cy, glyph, c.Scale(96))
		return
	}

	x0, y0 := r.cell(x, y)
	x1, y1 := r.cell(x+float64(s.W)-1, y+float64(s.H)-1)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			r.screen.Set(cx, cy, glyph, c)
		}
	}
}

// DrawSpriteRegion draws a fragment as a single faded cell.
func (r *CellRenderer) DrawSpriteRegion(s sim.Sprite, src core.Rect, x, y float64, mod sim.Modulation) {
	cx, cy := r.cell(x, y)
	r.screen.Set(cx, cy, '\'', r.tints[s.ID].Scale(mod.Alpha))
}

// DrawLine draws a horizontal star streak.
func (r *CellRenderer) DrawLine(x0, y0, x1, y1 float64, c core.Color, alpha int) {
	a, row := r.cell(x0, y0)
	b, _ := r.cell(x1, y1)
	for cx := a; cx <= b; cx++ {
		r.screen.Set(cx, row, '.', c.Scale(alpha))
	}
}

// averageColor returns the mean color of the opaque pixels of img.
func averageColor(img image.Image) core.Color {
	if img == nil {
		return core.ColorWhite
	}
	var rs, gs, bs, n int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			if ca < 0x8000 {
				continue
			}
			// Undo premultiplication
			rs += int(cr * 0xff / ca)
			gs += int(cg * 0xff / ca)
			bs += int(cb * 0xff / ca)
			n++
		}
	}
	if n == 0 {
		return core.ColorWhite
	}
	return core.RGB(rs/n, gs/n, bs/n)
}

// styleCache maps colors to lipgloss styles as they are first seen.
var styleCache = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := styleCache[c]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	styleCache[c] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
