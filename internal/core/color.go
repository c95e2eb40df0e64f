package core

import "fmt"

// Color is a 24-bit foreground color for a screen cell.
type Color struct {
	R, G, B uint8
}

// Predefined colors for game elements.
var (
	ColorDefault = Color{}
	ColorRed     = Color{R: 255}
	ColorOrange  = Color{R: 255, G: 128}
	ColorYellow  = Color{R: 255, G: 255}
	ColorWhite   = Color{R: 255, G: 255, B: 255}
	ColorGray    = Color{R: 120, G: 120, B: 120}
	ColorCyan    = Color{G: 200, B: 255}
	ColorMagenta = Color{R: 220, G: 60, B: 220}
)

// RGB creates a color from integer channels, clamping each to [0, 255].
func RGB(r, g, b int) Color {
	return Color{R: channel(r), G: channel(g), B: channel(b)}
}

// Scale multiplies every channel by alpha/255, modelling a fade over black.
func (c Color) Scale(alpha int) Color {
	a := Clamp(alpha, 0, 255)
	return Color{
		R: uint8(int(c.R) * a / 255), //#nosec G115 -- result is within [0, 255]
		G: uint8(int(c.G) * a / 255), //#nosec G115
		B: uint8(int(c.B) * a / 255), //#nosec G115
	}
}

// Add combines two colors additively, saturating at white.
func (c Color) Add(other Color) Color {
	return RGB(int(c.R)+int(other.R), int(c.G)+int(other.G), int(c.B)+int(other.B))
}

// Modulate multiplies two colors channel by channel.
func (c Color) Modulate(other Color) Color {
	return Color{
		R: uint8(int(c.R) * int(other.R) / 255), //#nosec G115
		G: uint8(int(c.G) * int(other.G) / 255), //#nosec G115
		B: uint8(int(c.B) * int(other.B) / 255), //#nosec G115
	}
}

// IsBlack reports whether all channels are zero.
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Hex returns the color in #rrggbb notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func channel(v int) uint8 {
	return uint8(Clamp(v, 0, 255)) //#nosec G115 -- clamped
}
