package sim

// Star is one scrolling background point.
type Star struct {
	X, Y  int
	W     int // Streak length
	Speed int
}

// Starfield is the parallax background. It draws from its own RNG so the
// combat sequence is the same with or without stars.
type Starfield struct {
	stars  []Star
	rng    *RNG
	seed   int64
	width  int
	height int
}

// NewStarfield creates a starfield of n stars over a width x height area.
func NewStarfield(n, width, height int, seed int64) *Starfield {
	sf := &Starfield{
		stars:  make([]Star, n),
		seed:   seed,
		width:  width,
		height: height,
	}
	sf.Reset()
	return sf
}

// Reset reseeds the generator and scatters every star again.
func (sf *Starfield) Reset() {
	sf.rng = NewRNG(sf.seed)
	for i := range sf.stars {
		sf.stars[i] = Star{
			X:     sf.rng.Intn(sf.width),
			Y:     sf.rng.Intn(sf.height),
			W:     1 + sf.rng.Intn(4),
			Speed: 1 + sf.rng.Intn(4),
		}
	}
}

// Update scrolls stars left, wrapping them to the right edge at a new row.
func (sf *Starfield) Update() {
	for i := range sf.stars {
		s := &sf.stars[i]
		s.X -= s.Speed
		if s.X < -s.W {
			s.X += sf.width + s.W
			s.Y = sf.rng.Intn(sf.height)
		}
	}
}

// Stars returns the current stars. The slice must not be modified.
func (sf *Starfield) Stars() []Star {
	return sf.stars
}

// Alpha returns the draw opacity of a star; faster stars are brighter.
func (s Star) Alpha() int {
	return s.Speed * 255 / 4
}

func (sf *Starfield) state() uint64 {
	return sf.rng.State()
}
