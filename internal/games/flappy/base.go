package flappy

// Base is the scrolling ground, drawn as two tiles that leapfrog each other.
// The tiles always sit exactly one tile width apart.
type Base struct {
	X         [2]float64
	Y         float64
	TileWidth float64
}

// NewBase places the first tile at the left edge and the second right after it.
func NewBase(tileWidth, y float64) Base {
	return Base{
		X:         [2]float64{0, tileWidth},
		Y:         y,
		TileWidth: tileWidth,
	}
}

// Scroll moves both tiles left and wraps a tile that fully left the screen
// to the far side of the other one.
func (b *Base) Scroll(speed float64) {
	b.X[0] -= speed
	b.X[1] -= speed

	if b.X[0] <= -b.TileWidth {
		b.X[0] = b.X[1] + b.TileWidth
	}
	if b.X[1] <= -b.TileWidth {
		b.X[1] = b.X[0] + b.TileWidth
	}
}
