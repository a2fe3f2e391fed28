package core

// Color represents a foreground color for a screen cell.
// Frontends map these to concrete terminal or RGB colors.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorCyan
	ColorBrightWhite
	ColorRed
	ColorOrange
	ColorGray
)
