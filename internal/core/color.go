package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorWhite
	ColorBrightGreen
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDimYellow
	ColorNavy
)
