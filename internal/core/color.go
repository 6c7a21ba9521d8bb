package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors. The first block follows the guideline tetromino palette.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorYellow
	ColorBlue
	ColorOrange
	ColorGreen
	ColorRed
	ColorPurple
	ColorWhite
	ColorGray
	ColorPink
)
