package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Colors used by the snake screens. ColorDefault leaves the terminal color alone.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)
