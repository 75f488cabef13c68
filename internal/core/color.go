package core

// Color is the foreground colour of a screen cell. The platform maps each
// value to an ANSI colour code.
type Color uint8

// Palette: the seven piece colours plus the text and grid colours.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorBrightWhite
	ColorBrightYellow
	ColorGray

	ColorCount
)
