package core

// Color is a foreground color for a screen cell. The platform maps it to
// terminal colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// numberColors follows the usual minesweeper palette for 1..8.
var numberColors = [...]Color{
	ColorDefault,
	ColorBlue,
	ColorGreen,
	ColorRed,
	ColorMagenta,
	ColorOrange,
	ColorCyan,
	ColorWhite,
	ColorGray,
}

// NumberColor returns the color used to draw an adjacent-mine count.
func NumberColor(n int) Color {
	if n < 0 || n >= len(numberColors) {
		return ColorDefault
	}
	return numberColors[n]
}
