package core

import "strconv"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the field renderer and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorSoil
)

var ansiCodes = [...]int{
	ColorRed:          1,
	ColorGreen:        2,
	ColorYellow:       3,
	ColorCyan:         6,
	ColorWhite:        7,
	ColorBrightGreen:  10,
	ColorBrightYellow: 11,
	ColorBrightWhite:  15,
	ColorOrange:       208,
	ColorGray:         245,
	ColorSoil:         94,
}

// ANSI returns the 256-color code of c, or "" for the terminal default.
func (c Color) ANSI() string {
	if c == ColorDefault || int(c) >= len(ansiCodes) {
		return ""
	}
	return strconv.Itoa(ansiCodes[c])
}
