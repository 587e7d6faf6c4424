package core

// Color is the foreground color of a screen cell.
type Color uint8

// Palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// Roles of the invaders playfield mapped onto the palette.
const (
	ColorShip        = ColorBrightCyan
	ColorWeakEnemy   = ColorOrange
	ColorStrongEnemy = ColorBrightRed
	ColorShield      = ColorGreen
	ColorPlayerShot  = ColorBrightYellow
	ColorEnemyShot   = ColorMagenta
	ColorBorder      = ColorGray
	ColorHUD         = ColorWhite
)

var ansiCodes = [...]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorOrange:       "208",
	ColorGray:         "245",
}

// ANSI returns the 256-color terminal code of c, or "" for the default color.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
