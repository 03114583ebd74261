package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Roles used by the maze renderer. Kept here so every platform renderer
// agrees on what a wall or a gem looks like.
const (
	ColorWall    = ColorBlue
	ColorPlayer  = ColorBrightCyan
	ColorExit    = ColorBrightGreen
	ColorGem     = ColorBrightYellow
	ColorHUD     = ColorBrightWhite
	ColorNotice  = ColorOrange
	ColorOverlay = ColorBrightMagenta
)
