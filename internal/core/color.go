package core

// Color is the foreground color of a screen cell.
// The platform maps each value to a terminal color; unknown values render
// as ColorDefault.
type Color uint8

// Colors drawn by the hopper renderer.
const (
	ColorDefault      Color = iota // Text and cleared cells
	ColorRed                       // Death line
	ColorCyan                      // Message box border
	ColorGray                      // Platforms whose reward is spent
	ColorBrightGreen               // Platforms still worth points
	ColorBrightYellow              // The body
	ColorBrightWhite               // HUD
)
