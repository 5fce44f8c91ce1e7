package ui

// Layout dimensions, in logical (pre-HiDPI-scale) pixels.
const (
	SquareSize  = 80
	BoardSize   = SquareSize * 8
	ScreenWidth = BoardSize
	// ScreenHeight leaves a strip below the board for the status line.
	ScreenHeight = BoardSize + 32
)

// UIScale is the current HiDPI device scale factor, updated each frame by
// Game.Layout. InputHandler reads it to convert cursor coordinates from
// device space back to the logical coordinates the renderer draws in.
var UIScale = 1.0
