// Package config collects the small set of constants the rest of the
// repository needs in one place, the way schmittie_chess/config.py's
// single Const dataclass does.
package config

import "time"

// Window and board geometry, after schmittie_chess/config.py. The
// Ebitengine GUI does not read these; its layout constants are in
// internal/ui/layout.go.
const (
	WindowHeight = 850
	BoardCols    = 8
	BoardRows    = 8
	rimMargin    = 50
	SquareSize   = (WindowHeight - rimMargin) / BoardCols
	TimeMargin   = 50
	WindowWidth  = WindowHeight + TimeMargin + 2*SquareSize
)

// FileNames are the upper-case file labels A..H. The GUI draws no
// coordinate labels and does not read them.
var FileNames = [8]string{"A", "B", "C", "D", "E", "F", "G", "H"}

// Difficulty selects a fixed search depth for computer opponents. The
// search itself takes a depth directly and has no time management;
// difficulty is an application-level convenience that maps to a depth
// and to an advisory soft time budget (SoftMoveBudget).
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Depth is the fixed-ply search depth for a difficulty level.
func (d Difficulty) Depth() int {
	switch d {
	case Easy:
		return 2
	case Hard:
		return 4
	default:
		return 3
	}
}

// String names the difficulty, for preferences and logging.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// SoftMoveBudget is advisory only: neither the core nor the GUI reads it,
// and no search is ever cut short by it.
func (d Difficulty) SoftMoveBudget() time.Duration {
	switch d {
	case Easy:
		return 500 * time.Millisecond
	case Hard:
		return 5 * time.Second
	default:
		return 2 * time.Second
	}
}

// ParseDifficulty converts a stored/flag string back into a Difficulty.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}
