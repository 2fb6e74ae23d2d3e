// Package game contains the state machine that decides which screen is
// active: the Mode enum, the State lifecycle interface, the Runner that
// executes transitions and drives the per-frame loop, and the bridge that
// turns domain events into UI reactions.
package game

// Mode is the closed set of mutually exclusive high-level application modes.
// Exactly one is active at any time.
type Mode int

const (
	// ModeNone is the implicit mode before the first transition.
	ModeNone Mode = iota
	// ModeIntro is the title screen.
	ModeIntro
	// ModeNewChar is character creation.
	ModeNewChar
	// ModeHome is the hub between runs.
	ModeHome
	// ModeShop is the shop screen.
	ModeShop
	// ModeMatrixRun is an active matrix run.
	ModeMatrixRun
	// ModeQuit is the terminal mode; entering it stops the main loop.
	ModeQuit
)

// String returns a readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeIntro:
		return "intro"
	case ModeNewChar:
		return "newchar"
	case ModeHome:
		return "home"
	case ModeShop:
		return "shop"
	case ModeMatrixRun:
		return "matrixrun"
	case ModeQuit:
		return "quit"
	default:
		return "unknown"
	}
}
