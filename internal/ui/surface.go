// Package ui provides the view layer: the Surface abstraction, the
// ViewManager that owns the shown set and the modal focus stack, and the
// concrete views of the game.
package ui

import (
	"chosenoffset.com/decker/internal/render"
)

// InputKind discriminates the kinds of input events a Surface can receive.
type InputKind int

const (
	// InputKey is a discrete key press.
	InputKey InputKind = iota
	// InputClick is a mouse button press at a screen position.
	InputClick
	// InputRune is a typed printable character.
	InputRune
)

// InputEvent is a single routed input occurrence. Key is set for InputKey,
// X/Y and Button for InputClick, Char for InputRune.
type InputEvent struct {
	Kind   InputKind
	Key    render.Key
	Button render.MouseButton
	X, Y   int
	Char   rune
}

// Surface is a displayable, input-receiving view object. A Surface is owned
// by exactly one state (or opened as a modal on top of one); the ViewManager
// holds references only.
type Surface interface {
	// HandleInput processes a routed input event and reports whether it
	// consumed it.
	HandleInput(ev InputEvent) bool

	// Update advances surface-local animation and timers.
	Update(dt float64)

	// Draw renders the surface onto the destination image.
	Draw(dst render.Image)
}
