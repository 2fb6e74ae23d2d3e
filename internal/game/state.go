package game

import (
	"chosenoffset.com/decker/internal/render"
	"chosenoffset.com/decker/internal/ui"
)

// State is one application mode's behavior. A state owns the surfaces it
// shows in OnEnter and must hide them again in OnExit. States never
// transition each other directly; they request a transition from the Runner.
type State interface {
	// OnEnter is called once per activation, after the previous state's
	// OnExit completed. Implementations must tolerate a double call.
	OnEnter()

	// OnExit is called once before the next state's OnEnter. It must
	// release every surface the state showed.
	OnExit()

	// HandleInput receives input that was not captured by a modal surface.
	HandleInput(ev ui.InputEvent)

	// Update advances state logic by dt seconds.
	Update(dt float64)

	// Draw renders the state.
	Draw(dst render.Image)
}

// reenterable is an optional marker: a state implementing it with a true
// return accepts self-transitions (refresh semantics).
type reenterable interface {
	Reenterable() bool
}
