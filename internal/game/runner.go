package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/google/uuid"

	"chosenoffset.com/decker/internal/app"
	"chosenoffset.com/decker/internal/render"
	"chosenoffset.com/decker/internal/ui"
)

var (
	// ErrInvalidTransition is returned for an illegal mode change, e.g. a
	// self-transition into a state that is not re-enterable.
	ErrInvalidTransition = errors.New("game: invalid transition")
	// ErrUnknownMode is returned when no state factory is registered for
	// the requested mode.
	ErrUnknownMode = errors.New("game: no state registered for mode")
)

// Services bundles the business services the states call.
type Services struct {
	Character *app.CharacterService
	Shop      *app.ShopService
	Crafting  *app.CraftingService
	Project   *app.ProjectService
}

// trackedKeys are the discrete keys polled into input events each frame.
var trackedKeys = []render.Key{
	render.KeyEnter,
	render.KeyEscape,
	render.KeySpace,
	render.KeyBackspace,
	render.KeyUp,
	render.KeyDown,
	render.KeyLeft,
	render.KeyRight,
}

// Runner owns the single active State and executes lifecycle transitions.
// It implements the engine's per-frame Update/Draw/Layout contract and is
// the only component allowed to change the current Mode. All access happens
// on the main-loop goroutine.
type Runner struct {
	screenWidth  int
	screenHeight int
	renderer     render.Renderer
	input        render.InputManager
	views        *ui.ViewManager
	services     Services
	messages     *ui.MessageView

	characterID uuid.UUID

	factories     map[Mode]func(*Runner) State
	mode          Mode
	current       State
	transitioning bool
	deferred      []Mode
	stopped       bool
}

// NewRunner creates a runner in ModeNone. State factories must be
// registered and an initial Transition issued before the main loop starts.
func NewRunner(r render.Renderer, in render.InputManager, views *ui.ViewManager, services Services, width, height int) *Runner {
	return &Runner{
		screenWidth:  width,
		screenHeight: height,
		renderer:     r,
		input:        in,
		views:        views,
		services:     services,
		messages:     ui.NewMessageView(r, 10, height-80),
		factories:    make(map[Mode]func(*Runner) State),
	}
}

// Register installs the state factory for a mode. States are constructed
// fresh on every entry, so a re-entered mode starts with pristine surfaces.
func (r *Runner) Register(mode Mode, factory func(*Runner) State) {
	r.factories[mode] = factory
}

// Mode returns the currently active mode.
func (r *Runner) Mode() Mode {
	return r.mode
}

// Views returns the view manager.
func (r *Runner) Views() *ui.ViewManager {
	return r.views
}

// CharacterID returns the id of the active character, or uuid.Nil before
// character creation.
func (r *Runner) CharacterID() uuid.UUID {
	return r.characterID
}

// SetCharacterID records the active character after creation.
func (r *Runner) SetCharacterID(id uuid.UUID) {
	r.characterID = id
}

// ShowMessage displays a transient message on screen.
func (r *Runner) ShowMessage(text string) {
	r.messages.Post(text)
	log.Printf("Message: %s", text)
}

// Messages returns the transient message surface.
func (r *Runner) Messages() *ui.MessageView {
	return r.messages
}

// Stop flags the main loop to end after the current frame completes.
func (r *Runner) Stop() {
	r.stopped = true
}

// Transition moves the state machine to the next mode. A transition
// requested while another is in progress (from OnEnter or OnExit) is
// deferred and executed after the current one fully completes; a deferred
// transition that turns out to be invalid is logged and dropped.
func (r *Runner) Transition(next Mode) error {
	if r.transitioning {
		r.deferred = append(r.deferred, next)
		return nil
	}
	if err := r.doTransition(next); err != nil {
		return err
	}
	for len(r.deferred) > 0 {
		queued := r.deferred[0]
		r.deferred = r.deferred[1:]
		if err := r.doTransition(queued); err != nil {
			log.Printf("game: deferred transition to %s rejected: %v", queued, err)
		}
	}
	return nil
}

func (r *Runner) doTransition(next Mode) error {
	if next == r.mode {
		re, ok := r.current.(reenterable)
		if !ok || !re.Reenterable() {
			return fmt.Errorf("%w: already in %s", ErrInvalidTransition, next)
		}
	}
	factory, ok := r.factories[next]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, next)
	}

	r.transitioning = true
	defer func() { r.transitioning = false }()

	if r.current != nil {
		r.current.OnExit()
	}
	r.mode = next
	r.current = factory(r)
	r.current.OnEnter()
	return nil
}

// HandleRawInput routes a single input event: through the view manager
// first, then to the active state if no surface consumed it and no modal is
// open. Input arriving while a transition is in progress is dropped.
func (r *Runner) HandleRawInput(ev ui.InputEvent) {
	if r.transitioning {
		return
	}
	modalActive := r.views.ModalDepth() > 0
	handled := r.views.RouteInput(ev)
	if handled || modalActive {
		return
	}
	if r.current != nil {
		r.current.HandleInput(ev)
	}
}

// Update advances one frame: polls input, routes it, and ticks the active
// state. Returns render.Termination once Stop has been observed, so the
// frame that set the flag still draws.
func (r *Runner) Update() error {
	if r.stopped {
		return render.Termination
	}

	// Delta time for timers (fixed 60 TPS)
	dt := 1.0 / 60.0

	for _, ev := range r.pollInput() {
		r.HandleRawInput(ev)
	}

	if r.current != nil && !r.transitioning {
		r.current.Update(dt)
	}
	r.messages.Update(dt)
	return nil
}

// Draw renders the active state and the transient messages on top.
func (r *Runner) Draw(screen render.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	if r.current != nil {
		r.current.Draw(screen)
	}
	r.messages.Draw(screen)
}

// Layout returns the game's logical screen size.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.screenWidth, r.screenHeight
}

func (r *Runner) pollInput() []ui.InputEvent {
	var evs []ui.InputEvent
	for _, ch := range r.input.InputChars() {
		evs = append(evs, ui.InputEvent{Kind: ui.InputRune, Char: ch})
	}
	for _, key := range trackedKeys {
		if r.input.IsKeyJustPressed(key) {
			evs = append(evs, ui.InputEvent{Kind: ui.InputKey, Key: key})
		}
	}
	if r.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := r.input.GetCursorPosition()
		evs = append(evs, ui.InputEvent{Kind: ui.InputClick, Button: render.MouseButtonLeft, X: x, Y: y})
	}
	return evs
}
