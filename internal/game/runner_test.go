package game

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"chosenoffset.com/decker/internal/app"
	"chosenoffset.com/decker/internal/event"
	"chosenoffset.com/decker/internal/render"
	"chosenoffset.com/decker/internal/ui"
)

// fakeImage is a headless render.Image for tests.
type fakeImage struct {
	width, height int
}

func (f *fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, f.width, f.height) }
func (f *fakeImage) Size() (int, int)        { return f.width, f.height }
func (f *fakeImage) Fill(clr color.Color)    {}
func (f *fakeImage) Clear()                  {}
func (f *fakeImage) Dispose()                {}

func (f *fakeImage) DrawImage(src render.Image, o *render.DrawImageOptions) {}

// fakeRenderer is a headless render.Renderer for tests.
type fakeRenderer struct{}

func (fakeRenderer) NewImage(width, height int) render.Image {
	return &fakeImage{width: width, height: height}
}
func (fakeRenderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {}
func (fakeRenderer) StrokeRect(dst render.Image, x, y, w, h, strokeWidth float32, clr color.Color) {
}
func (fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
}
func (fakeRenderer) MeasureText(text string, scale float64) (int, int) {
	return 6 * len(text), 13
}

// fakeInput reports no input at all.
type fakeInput struct{}

func (fakeInput) IsKeyPressed(key render.Key) bool                   { return false }
func (fakeInput) IsKeyJustPressed(key render.Key) bool               { return false }
func (fakeInput) GetCursorPosition() (int, int)                      { return 0, 0 }
func (fakeInput) IsMouseButtonPressed(b render.MouseButton) bool     { return false }
func (fakeInput) IsMouseButtonJustPressed(b render.MouseButton) bool { return false }
func (fakeInput) InputChars() []rune                                 { return nil }

// scriptedState records its lifecycle calls into a shared log and can run
// extra code from OnEnter and OnExit.
type scriptedState struct {
	name    string
	log     *[]string
	onEnter func()
	onExit  func()
	reenter bool
}

func (s *scriptedState) OnEnter() {
	*s.log = append(*s.log, s.name+":enter")
	if s.onEnter != nil {
		s.onEnter()
	}
}

func (s *scriptedState) OnExit() {
	*s.log = append(*s.log, s.name+":exit")
	if s.onExit != nil {
		s.onExit()
	}
}

func (s *scriptedState) HandleInput(ev ui.InputEvent) {}
func (s *scriptedState) Update(dt float64)            {}
func (s *scriptedState) Draw(dst render.Image)        {}
func (s *scriptedState) Reenterable() bool            { return s.reenter }

// newBareRunner creates a runner with no registered states and no services.
func newBareRunner() *Runner {
	return NewRunner(fakeRenderer{}, fakeInput{}, ui.NewViewManager(), Services{}, 1280, 800)
}

// newTestRunner wires the full application: real states, services over an
// in-memory repository, and the event bridge.
func newTestRunner(t *testing.T, startingCredits int) (*Runner, *event.Dispatcher) {
	t.Helper()
	repo := app.NewMemoryCharacterRepository()
	d := event.NewDispatcher()
	services := Services{
		Character: app.NewCharacterService(repo, d, startingCredits),
		Shop:      app.NewShopService(repo, d, app.DefaultCatalog()),
		Crafting:  app.NewCraftingService(repo, d),
		Project:   app.NewProjectService(repo, d),
	}
	r := NewRunner(fakeRenderer{}, fakeInput{}, ui.NewViewManager(), services, 1280, 800)
	RegisterStates(r)
	InstallBridge(d, r)
	return r, d
}

func assertLog(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected lifecycle log %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected lifecycle log %v, got %v", want, got)
		}
	}
}

func TestTransitionRunsExitBeforeEnter(t *testing.T) {
	r := newBareRunner()
	var log []string
	r.Register(ModeIntro, func(*Runner) State { return &scriptedState{name: "intro", log: &log} })
	r.Register(ModeHome, func(*Runner) State { return &scriptedState{name: "home", log: &log} })

	if err := r.Transition(ModeIntro); err != nil {
		t.Fatalf("Transition(intro) failed: %v", err)
	}
	if err := r.Transition(ModeHome); err != nil {
		t.Fatalf("Transition(home) failed: %v", err)
	}

	assertLog(t, log, "intro:enter", "intro:exit", "home:enter")
	if r.Mode() != ModeHome {
		t.Errorf("Expected ModeHome, got %s", r.Mode())
	}
}

func TestTransitionFromOnEnterIsDeferred(t *testing.T) {
	r := newBareRunner()
	var log []string
	r.Register(ModeHome, func(*Runner) State {
		return &scriptedState{name: "home", log: &log, onEnter: func() {
			// Requested mid-transition; must run only after this one
			// fully completes.
			if err := r.Transition(ModeShop); err != nil {
				t.Errorf("Deferred transition request failed: %v", err)
			}
			log = append(log, "home:enter-done")
		}}
	})
	r.Register(ModeShop, func(*Runner) State { return &scriptedState{name: "shop", log: &log} })

	if err := r.Transition(ModeHome); err != nil {
		t.Fatalf("Transition(home) failed: %v", err)
	}

	assertLog(t, log, "home:enter", "home:enter-done", "home:exit", "shop:enter")
	if r.Mode() != ModeShop {
		t.Errorf("Expected ModeShop after deferred transition, got %s", r.Mode())
	}
}

func TestTransitionFromOnExitIsDeferred(t *testing.T) {
	r := newBareRunner()
	var log []string
	r.Register(ModeIntro, func(*Runner) State {
		return &scriptedState{name: "intro", log: &log, onExit: func() {
			if err := r.Transition(ModeShop); err != nil {
				t.Errorf("Deferred transition request failed: %v", err)
			}
		}}
	})
	r.Register(ModeHome, func(*Runner) State { return &scriptedState{name: "home", log: &log} })
	r.Register(ModeShop, func(*Runner) State { return &scriptedState{name: "shop", log: &log} })

	if err := r.Transition(ModeIntro); err != nil {
		t.Fatalf("Transition(intro) failed: %v", err)
	}
	if err := r.Transition(ModeHome); err != nil {
		t.Fatalf("Transition(home) failed: %v", err)
	}

	// The intro->home transition completes before the queued home->shop one
	// starts.
	assertLog(t, log, "intro:enter", "intro:exit", "home:enter", "home:exit", "shop:enter")
	if r.Mode() != ModeShop {
		t.Errorf("Expected ModeShop, got %s", r.Mode())
	}
}

func TestSelfTransitionRejected(t *testing.T) {
	r := newBareRunner()
	var log []string
	r.Register(ModeHome, func(*Runner) State { return &scriptedState{name: "home", log: &log} })

	if err := r.Transition(ModeHome); err != nil {
		t.Fatalf("Transition(home) failed: %v", err)
	}
	if err := r.Transition(ModeHome); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Expected ErrInvalidTransition, got %v", err)
	}

	// No lifecycle calls beyond the first entry.
	assertLog(t, log, "home:enter")
}

func TestSelfTransitionAllowedWhenReenterable(t *testing.T) {
	r := newBareRunner()
	var log []string
	r.Register(ModeShop, func(*Runner) State {
		return &scriptedState{name: "shop", log: &log, reenter: true}
	})

	if err := r.Transition(ModeShop); err != nil {
		t.Fatalf("Transition(shop) failed: %v", err)
	}
	if err := r.Transition(ModeShop); err != nil {
		t.Fatalf("Re-entering transition failed: %v", err)
	}

	assertLog(t, log, "shop:enter", "shop:exit", "shop:enter")
}

func TestUnknownModeRejected(t *testing.T) {
	r := newBareRunner()
	var log []string
	r.Register(ModeHome, func(*Runner) State { return &scriptedState{name: "home", log: &log} })

	if err := r.Transition(ModeHome); err != nil {
		t.Fatalf("Transition(home) failed: %v", err)
	}
	if err := r.Transition(ModeMatrixRun); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("Expected ErrUnknownMode, got %v", err)
	}
	if r.Mode() != ModeHome {
		t.Errorf("Expected mode unchanged after rejected transition, got %s", r.Mode())
	}
	assertLog(t, log, "home:enter")
}

func TestDoubleEnterIsTolerated(t *testing.T) {
	r, _ := newTestRunner(t, 1000)
	if err := r.Transition(ModeIntro); err != nil {
		t.Fatalf("Transition(intro) failed: %v", err)
	}

	// States guard against a second OnEnter on the same instance.
	r.current.OnEnter()
	if got := len(r.Views().Surfaces()); got != 1 {
		t.Errorf("Expected 1 shown surface after double enter, got %d", got)
	}
}

func TestQuitTerminatesMainLoop(t *testing.T) {
	r, _ := newTestRunner(t, 1000)
	if err := r.Transition(ModeIntro); err != nil {
		t.Fatalf("Transition(intro) failed: %v", err)
	}
	if err := r.Update(); err != nil {
		t.Fatalf("Expected running update to succeed, got %v", err)
	}

	if err := r.Transition(ModeQuit); err != nil {
		t.Fatalf("Transition(quit) failed: %v", err)
	}
	if err := r.Update(); !errors.Is(err, render.Termination) {
		t.Fatalf("Expected render.Termination after quit, got %v", err)
	}
}

func TestDrawWithoutStateIsSafe(t *testing.T) {
	r := newBareRunner()
	r.Draw(&fakeImage{width: 1280, height: 800})

	if w, h := r.Layout(1920, 1080); w != 1280 || h != 800 {
		t.Errorf("Expected fixed logical size 1280x800, got %dx%d", w, h)
	}
}
