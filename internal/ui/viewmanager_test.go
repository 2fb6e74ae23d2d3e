package ui

import (
	"errors"
	"testing"

	"chosenoffset.com/decker/internal/render"
)

// stubSurface records the input and update calls it receives.
type stubSurface struct {
	name     string
	events   []InputEvent
	updates  int
	consumes bool
}

func (s *stubSurface) HandleInput(ev InputEvent) bool {
	s.events = append(s.events, ev)
	return s.consumes
}

func (s *stubSurface) Update(dt float64)     { s.updates++ }
func (s *stubSurface) Draw(dst render.Image) {}

func click(x, y int) InputEvent {
	return InputEvent{Kind: InputClick, Button: render.MouseButtonLeft, X: x, Y: y}
}

func TestShowHideIdempotent(t *testing.T) {
	m := NewViewManager()
	s := &stubSurface{name: "a"}

	m.Show(s)
	m.Show(s)
	if len(m.Surfaces()) != 1 {
		t.Fatalf("Expected 1 shown surface after double show, got %d", len(m.Surfaces()))
	}

	if err := m.Hide(s); err != nil {
		t.Fatalf("Hide failed: %v", err)
	}
	if err := m.Hide(s); err != nil {
		t.Fatalf("Second hide should be a no-op, got %v", err)
	}
	if len(m.Surfaces()) != 0 {
		t.Fatalf("Expected 0 shown surfaces, got %d", len(m.Surfaces()))
	}
}

func TestRouteInputWithoutModalsDeliversToAllShown(t *testing.T) {
	m := NewViewManager()
	a := &stubSurface{name: "a"}
	b := &stubSurface{name: "b"}
	m.Show(a)
	m.Show(b)

	m.RouteInput(click(5, 5))

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("Expected both surfaces to receive the event, got a=%d b=%d", len(a.events), len(b.events))
	}
}

func TestModalStackExclusiveRouting(t *testing.T) {
	m := NewViewManager()
	background := &stubSurface{name: "background"}
	shop := &stubSurface{name: "shop", consumes: true}
	item := &stubSurface{name: "item", consumes: true}
	m.Show(background)

	if err := m.PushModal(shop); err != nil {
		t.Fatalf("PushModal(shop) failed: %v", err)
	}
	if err := m.PushModal(item); err != nil {
		t.Fatalf("PushModal(item) failed: %v", err)
	}

	m.RouteInput(click(5, 5))
	if len(item.events) != 1 {
		t.Errorf("Expected the top modal to receive the event, got %d", len(item.events))
	}
	if len(shop.events) != 0 || len(background.events) != 0 {
		t.Errorf("Expected lower surfaces to receive nothing, got shop=%d background=%d",
			len(shop.events), len(background.events))
	}

	// Popping restores exclusive focus to the previous modal.
	if _, err := m.PopModal(); err != nil {
		t.Fatalf("PopModal failed: %v", err)
	}
	m.RouteInput(click(6, 6))
	if len(shop.events) != 1 {
		t.Errorf("Expected shop to receive the event after pop, got %d", len(shop.events))
	}
	if len(item.events) != 1 {
		t.Errorf("Expected popped modal to receive nothing more, got %d", len(item.events))
	}

	// Popping the last modal restores non-modal routing.
	if _, err := m.PopModal(); err != nil {
		t.Fatalf("PopModal failed: %v", err)
	}
	m.RouteInput(click(7, 7))
	if len(background.events) != 1 {
		t.Errorf("Expected background to receive the event after all pops, got %d", len(background.events))
	}
}

func TestPushModalTwiceFails(t *testing.T) {
	m := NewViewManager()
	s := &stubSurface{name: "dialog"}
	if err := m.PushModal(s); err != nil {
		t.Fatalf("PushModal failed: %v", err)
	}
	if err := m.PushModal(s); !errors.Is(err, ErrModalAlreadyPushed) {
		t.Errorf("Expected ErrModalAlreadyPushed, got %v", err)
	}
	if m.ModalDepth() != 1 {
		t.Errorf("Expected stack depth 1, got %d", m.ModalDepth())
	}
}

func TestPopNonTopFailsAndLeavesStackUnchanged(t *testing.T) {
	m := NewViewManager()
	bottom := &stubSurface{name: "bottom"}
	top := &stubSurface{name: "top"}
	if err := m.PushModal(bottom); err != nil {
		t.Fatalf("PushModal(bottom) failed: %v", err)
	}
	if err := m.PushModal(top); err != nil {
		t.Fatalf("PushModal(top) failed: %v", err)
	}

	if err := m.PopModalSurface(bottom); !errors.Is(err, ErrModalNotFound) {
		t.Errorf("Expected ErrModalNotFound, got %v", err)
	}
	if m.ModalDepth() != 2 {
		t.Errorf("Expected stack depth 2, got %d", m.ModalDepth())
	}
	if m.Top() != top {
		t.Error("Expected top of stack unchanged")
	}
}

func TestPopEmptyStackFails(t *testing.T) {
	m := NewViewManager()
	if _, err := m.PopModal(); !errors.Is(err, ErrModalNotFound) {
		t.Errorf("Expected ErrModalNotFound, got %v", err)
	}
}

func TestHideStackedSurfaceViolatesInvariant(t *testing.T) {
	m := NewViewManager()
	s := &stubSurface{name: "dialog"}
	if err := m.PushModal(s); err != nil {
		t.Fatalf("PushModal failed: %v", err)
	}

	if err := m.Hide(s); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("Expected ErrInvariantViolation, got %v", err)
	}
	if !m.IsShown(s) {
		t.Error("Expected surface to remain shown after aborted hide")
	}
	if m.ModalDepth() != 1 {
		t.Errorf("Expected stack depth 1, got %d", m.ModalDepth())
	}
}

func TestStackedSurfaceIsAlwaysShown(t *testing.T) {
	m := NewViewManager()
	s := &stubSurface{name: "dialog"}
	if err := m.PushModal(s); err != nil {
		t.Fatalf("PushModal failed: %v", err)
	}
	if !m.IsShown(s) {
		t.Error("Expected pushed modal to be in the shown set")
	}
	if _, err := m.PopModal(); err != nil {
		t.Fatalf("PopModal failed: %v", err)
	}
	if m.IsShown(s) {
		t.Error("Expected popped modal to be hidden")
	}
}

func TestUpdateTicksOnlyTopModal(t *testing.T) {
	m := NewViewManager()
	background := &stubSurface{name: "background"}
	dialog := &stubSurface{name: "dialog"}
	m.Show(background)

	m.Update(1.0 / 60.0)
	if background.updates != 1 {
		t.Errorf("Expected background update without modals, got %d", background.updates)
	}

	if err := m.PushModal(dialog); err != nil {
		t.Fatalf("PushModal failed: %v", err)
	}
	m.Update(1.0 / 60.0)
	if dialog.updates != 1 {
		t.Errorf("Expected dialog update with modal active, got %d", dialog.updates)
	}
	if background.updates != 1 {
		t.Errorf("Expected background to be skipped with modal active, got %d", background.updates)
	}
}
