package ui

import (
	"errors"

	"chosenoffset.com/decker/internal/render"
)

var (
	// ErrModalAlreadyPushed is returned when pushing a surface that is
	// already on the modal stack.
	ErrModalAlreadyPushed = errors.New("ui: surface is already on the modal stack")
	// ErrModalNotFound is returned when popping a surface that is not the
	// current top of the modal stack.
	ErrModalNotFound = errors.New("ui: surface is not the top of the modal stack")
	// ErrInvariantViolation is returned when an operation would break the
	// shown-set/modal-stack invariant, e.g. hiding a surface that is still
	// stacked.
	ErrInvariantViolation = errors.New("ui: modal stack invariant violated")
)

// ViewManager owns the ordered set of currently shown surfaces and the modal
// focus stack. The stack holds references, not ownership: every stacked
// surface is also in the shown set. All access happens on the main-loop
// goroutine.
type ViewManager struct {
	shown []Surface
	modal []Surface
}

// NewViewManager creates an empty view manager.
func NewViewManager() *ViewManager {
	return &ViewManager{}
}

// Show adds the surface to the rendering set. Showing an already shown
// surface is a no-op.
func (m *ViewManager) Show(s Surface) {
	if m.indexShown(s) >= 0 {
		return
	}
	m.shown = append(m.shown, s)
}

// Hide removes the surface from the rendering set. Hiding an already hidden
// surface is a no-op. Hiding a surface that is still on the modal stack is a
// programming error and aborts with ErrInvariantViolation, leaving both the
// shown set and the stack intact.
func (m *ViewManager) Hide(s Surface) error {
	if m.indexModal(s) >= 0 {
		return ErrInvariantViolation
	}
	i := m.indexShown(s)
	if i < 0 {
		return nil
	}
	m.shown = append(m.shown[:i], m.shown[i+1:]...)
	return nil
}

// IsShown reports whether the surface is in the rendering set.
func (m *ViewManager) IsShown(s Surface) bool {
	return m.indexShown(s) >= 0
}

// PushModal shows the surface and makes it the exclusive input target.
func (m *ViewManager) PushModal(s Surface) error {
	if m.indexModal(s) >= 0 {
		return ErrModalAlreadyPushed
	}
	m.Show(s)
	m.modal = append(m.modal, s)
	return nil
}

// PopModal removes and hides the top of the modal stack. Input focus reverts
// to the new top, or to the non-modal surfaces if the stack becomes empty.
func (m *ViewManager) PopModal() (Surface, error) {
	if len(m.modal) == 0 {
		return nil, ErrModalNotFound
	}
	top := m.modal[len(m.modal)-1]
	m.modal = m.modal[:len(m.modal)-1]
	if err := m.Hide(top); err != nil {
		return nil, err
	}
	return top, nil
}

// PopModalSurface removes a specific surface from the stack. The design
// requires strict nesting, so only removing the current top is safe; any
// other surface fails with ErrModalNotFound and the stack is unchanged.
func (m *ViewManager) PopModalSurface(s Surface) error {
	if len(m.modal) == 0 || m.modal[len(m.modal)-1] != s {
		return ErrModalNotFound
	}
	_, err := m.PopModal()
	return err
}

// ModalDepth returns the number of stacked modal surfaces.
func (m *ViewManager) ModalDepth() int {
	return len(m.modal)
}

// Top returns the current top of the modal stack, or nil.
func (m *ViewManager) Top() Surface {
	if len(m.modal) == 0 {
		return nil
	}
	return m.modal[len(m.modal)-1]
}

// RouteInput delivers an input event. With a non-empty modal stack only the
// top surface receives it; otherwise every shown non-modal surface does, in
// show order. This exclusivity is what keeps a click on a background view
// from also affecting a foreground dialog. Returns whether any surface
// consumed the event.
func (m *ViewManager) RouteInput(ev InputEvent) bool {
	if top := m.Top(); top != nil {
		return top.HandleInput(ev)
	}
	// Snapshot: a handler may show or hide surfaces (e.g. by requesting a
	// state transition) while the event is being delivered.
	shown := append([]Surface(nil), m.shown...)
	handled := false
	for _, s := range shown {
		if s.HandleInput(ev) {
			handled = true
		}
	}
	return handled
}

// Update ticks the top modal surface when one is active, otherwise all shown
// surfaces.
func (m *ViewManager) Update(dt float64) {
	if top := m.Top(); top != nil {
		top.Update(dt)
		return
	}
	for _, s := range m.shown {
		s.Update(dt)
	}
}

// Surfaces returns the shown surfaces in draw order. The slice is shared;
// callers must not retain or mutate it.
func (m *ViewManager) Surfaces() []Surface {
	return m.shown
}

// Draw renders all shown surfaces in order.
func (m *ViewManager) Draw(dst render.Image) {
	for _, s := range m.shown {
		s.Draw(dst)
	}
}

func (m *ViewManager) indexShown(s Surface) int {
	for i, cur := range m.shown {
		if cur == s {
			return i
		}
	}
	return -1
}

func (m *ViewManager) indexModal(s Surface) int {
	for i, cur := range m.modal {
		if cur == s {
			return i
		}
	}
	return -1
}
