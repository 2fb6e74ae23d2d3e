package ui

import (
	"image"

	"chosenoffset.com/decker/internal/render"
)

// HomeCallbacks are the actions reachable from the home hub.
type HomeCallbacks struct {
	OnShop      func()
	OnMatrixRun func()
	OnResearch  func()
	OnQuit      func()
}

// HomeView is the hub screen between runs: character status plus navigation
// buttons.
type HomeView struct {
	renderer render.Renderer
	width    int
	height   int
	buttons  []*Button
	status   []string
}

// NewHomeView creates the home view with its navigation buttons.
func NewHomeView(r render.Renderer, width, height int, cb HomeCallbacks) *HomeView {
	v := &HomeView{renderer: r, width: width, height: height}
	entries := []struct {
		label   string
		onClick func()
	}{
		{"Shop", cb.OnShop},
		{"Jack in", cb.OnMatrixRun},
		{"Research", cb.OnResearch},
		{"Quit", cb.OnQuit},
	}
	x := 60
	y := 120
	for _, e := range entries {
		v.buttons = append(v.buttons, &Button{
			Label:   e.label,
			Rect:    image.Rect(x, y, x+200, y+32),
			OnClick: e.onClick,
		})
		y += 44
	}
	return v
}

// SetStatus replaces the character status lines shown beside the buttons.
func (v *HomeView) SetStatus(lines []string) {
	v.status = lines
}

// HandleInput dispatches clicks to the navigation buttons.
func (v *HomeView) HandleInput(ev InputEvent) bool {
	if ev.Kind != InputClick {
		return false
	}
	for _, b := range v.buttons {
		if b.HandleClick(ev.X, ev.Y) {
			return true
		}
	}
	return false
}

// Update implements Surface.
func (v *HomeView) Update(dt float64) {}

// Draw renders the hub.
func (v *HomeView) Draw(dst render.Image) {
	dst.Fill(colorPanel)
	v.renderer.DrawText(dst, "Home", 60, 60, colorHighlight, 1.5)
	for _, b := range v.buttons {
		b.Draw(v.renderer, dst)
	}
	for i, line := range v.status {
		v.renderer.DrawText(dst, line, 320, 120+i*18, colorText, 1.0)
	}
}
