package ui

import (
	"chosenoffset.com/decker/internal/render"
)

const maxNameLength = 24

// NewCharView is the character creation screen: a single name entry field.
type NewCharView struct {
	renderer render.Renderer
	width    int
	height   int
	name     []rune
	OnCreate func(name string)
}

// NewNewCharView creates the character creation view.
func NewNewCharView(r render.Renderer, width, height int, onCreate func(string)) *NewCharView {
	return &NewCharView{renderer: r, width: width, height: height, OnCreate: onCreate}
}

// Name returns the name typed so far.
func (v *NewCharView) Name() string {
	return string(v.name)
}

// HandleInput edits the name field and submits on Enter.
func (v *NewCharView) HandleInput(ev InputEvent) bool {
	switch ev.Kind {
	case InputRune:
		if len(v.name) < maxNameLength {
			v.name = append(v.name, ev.Char)
		}
		return true
	case InputKey:
		switch ev.Key {
		case render.KeyBackspace:
			if len(v.name) > 0 {
				v.name = v.name[:len(v.name)-1]
			}
			return true
		case render.KeyEnter:
			if len(v.name) > 0 && v.OnCreate != nil {
				v.OnCreate(string(v.name))
			}
			return true
		}
	}
	return false
}

// Update implements Surface.
func (v *NewCharView) Update(dt float64) {}

// Draw renders the name prompt.
func (v *NewCharView) Draw(dst render.Image) {
	dst.Fill(colorPanel)
	v.renderer.DrawText(dst, "New character", v.width/3, v.height/3, colorHighlight, 1.5)
	v.renderer.DrawText(dst, "Handle: "+string(v.name)+"_", v.width/3, v.height/3+40, colorText, 1.0)
	v.renderer.DrawText(dst, "Enter to create", v.width/3, v.height/3+80, colorText, 1.0)
}
