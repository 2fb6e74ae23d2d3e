package ui

import (
	"chosenoffset.com/decker/internal/render"
)

// IntroView is the title screen. Any key or click continues.
type IntroView struct {
	renderer   render.Renderer
	width      int
	height     int
	OnContinue func()
}

// NewIntroView creates the intro view.
func NewIntroView(r render.Renderer, width, height int, onContinue func()) *IntroView {
	return &IntroView{renderer: r, width: width, height: height, OnContinue: onContinue}
}

// HandleInput continues past the intro on any key press or click.
func (v *IntroView) HandleInput(ev InputEvent) bool {
	switch ev.Kind {
	case InputKey, InputClick:
		if v.OnContinue != nil {
			v.OnContinue()
		}
		return true
	}
	return false
}

// Update implements Surface.
func (v *IntroView) Update(dt float64) {}

// Draw renders the title screen.
func (v *IntroView) Draw(dst render.Image) {
	dst.Fill(colorPanel)
	title := "D E C K E R"
	tw, _ := v.renderer.MeasureText(title, 2.0)
	v.renderer.DrawText(dst, title, (v.width-tw)/2, v.height/3, colorHighlight, 2.0)
	prompt := "press any key"
	pw, _ := v.renderer.MeasureText(prompt, 1.0)
	v.renderer.DrawText(dst, prompt, (v.width-pw)/2, v.height/2, colorText, 1.0)
}
