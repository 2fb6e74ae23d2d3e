package ui

import (
	"chosenoffset.com/decker/internal/render"
)

// maxMatrixLogLines bounds the scrollback kept on screen.
const maxMatrixLogLines = 16

// MatrixRunView is the active run screen. It renders the rolling run log fed
// by the event bridge.
type MatrixRunView struct {
	renderer render.Renderer
	width    int
	height   int
	lines    []string
	elapsed  float64
}

// NewMatrixRunView creates the matrix run view.
func NewMatrixRunView(r render.Renderer, width, height int) *MatrixRunView {
	return &MatrixRunView{renderer: r, width: width, height: height}
}

// AppendLine adds a line to the run log, dropping the oldest past the cap.
func (v *MatrixRunView) AppendLine(line string) {
	v.lines = append(v.lines, line)
	if len(v.lines) > maxMatrixLogLines {
		v.lines = v.lines[len(v.lines)-maxMatrixLogLines:]
	}
}

// Lines returns the log lines currently displayed.
func (v *MatrixRunView) Lines() []string {
	return v.lines
}

// HandleInput implements Surface. Run control is state-level (Escape jacks
// out), so the view itself consumes nothing.
func (v *MatrixRunView) HandleInput(ev InputEvent) bool {
	return false
}

// Update advances the run clock.
func (v *MatrixRunView) Update(dt float64) {
	v.elapsed += dt
}

// Draw renders the run log.
func (v *MatrixRunView) Draw(dst render.Image) {
	dst.Fill(colorPanel)
	v.renderer.DrawText(dst, "Matrix run", 60, 40, colorHighlight, 1.5)
	for i, line := range v.lines {
		v.renderer.DrawText(dst, line, 60, 90+i*16, colorText, 1.0)
	}
	v.renderer.DrawText(dst, "Escape to jack out", 60, v.height-40, colorText, 1.0)
}
