package ui

import (
	"image"
	"image/color"

	"chosenoffset.com/decker/internal/render"
)

var (
	colorPanel     = color.RGBA{20, 20, 40, 255}
	colorButton    = color.RGBA{40, 50, 80, 255}
	colorBorder    = color.RGBA{90, 110, 160, 255}
	colorText      = color.RGBA{230, 230, 230, 255}
	colorHighlight = color.RGBA{120, 200, 160, 255}
)

// Label is a static line of text.
type Label struct {
	Text  string
	X, Y  int
	Scale float64
}

// Draw renders the label.
func (l *Label) Draw(r render.Renderer, dst render.Image) {
	scale := l.Scale
	if scale == 0 {
		scale = 1.0
	}
	r.DrawText(dst, l.Text, l.X, l.Y, colorText, scale)
}

// Button is a clickable rectangle with a text label.
type Button struct {
	Label   string
	Rect    image.Rectangle
	OnClick func()
}

// HandleClick reports whether the click at (x, y) hit the button, invoking
// OnClick when it did.
func (b *Button) HandleClick(x, y int) bool {
	if !pointInRect(x, y, b.Rect) {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// Draw renders the button.
func (b *Button) Draw(r render.Renderer, dst render.Image) {
	x := float32(b.Rect.Min.X)
	y := float32(b.Rect.Min.Y)
	w := float32(b.Rect.Dx())
	h := float32(b.Rect.Dy())
	r.FillRect(dst, x, y, w, h, colorButton)
	r.StrokeRect(dst, x, y, w, h, 1, colorBorder)
	tw, th := r.MeasureText(b.Label, 1.0)
	r.DrawText(dst, b.Label, b.Rect.Min.X+(b.Rect.Dx()-tw)/2, b.Rect.Min.Y+(b.Rect.Dy()-th)/2, colorText, 1.0)
}

// pointInRect checks if a point is inside a rectangle.
func pointInRect(x, y int, r image.Rectangle) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}
