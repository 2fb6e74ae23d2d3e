package render

import (
	"errors"
	"image"
	"image/color"
)

// Termination signals a clean shutdown of the main loop. A Game returns it
// from Update when the application should exit; backends translate it into
// their own stop mechanism.
var Termination = errors.New("render: termination requested")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, w, h float32, clr color.Color)
	StrokeRect(dst Image, x, y, w, h float32, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to or drawn
// from. It abstracts the underlying image implementation.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// DrawImage draws the source image onto this image.
	DrawImage(src Image, opts *DrawImageOptions)

	// Dispose releases the image resources.
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	// TranslateX and TranslateY shift the source image before drawing.
	TranslateX float64
	TranslateY float64
}

// Key identifies a keyboard key in a backend-independent way.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyEscape
	KeySpace
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
	IsMouseButtonJustPressed(button MouseButton) bool

	// InputChars returns the printable characters typed since the last
	// frame, for text entry fields.
	InputChars() []rune
}

// Game is the per-frame contract the engine drives. Update advances one
// frame of logic, Draw renders the frame, Layout reports the logical screen
// size for a given window size.
type Game interface {
	Update() error
	Draw(screen Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// Engine owns the window and the main loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame runs the main loop until the game returns Termination or an
	// error. Termination itself is not returned to the caller.
	RunGame(game Game) error
}
