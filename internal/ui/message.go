package ui

import (
	"chosenoffset.com/decker/internal/render"
)

// messageDuration is how long a transient message stays on screen.
const messageDuration = 3.0

type message struct {
	text     string
	timeLeft float64
}

// MessageView displays transient messages that fade out after a few seconds.
// It is always shown and never takes modal focus.
type MessageView struct {
	renderer render.Renderer
	x, y     int
	messages []message
}

// NewMessageView creates a message view anchored at the given position.
func NewMessageView(r render.Renderer, x, y int) *MessageView {
	return &MessageView{renderer: r, x: x, y: y}
}

// Post adds a new message to be displayed.
func (v *MessageView) Post(text string) {
	v.messages = append(v.messages, message{text: text, timeLeft: messageDuration})
}

// Messages returns the texts currently on screen, oldest first.
func (v *MessageView) Messages() []string {
	out := make([]string, len(v.messages))
	for i, m := range v.messages {
		out[i] = m.text
	}
	return out
}

// HandleInput implements Surface. Messages never consume input.
func (v *MessageView) HandleInput(ev InputEvent) bool {
	return false
}

// Update expires old messages.
func (v *MessageView) Update(dt float64) {
	var active []message
	for _, m := range v.messages {
		m.timeLeft -= dt
		if m.timeLeft > 0 {
			active = append(active, m)
		}
	}
	v.messages = active
}

// Draw renders the messages as a stacked list.
func (v *MessageView) Draw(dst render.Image) {
	for i, m := range v.messages {
		v.renderer.DrawText(dst, m.text, v.x, v.y+i*16, colorText, 1.0)
	}
}
