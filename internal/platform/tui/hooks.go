package tui

import "github.com/vovakirdan/tui-spider/internal/engine"

// hookSink receives the engine's fire-and-forget callbacks. All engine
// calls happen synchronously inside Update, so the model drains the
// sink right after each call.
type hookSink struct {
	message string
	msgErr  bool
	hasMsg  bool
	won     bool
}

func (h *hookSink) StateChanged() {}

func (h *hookSink) Message(text string, isErr bool) {
	h.message = text
	h.msgErr = isErr
	h.hasMsg = true
}

func (h *hookSink) Win() {
	h.won = true
}

func (h *hookSink) PlaySound(engine.Sound) {
	// No audio backend in the terminal; cues are surfaced as messages.
}

// takeMessage returns and clears the pending message, if any.
func (h *hookSink) takeMessage() (string, bool, bool) {
	if !h.hasMsg {
		return "", false, false
	}
	h.hasMsg = false
	return h.message, h.msgErr, true
}

var _ engine.Hooks = (*hookSink)(nil)
