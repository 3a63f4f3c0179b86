package display

import (
	"log/slog"
	"sync/atomic"

	"github.com/harveysanders/picooled/console"
)

// Handler renders messages from a channel. It lets a sampling loop hand off
// frames without waiting on the I2C bus.
//
// Example usage:
//
//	frames := make(chan display.Message, 4)
//	handler := display.NewHandler(oled, frames, logger)
//	go handler.Run()
//
//	if !display.Send(frames, display.Text(30, 30, "Temp: 27.00 C")) {
//	    // Channel full - frame dropped
//	}
type Handler struct {
	presenter Presenter
	messages  <-chan Message
	logger    *slog.Logger
	failed    uint32
}

// NewHandler creates a handler that draws on p.
func NewHandler(p Presenter, messages <-chan Message, logger *slog.Logger) *Handler {
	return &Handler{
		presenter: p,
		messages:  messages,
		logger:    console.OrDiscard(logger),
	}
}

// Run processes messages until the channel is closed.
// Run should be called in a separate goroutine.
func (h *Handler) Run() {
	for msg := range h.messages {
		h.display(msg)
	}
}

// Failed returns the number of frames that could not be presented.
func (h *Handler) Failed() uint32 { return atomic.LoadUint32(&h.failed) }

// display renders msg. A failed flush drops the frame; the next message
// redraws from scratch anyway.
func (h *Handler) display(msg Message) {
	if err := Render(h.presenter, msg); err != nil {
		atomic.AddUint32(&h.failed, 1)
		h.logger.Warn("display:present-failed", slog.String("err", err.Error()))
	}
}

// Send queues msg without blocking and reports whether it was accepted.
func Send(ch chan<- Message, msg Message) bool {
	select {
	case ch <- msg:
		return true
	default:
		return false
	}
}
