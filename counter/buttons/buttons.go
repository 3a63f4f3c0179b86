// Package buttons delivers falling edges from the counter's push buttons to a
// countdown.EdgeSink.
//
// On the Pico the edges come from pin interrupts (buttons_rp2.go). On a Linux
// single-board computer they come from the GPIO character device with kernel
// timestamps (buttons_linux.go). Both wire the buttons active-low with
// pull-ups, so a press is a falling edge.
package buttons

import (
	"time"

	"github.com/harveysanders/picooled/counter/countdown"
)

// GPIO numbers of the two buttons on the demo board.
const (
	DefaultPinA = 5
	DefaultPinB = 6
)

// Router maps GPIO numbers to buttons and forwards edges to a sink.
type Router struct {
	sink       countdown.EdgeSink
	pinA, pinB int
}

// NewRouter returns a Router for buttons wired to pinA and pinB.
func NewRouter(sink countdown.EdgeSink, pinA, pinB int) Router {
	return Router{sink: sink, pinA: pinA, pinB: pinB}
}

// Edge forwards a falling edge on pin at ts. Edges on other pins are
// ignored. It is called from interrupt context and must not block.
func (r Router) Edge(pin int, ts time.Duration) bool {
	switch pin {
	case r.pinA:
		return r.sink.OnEdge(countdown.ButtonA, ts)
	case r.pinB:
		return r.sink.OnEdge(countdown.ButtonB, ts)
	default:
		return false
	}
}
