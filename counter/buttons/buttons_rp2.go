//go:build rp2040 || rp2350

package buttons

import (
	"errors"
	"machine"
	"strconv"

	"github.com/harveysanders/picooled/counter/countdown"
)

// Attach configures pinA and pinB as pulled-up inputs and routes their
// falling edges to sink, timestamped by clock.
func Attach(pinA, pinB machine.Pin, sink countdown.EdgeSink, clock countdown.Clock) error {
	r := NewRouter(sink, int(pinA), int(pinB))
	for _, pin := range []machine.Pin{pinA, pinB} {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		err := pin.SetInterrupt(machine.PinFalling, func(p machine.Pin) {
			r.Edge(int(p), clock())
		})
		if err != nil {
			return errors.New("set interrupt on GP" + strconv.Itoa(int(pin)) + ":" + err.Error())
		}
	}
	return nil
}

