// Package stick reads a two-axis analog joystick and lays its readings out
// for the display.
package stick

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/harveysanders/picooled/console"
	"github.com/harveysanders/picooled/display"
)

// Screen layout. Readings are drawn at fixed positions and the area around
// them is blanked each frame instead of clearing the whole panel.
var (
	xPos   = display.Line{X: 30, Y: 30}
	yPos   = display.Line{X: 30, Y: 45}
	region = display.Rect{X: 30, Y: 10, W: 50, H: 50}
)

// Period is the sampling interval of the joystick program.
const Period = 500 * time.Millisecond

// Axis is an analog input. machine.ADC satisfies it.
type Axis interface {
	// Get returns the reading scaled to 16 bits.
	Get() uint16
}

// Sample is one pair of 12-bit readings, 0-4095.
type Sample struct {
	X, Y uint16
}

// Reader samples the X and Y axes.
type Reader struct {
	x, y Axis
}

// NewReader returns a Reader for the given axes.
func NewReader(x, y Axis) *Reader {
	return &Reader{x: x, y: y}
}

// Read samples X then Y. The ADC is 12 bits wide; Get scales to 16.
func (r *Reader) Read() Sample {
	return Sample{
		X: r.x.Get() >> 4,
		Y: r.y.Get() >> 4,
	}
}

// Message returns the frame for s.
func (s Sample) Message() display.Message {
	x, y := xPos, yPos
	x.Text = strconv.FormatUint(uint64(s.X), 10)
	y.Text = strconv.FormatUint(uint64(s.Y), 10)
	return display.Message{
		Region: region,
		Lines:  []display.Line{x, y},
	}
}

// Stream samples r on every tick and queues the frame on out until tick is
// closed. Frames that do not fit in out are dropped; the count is returned.
func Stream(r *Reader, tick <-chan time.Time, out chan<- display.Message, logger *slog.Logger) (dropped int) {
	logger = console.OrDiscard(logger)
	for range tick {
		s := r.Read()
		logger.Debug("joystick:sample", slog.Uint64("x", uint64(s.X)), slog.Uint64("y", uint64(s.Y)))
		if !display.Send(out, s.Message()) {
			dropped++
			logger.Warn("joystick:frame-dropped", slog.Int("dropped", dropped))
		}
	}
	return dropped
}
