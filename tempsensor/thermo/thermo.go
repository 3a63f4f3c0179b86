// Package thermo reads temperature sources and formats readings for the
// display.
package thermo

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/harveysanders/picooled/console"
	"github.com/harveysanders/picooled/display"
)

// Period is the display refresh interval of the temperature program.
const Period = time.Second

// Where the reading is drawn.
const textX, textY = 30, 30

// ErrStale is joined with the read error when a cached value is returned
// because the sensor could not be refreshed.
var ErrStale = errors.New("thermo: stale reading")

// Source returns a temperature in degrees Celsius.
type Source interface {
	ReadCelsius() (float32, error)
}

// AppendCelsius appends "Temp: 27.00 C" for c to buf.
func AppendCelsius(buf []byte, c float32) []byte {
	buf = append(buf, "Temp: "...)
	buf = strconv.AppendFloat(buf, float64(c), 'f', 2, 32)
	return append(buf, " C"...)
}

// Stream reads src on every tick and queues a full-screen frame on out until
// tick is closed. Failed reads are logged and skipped; stale readings are
// still shown. Frames that do not fit in out are dropped; the count is
// returned.
func Stream(src Source, tick <-chan time.Time, out chan<- display.Message, logger *slog.Logger) (dropped int) {
	logger = console.OrDiscard(logger)
	// Preallocated so formatting doesn't grow the heap.
	buf := make([]byte, 0, 20)
	for range tick {
		c, err := src.ReadCelsius()
		switch {
		case errors.Is(err, ErrStale):
			logger.Warn("thermo:stale", slog.String("err", err.Error()))
		case err != nil:
			logger.Warn("thermo:read-failed", slog.String("err", err.Error()))
			continue
		}

		buf = AppendCelsius(buf[:0], c)
		logger.Debug("thermo:sample", slog.String("text", string(buf)))
		if !display.Send(out, display.Text(textX, textY, string(buf))) {
			dropped++
			logger.Warn("thermo:frame-dropped", slog.Int("dropped", dropped))
		}
	}
	return dropped
}
