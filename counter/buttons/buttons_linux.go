//go:build linux && !baremetal

package buttons

import (
	"fmt"
	"time"

	"github.com/warthog618/go-gpiocdev"
	"golang.org/x/sys/unix"

	"github.com/harveysanders/picooled/counter/countdown"
)

// DefaultChip is the GPIO character device of the Raspberry Pi header.
const DefaultChip = "gpiochip0"

// Watcher holds the requested button lines.
type Watcher struct {
	lines *gpiocdev.Lines
}

// Watch requests pinA and pinB on chip as pulled-up inputs and routes their
// falling edges to sink. Timestamps are the kernel's monotonic event times.
func Watch(chip string, pinA, pinB int, sink countdown.EdgeSink) (*Watcher, error) {
	r := NewRouter(sink, pinA, pinB)
	lines, err := gpiocdev.RequestLines(chip, []int{pinA, pinB},
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithFallingEdge,
		gpiocdev.WithEventHandler(func(evt gpiocdev.LineEvent) {
			r.Edge(evt.Offset, evt.Timestamp)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("request lines %d,%d on %s: %w", pinA, pinB, chip, err)
	}
	return &Watcher{lines: lines}, nil
}

// Close releases the lines, restoring them to pulled-up inputs without edge
// detection.
func (w *Watcher) Close() error {
	var errs []error
	if err := w.lines.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullUp); err != nil {
		errs = append(errs, fmt.Errorf("reconfigure lines: %w", err))
	}
	if err := w.lines.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close lines: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// KernelClock returns CLOCK_MONOTONIC, the base of the line event
// timestamps, so the loop and the edges agree on time.
func KernelClock() countdown.Clock {
	return func() time.Duration {
		var ts unix.Timespec
		if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
			return 0
		}
		return time.Duration(ts.Nano())
	}
}
