//go:build !linux && !baremetal

package buttons

import (
	"errors"

	"github.com/harveysanders/picooled/counter/countdown"
)

// DefaultChip is the GPIO character device of the Raspberry Pi header.
const DefaultChip = "gpiochip0"

// Watcher is not available on non-Linux platforms.
type Watcher struct{}

// Watch returns an error on non-Linux platforms.
func Watch(chip string, pinA, pinB int, sink countdown.EdgeSink) (*Watcher, error) {
	return nil, errors.New("buttons: not supported on this platform (requires Linux)")
}

// Close is a no-op on non-Linux platforms.
func (w *Watcher) Close() error {
	return nil
}
