// Package fault reports unrecoverable start-up errors: the error is logged
// once per pulse while the on-board LED blinks, forever.
package fault

import (
	"log/slog"
	"time"

	"github.com/harveysanders/picooled/console"
)

// Pulse timing. One pulse takes a second so the log repeats at 1 Hz.
const (
	OnTime  = 200 * time.Millisecond
	OffTime = 800 * time.Millisecond
)

// LED is the part of machine.Pin the blinker drives.
type LED interface {
	High()
	Low()
}

// Blinker logs a message and blinks an LED.
type Blinker struct {
	led    LED
	logger *slog.Logger
	sleep  func(time.Duration)
}

// NewBlinker returns a Blinker. led may be nil when no LED is available.
func NewBlinker(logger *slog.Logger, led LED) *Blinker {
	return &Blinker{
		led:    led,
		logger: console.OrDiscard(logger),
		sleep:  time.Sleep,
	}
}

// Pulse logs msg at Error and blinks the LED once.
func (b *Blinker) Pulse(msg string, args ...any) {
	b.logger.Error(msg, args...)
	if b.led != nil {
		b.led.High()
	}
	b.sleep(OnTime)
	if b.led != nil {
		b.led.Low()
	}
	b.sleep(OffTime)
}

// Halt never returns.
func Halt(logger *slog.Logger, led LED, msg string, args ...any) {
	b := NewBlinker(logger, led)
	for {
		b.Pulse(msg, args...)
	}
}
