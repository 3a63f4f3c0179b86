//go:build rp2040 || rp2350

// Command joystick shows the X and Y readings of an analog joystick on the
// OLED, twice a second.
package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/picooled/console"
	"github.com/harveysanders/picooled/display"
	"github.com/harveysanders/picooled/fault"
	"github.com/harveysanders/picooled/joystick/stick"
)

var displayKind = display.KindOLED

func main() {
	// Wait for the USB console to attach.
	time.Sleep(2 * time.Second)

	logger, err := console.New()
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	if err != nil {
		fault.Halt(logger, led, "open console", slog.Any("reason", err))
	}

	machine.InitADC()
	x := machine.ADC{Pin: machine.ADC0} // GP26
	x.Configure(machine.ADCConfig{})
	y := machine.ADC{Pin: machine.ADC1} // GP27
	y.Configure(machine.ADCConfig{})

	presenter, err := display.OpenBoard(displayKind)
	if err != nil {
		fault.Halt(logger, led, "open display", slog.String("kind", displayKind), slog.Any("reason", err))
	}

	frames := make(chan display.Message, 2)
	go display.NewHandler(presenter, frames, logger).Run()

	ticker := time.NewTicker(stick.Period)
	defer ticker.Stop()

	logger.Info("joystick:running", slog.Duration("period", stick.Period))
	stick.Stream(stick.NewReader(x, y), ticker.C, frames, logger)
}
