//go:build rp2040 || rp2350

// Command counter is a countdown click-counter: press A to start a countdown
// from 9, press B to count clicks until it reaches zero.
//
// Build options (ldflags):
//
//	-X main.debounceScope=per-button
//	-X main.displayKind=lcd1602
package main

import (
	"context"
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/picooled/console"
	"github.com/harveysanders/picooled/counter/buttons"
	"github.com/harveysanders/picooled/counter/countdown"
	"github.com/harveysanders/picooled/display"
	"github.com/harveysanders/picooled/fault"
)

var (
	debounceScope = "shared"
	displayKind   = display.KindOLED
)

func main() {
	// Wait for the USB console to attach.
	time.Sleep(2 * time.Second)

	logger, err := console.New()
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	if err != nil {
		fault.Halt(logger, led, "open console", slog.Any("reason", err))
	}

	scope, err := countdown.ParseScope(debounceScope)
	if err != nil {
		fault.Halt(logger, led, "parse debounce scope", slog.Any("reason", err))
	}

	presenter, err := display.OpenBoard(displayKind)
	if err != nil {
		fault.Halt(logger, led, "open display", slog.String("kind", displayKind), slog.Any("reason", err))
	}

	cfg := countdown.DefaultConfig()
	cfg.Scope = scope
	dev := countdown.NewDevice(cfg, presenter, logger)

	clock := countdown.Uptime()
	err = buttons.Attach(machine.Pin(buttons.DefaultPinA), machine.Pin(buttons.DefaultPinB), dev.Edges(), clock)
	if err != nil {
		fault.Halt(logger, led, "attach buttons", slog.Any("reason", err))
	}

	logger.Info("counter:ready",
		slog.String("scope", scope.String()),
		slog.String("display", displayKind),
	)
	dev.Greet()
	dev.Run(context.Background(), clock)
}
