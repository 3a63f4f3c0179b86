//go:build rp2040 || rp2350

// Command tempsensor shows the temperature on the OLED once a second.
//
// Build options (ldflags):
//
//	-X main.sensorKind=dht11     read a DHT11 on GP22 instead of the on-die sensor
//	-X main.displayKind=lcd1602
package main

import (
	"errors"
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/picooled/console"
	"github.com/harveysanders/picooled/display"
	"github.com/harveysanders/picooled/fault"
	"github.com/harveysanders/picooled/tempsensor/thermo"
)

var (
	sensorKind  = "internal"
	displayKind = display.KindOLED
)

const dhtPin = machine.GP22

func main() {
	// Wait for the USB console to attach.
	time.Sleep(2 * time.Second)

	logger, err := console.New()
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	if err != nil {
		fault.Halt(logger, led, "open console", slog.Any("reason", err))
	}

	src, err := openSensor(sensorKind)
	if err != nil {
		fault.Halt(logger, led, "open sensor", slog.Any("reason", err))
	}

	presenter, err := display.OpenBoard(displayKind)
	if err != nil {
		fault.Halt(logger, led, "open display", slog.String("kind", displayKind), slog.Any("reason", err))
	}

	frames := make(chan display.Message, 2)
	go display.NewHandler(presenter, frames, logger).Run()

	ticker := time.NewTicker(thermo.Period)
	defer ticker.Stop()

	logger.Info("tempsensor:running", slog.String("sensor", sensorKind), slog.Duration("period", thermo.Period))
	thermo.Stream(src, ticker.C, frames, logger)
}

func openSensor(kind string) (thermo.Source, error) {
	switch kind {
	case "internal", "":
		machine.InitADC()
		return thermo.Internal{}, nil
	case "dht11":
		return thermo.NewDHT(dhtPin), nil
	default:
		return nil, errors.New("unknown sensor kind: " + kind)
	}
}
