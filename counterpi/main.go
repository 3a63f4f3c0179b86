//go:build linux && !baremetal

// Command counterpi runs the countdown click-counter on a Raspberry Pi single
// board computer. Buttons A and B are read from the GPIO character device;
// frames are written to the log instead of an OLED.
//
// Build options (ldflags):
//
//	-X main.debounceScope=per-button
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/harveysanders/picooled/console"
	"github.com/harveysanders/picooled/counter/buttons"
	"github.com/harveysanders/picooled/counter/countdown"
	"github.com/harveysanders/picooled/display"
)

var debounceScope = "shared"

func main() {
	logger := console.NewLogger(os.Stderr, console.Level())
	if err := run(logger); err != nil {
		logger.Error("counterpi:fatal", slog.Any("reason", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	scope, err := countdown.ParseScope(debounceScope)
	if err != nil {
		return err
	}

	cfg := countdown.DefaultConfig()
	cfg.Scope = scope
	dev := countdown.NewDevice(cfg, display.NewLogPresenter(logger), logger)

	w, err := buttons.Watch(buttons.DefaultChip, buttons.DefaultPinA, buttons.DefaultPinB, dev.Edges())
	if err != nil {
		return fmt.Errorf("watch buttons: %w", err)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dev.Greet()
	err = dev.Run(ctx, buttons.KernelClock())
	if errors.Is(err, context.Canceled) {
		logger.Info("counterpi:shutdown", slog.String("state", dev.Snapshot().State.String()))
		return nil
	}
	return err
}
