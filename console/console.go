// Package console builds the structured logger shared by the firmware programs
// and selects which serial port carries it.
//
// The port and level are link-time constants:
//
//	tinygo flash -target=pico -ldflags="-X github.com/harveysanders/picooled/console.port=uart0 -X github.com/harveysanders/picooled/console.level=debug" ./counter
package console

import (
	"io"
	"log/slog"
)

// Serial ports the logger can be routed to.
const (
	PortUSB   = "usb"
	PortUART0 = "uart0"
)

var (
	port  = PortUSB
	level = "info"
)

// Port returns the serial port name set via linker flags.
func Port() string { return port }

// Level returns the log level set via linker flags.
func Level() slog.Level { return ParseLevel(level) }

// ParseLevel maps a level name to a slog.Level. Unknown names map to Info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a text logger writing to w at the given level.
func NewLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(127), // Above every real level.
	}))
}

// OrDiscard returns logger, or a discarding logger when logger is nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
