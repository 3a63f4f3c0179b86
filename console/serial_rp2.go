//go:build rp2040 || rp2350

package console

import (
	"errors"
	"io"
	"log/slog"
	"machine"

	"github.com/jangala-dev/tinygo-uartx/uartx"
)

const uartBaud = 115200

// Open returns the writer for the configured port. USB CDC needs no setup;
// uart0 is brought up on GP0 (TX) and GP1 (RX).
func Open() (io.Writer, error) {
	switch port {
	case PortUART0:
		err := uartx.UART0.Configure(uartx.UARTConfig{
			BaudRate: uartBaud,
			TX:       machine.UART0_TX_PIN,
			RX:       machine.UART0_RX_PIN,
		})
		if err != nil {
			return nil, errors.New("uart0 configure:" + err.Error())
		}
		return uartx.UART0, nil
	case PortUSB, "":
		return machine.Serial, nil
	default:
		return nil, errors.New("unknown console port: " + port)
	}
}

// New opens the configured port and returns a logger on it. If the port
// cannot be opened the logger falls back to USB so the error is still visible.
func New() (*slog.Logger, error) {
	w, err := Open()
	if err != nil {
		return NewLogger(machine.Serial, Level()), err
	}
	return NewLogger(w, Level()), nil
}
