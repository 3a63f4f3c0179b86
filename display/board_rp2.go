//go:build rp2040 || rp2350

package display

import (
	"errors"
	"machine"
)

// Display kinds selectable at link time.
const (
	KindOLED    = "oled"
	KindLCD1602 = "lcd1602"
)

// I2C1 wiring shared by the demo programs.
const (
	busFrequency = 400 * machine.KHz
	sdaPin       = machine.GP14
	sclPin       = machine.GP15
)

// OpenBoard configures I2C1 and returns the presenter for kind.
func OpenBoard(kind string) (Presenter, error) {
	bus := machine.I2C1
	err := bus.Configure(machine.I2CConfig{
		Frequency: busFrequency,
		SDA:       sdaPin,
		SCL:       sclPin,
	})
	if err != nil {
		return nil, errors.New("configure I2C:" + err.Error())
	}

	switch kind {
	case KindOLED, "":
		oled, err := NewOLED(bus, OLEDConfig{})
		if err != nil {
			return nil, err
		}
		return oled, nil
	case KindLCD1602:
		lcd, err := NewCharLCD(bus)
		if err != nil {
			return nil, err
		}
		return lcd, nil
	default:
		return nil, errors.New("unknown display kind: " + kind)
	}
}
