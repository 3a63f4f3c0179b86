//go:build rp2040 || rp2350

package thermo

import "machine"

// Internal is the RP2040 on-die temperature sensor (ADC channel 4).
type Internal struct{}

// ReadCelsius converts the sensor voltage with T = 27 - (V - 0.706)/0.001721.
func (Internal) ReadCelsius() (float32, error) {
	return float32(machine.ReadTemperature()) / 1000, nil
}
