//go:build rp2040 || rp2350

package thermo

import (
	"errors"
	"machine"
	"time"

	"tinygo.org/x/drivers/dht"
)

// DHTInterval is the DHT11's minimum time between reads.
const DHTInterval = 2 * time.Second

type dhtSource struct {
	dev dht.Device
}

// NewDHT returns a DHT11 on pin, throttled to its minimum read interval.
func NewDHT(pin machine.Pin) *Throttled {
	return NewThrottled(&dhtSource{dev: dht.New(pin, dht.DHT11)}, DHTInterval)
}

func (s *dhtSource) ReadCelsius() (float32, error) {
	if err := s.dev.ReadMeasurements(); err != nil {
		return 0, errors.New("dht read:" + err.Error())
	}
	temp, err := s.dev.TemperatureFloat(dht.C)
	if err != nil {
		return 0, errors.New("dht temperature:" + err.Error())
	}
	return temp, nil
}
