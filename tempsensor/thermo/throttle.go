package thermo

import (
	"errors"
	"time"
)

// Throttled wraps a slow sensor with throttling and caching. The sensor is
// queried at most once per interval; reads in between return the cached
// value.
type Throttled struct {
	src             Source           // Underlying sensor.
	now             func() time.Time // Clock, replaceable in tests.
	cachedTemp      float32          // Last successfully read temperature.
	lastReadTime    time.Time        // Time of the last successful read.
	minReadInterval time.Duration    // Minimum time between sensor reads.
	hasValidCache   bool             // Whether cachedTemp holds a reading.
}

// NewThrottled returns a Throttled reading src at most once per interval.
func NewThrottled(src Source, interval time.Duration) *Throttled {
	return &Throttled{
		src:             src,
		now:             time.Now,
		minReadInterval: interval,
	}
}

// ReadMeasurement returns the temperature, whether it came from the cache,
// and any error from the sensor. On error the cached value is returned if
// there is one.
func (t *Throttled) ReadMeasurement() (temp float32, isCached bool, err error) {
	now := t.now()

	if t.hasValidCache && now.Sub(t.lastReadTime) < t.minReadInterval {
		return t.cachedTemp, true, nil
	}

	temp, err = t.src.ReadCelsius()
	if err != nil {
		if t.hasValidCache {
			return t.cachedTemp, true, err
		}
		return 0, false, err
	}

	t.cachedTemp = temp
	t.lastReadTime = now
	t.hasValidCache = true
	return temp, false, nil
}

// ReadCelsius implements Source. A failed refresh with a cached value
// returns that value and an error matching ErrStale.
func (t *Throttled) ReadCelsius() (float32, error) {
	temp, cached, err := t.ReadMeasurement()
	if err != nil && cached {
		return temp, errors.Join(ErrStale, err)
	}
	return temp, err
}
