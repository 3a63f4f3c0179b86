package thermo

// FakeSource returns queued readings in order. Once they run out, the last
// reading repeats.
type FakeSource struct {
	Readings []Reading
	Calls    int
}

// Reading is one queued FakeSource result.
type Reading struct {
	Celsius float32
	Err     error
}

// ReadCelsius returns the next queued reading.
func (s *FakeSource) ReadCelsius() (float32, error) {
	if len(s.Readings) == 0 {
		return 0, nil
	}
	i := s.Calls
	if i >= len(s.Readings) {
		i = len(s.Readings) - 1
	}
	s.Calls++
	return s.Readings[i].Celsius, s.Readings[i].Err
}
