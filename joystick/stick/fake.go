package stick

// FakeAxis returns queued readings in order, then repeats the last one.
type FakeAxis struct {
	Readings []uint16
	Reads    int
}

// Get returns the next queued reading.
func (a *FakeAxis) Get() uint16 {
	if len(a.Readings) == 0 {
		return 0
	}
	i := a.Reads
	if i >= len(a.Readings) {
		i = len(a.Readings) - 1
	}
	a.Reads++
	return a.Readings[i]
}
