package lifecycle

import "time"

// Clock supplies the current time. Injected so tick timing is controllable in
// tests; the engine assumes successive readings are non-decreasing.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func NewSystemClock() Clock {
	return systemClock{}
}
