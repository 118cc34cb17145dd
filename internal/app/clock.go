package app

import "time"

// Timer is the subset of *time.Timer the runner needs.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// Clock lets tests control deadlines and timestamps.
type Clock interface {
	NewTimer(d time.Duration) Timer
	Now() time.Time
}

// SystemClock is the default Clock backed by the time package.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) NewTimer(d time.Duration) Timer {
	return systemTimer{t: time.NewTimer(d)}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type systemTimer struct {
	t *time.Timer
}

func (s systemTimer) C() <-chan time.Time { return s.t.C }

func (s systemTimer) Stop() bool { return s.t.Stop() }
