package bgs

import "github.com/jonboulle/clockwork"

// clock supplies the date used when a Request carries a zero Date.
// Production code uses the real clock; tests inject a fake via SetClock
// for deterministic query dates.
var clock = clockwork.NewRealClock()

// SetClock swaps the package time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
