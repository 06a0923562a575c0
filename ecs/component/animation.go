package component

import "time"

// Timer is a repeating countdown measured in whole nanoseconds.
type Timer struct {
	Period  time.Duration
	Elapsed time.Duration
}

func NewTimer(period time.Duration) Timer {
	return Timer{Period: period}
}

// Tick advances the timer by dt and returns how many periods completed.
// Leftover time carries into the next period.
func (t *Timer) Tick(dt time.Duration) int {
	if t.Period <= 0 || dt <= 0 {
		return 0
	}
	t.Elapsed += dt
	if t.Elapsed < t.Period {
		return 0
	}
	fired := int(t.Elapsed / t.Period)
	t.Elapsed %= t.Period
	return fired
}

// Animation steps through the frames of the entity's Sprite sheet.
type Animation struct {
	Timer Timer
	Frame int
}

var AnimationComponent = NewComponent[Animation]()
