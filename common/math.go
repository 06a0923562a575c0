package common

import (
	"math"
	"time"
)

// MaxDelta caps a single tick so a stalled frame cannot teleport bodies.
const MaxDelta = 250 * time.Millisecond

// Clamp limits v to [lo, hi]. NaN is mapped to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SanitizeDelta turns elapsed seconds into a tick delta in [0, MaxDelta].
func SanitizeDelta(seconds float64) time.Duration {
	if !Finite(seconds) || seconds <= 0 {
		return 0
	}
	d := time.Duration(seconds * float64(time.Second))
	if d > MaxDelta || d < 0 {
		return MaxDelta
	}
	return d
}

// ClampDelta limits an already measured duration to [0, MaxDelta].
func ClampDelta(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > MaxDelta {
		return MaxDelta
	}
	return d
}
