package arena

import "time"

// Rand is the randomness the simulation needs. *rand.Rand satisfies it;
// tests substitute a scripted source.
type Rand interface {
	Float64() float64
}

// Clock supplies wall time to Session.Update.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// uniform samples [lo, hi). An empty or inverted range yields its midpoint.
func uniform(rng Rand, lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + rng.Float64()*(hi-lo)
}

// sign returns -1 or 1 with equal probability.
func sign(rng Rand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}
