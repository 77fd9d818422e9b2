package rng

import "time"

// ClockSeed returns the number of milliseconds between the Unix epoch and t.  Times before the
// epoch wrap around, which still yields a usable seed.
func ClockSeed(t time.Time) uint64 {
	return uint64(t.UnixNano() / int64(time.Millisecond))
}

// GenerateSeed builds a seed from the current wall clock time
func GenerateSeed() uint64 {
	return ClockSeed(time.Now())
}
