package timens

import "math/rand/v2"

// Random value generators, mainly for tests and simulation. Each takes
// an explicit source so callers can seed deterministically. A nil rnd
// draws from the process-wide source, which is safe for concurrent use
// but not reproducible.

// RandomSpan returns a span uniformly distributed across
// [MinSpan, MaxSpan].
func RandomSpan(rnd *rand.Rand) Span {
	return Span{randomInt64(rnd, MinSpan.ns, MaxSpan.ns)}
}

// RandomTime returns a time uniformly distributed across
// [MinTime, MaxTime].
func RandomTime(rnd *rand.Rand) Time {
	return Time{randomInt64(rnd, MinTime.ns, MaxTime.ns)}
}

// RandomOfday returns a time of day uniformly distributed across the
// 24-hour day, [StartOfDay, 24h).
func RandomOfday(rnd *rand.Rand) Ofday {
	return Ofday{randomInt64(rnd, 0, nanosPerDay-1)}
}

// randomInt64 draws uniformly from [lo, hi], both inclusive.
func randomInt64(rnd *rand.Rand, lo, hi int64) int64 {
	// hi-lo can overflow int64 across the full span range; the width is
	// exact once in uint64.
	n := uint64(hi-lo) + 1
	var v uint64
	if rnd != nil {
		v = rnd.Uint64N(n)
	} else {
		v = rand.Uint64N(n)
	}
	return int64(uint64(lo) + v)
}
