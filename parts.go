package timens

// parts is a span decomposed into calendar-like components, all
// non-negative with the sign carried separately. It backs formatting
// and the range checks on parsed values.
type parts struct {
	neg  bool
	hour int64
	min  int
	sec  int
	ms   int
	us   int
	ns   int
}

// toParts decomposes the span. Exact inverse of [spanOfParts] for
// values within [MinSpan, MaxSpan].
func (s Span) toParts() parts {
	ns := s.ns
	p := parts{neg: ns < 0}
	if p.neg {
		ns = -ns
	}
	p.hour = ns / nanosPerHour
	ns %= nanosPerHour
	p.min = int(ns / nanosPerMinute)
	ns %= nanosPerMinute
	p.sec = int(ns / nanosPerSecond)
	ns %= nanosPerSecond
	p.ms = int(ns / nanosPerMilli)
	ns %= nanosPerMilli
	p.us = int(ns / nanosPerMicro)
	p.ns = int(ns % nanosPerMicro)
	return p
}

// spanOfParts reassembles a span from its components. Overflow wraps
// around silently, like all span arithmetic.
func spanOfParts(p parts) Span {
	ns := p.hour*nanosPerHour +
		int64(p.min)*nanosPerMinute +
		int64(p.sec)*nanosPerSecond +
		int64(p.ms)*nanosPerMilli +
		int64(p.us)*nanosPerMicro +
		int64(p.ns)
	if p.neg {
		ns = -ns
	}
	return Span{ns}
}
