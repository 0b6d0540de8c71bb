package timens

import (
	"fmt"

	"github.com/pkg/errors"
)

// Ofday is a wall-clock time of day, represented as a nanosecond count
// since midnight. The zero value is midnight, [StartOfDay].
//
// Values run through the 24-hour day [0h, 24h), plus one extra
// representable second [24h, 24h+1s) admitting the leap-second notation
// "23:59:60". Ofday knows nothing of zones or DST; a day is exactly 24
// hours.
type Ofday struct {
	ns int64
}

// ofdayLimit bounds the representation: a 24-hour day plus the leap
// second.
const ofdayLimit = nanosPerDay + nanosPerSecond

var (
	// StartOfDay is midnight, 00:00:00.
	StartOfDay = Ofday{}

	// ApproximateEndOfDay is one nanosecond before the next midnight,
	// 23:59:59.999999999.
	ApproximateEndOfDay = Ofday{nanosPerDay - 1}
)

// ErrDayBoundary reports a time-of-day shift whose result leaves the
// 24-hour day. Landing exactly on the next midnight counts as leaving.
var ErrDayBoundary = errors.New("result outside the 24-hour day")

// SinceMidnight returns the time of day s past midnight. It errors when
// s is negative or at/past the representable limit of 24 hours plus a
// leap second.
func SinceMidnight(s Span) (Ofday, error) {
	if s.ns < 0 || s.ns >= ofdayLimit {
		return Ofday{}, errors.Errorf("span %s is not within a day", s)
	}
	return Ofday{s.ns}, nil
}

// SinceMidnight returns the time of day as a span past midnight.
func (o Ofday) SinceMidnight() Span {
	return Span{o.ns}
}

// Add returns the time of day s later. The result must stay inside the
// half-open day [00:00, 24:00): shifting to exactly the next midnight
// returns [ErrDayBoundary], as does any shift beyond it.
func (o Ofday) Add(s Span) (Ofday, error) {
	ns := o.ns + s.ns
	if ns < 0 || ns >= nanosPerDay {
		return Ofday{}, errors.Wrapf(ErrDayBoundary, "%s + %s", o, s)
	}
	return Ofday{ns}, nil
}

// Sub returns the time of day s earlier, with the same half-open day
// contract as [Ofday.Add].
func (o Ofday) Sub(s Span) (Ofday, error) {
	ns := o.ns - s.ns
	if ns < 0 || ns >= nanosPerDay {
		return Ofday{}, errors.Wrapf(ErrDayBoundary, "%s - %s", o, s)
	}
	return Ofday{ns}, nil
}

// Before reports whether o is earlier in the day than u.
func (o Ofday) Before(u Ofday) bool {
	return o.ns < u.ns
}

// After reports whether o is later in the day than u.
func (o Ofday) After(u Ofday) bool {
	return o.ns > u.ns
}

// Compare returns -1 when o is earlier than u, +1 when later, and 0
// when equal. Ofdays are also comparable with ==.
func (o Ofday) Compare(u Ofday) int {
	switch {
	case o.ns < u.ns:
		return -1
	case o.ns > u.ns:
		return +1
	}
	return 0
}

// ParseOfday parses a 24-hour wall-clock string: "HH:MM", "HH:MM:SS" or
// "HH:MM:SS.fffffffff". Hours run 00 through 23 and may drop the
// leading zero; minutes run 00-59; seconds run 00-60, where 60 is the
// leap-second notation. Fractional digits beyond the ninth round to the
// nearest nanosecond, ties away from zero.
//
// A leap second normalizes to exactly 60 whole seconds, discarding any
// fraction: "12:00:60.9" parses equal to "12:00:60", which is the same
// value as "12:01:00".
func ParseOfday(s string) (Ofday, error) {
	o, ok := parseOfday(s)
	if !ok {
		return Ofday{}, errors.Errorf("could not parse %q as a time of day", s)
	}
	return o, nil
}

func parseOfday(s string) (Ofday, bool) {
	hour, s, ok := scanDigits(s, 1, 2)
	if !ok || hour > 23 || len(s) == 0 || s[0] != ':' {
		return Ofday{}, false
	}
	min, s, ok := scanDigits(s[1:], 2, 2)
	if !ok || min > 59 {
		return Ofday{}, false
	}

	var sec int
	var frac int64
	if len(s) > 0 {
		if s[0] != ':' {
			return Ofday{}, false
		}
		sec, s, ok = scanDigits(s[1:], 2, 2)
		if !ok || sec > 60 {
			return Ofday{}, false
		}
		if len(s) > 0 {
			if s[0] != '.' {
				return Ofday{}, false
			}
			frac, ok = scanFraction(s[1:])
			if !ok {
				return Ofday{}, false
			}
			s = ""
		}
	}
	if len(s) != 0 {
		return Ofday{}, false
	}

	if sec == 60 {
		// a leap second is exactly 60 whole seconds
		frac = 0
	}

	ns := int64(hour)*nanosPerHour + int64(min)*nanosPerMinute + int64(sec)*nanosPerSecond + frac
	return Ofday{ns}, true
}

// scanDigits reads between lo and hi leading ASCII digits, returning
// the value and the remainder.
func scanDigits(s string, lo, hi int) (int, string, bool) {
	n, i := 0, 0
	for i < len(s) && i < hi && '0' <= s[i] && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i < lo {
		return 0, s, false
	}
	return n, s[i:], true
}

// scanFraction reads fractional-second digits as nanoseconds. Digits
// beyond the ninth round the value to the nearest nanosecond, ties away
// from zero.
func scanFraction(s string) (int64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	var ns int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		switch {
		case i < 9:
			ns = ns*10 + int64(c-'0')
		case i == 9 && c >= '5':
			ns++
		}
	}
	for i := len(s); i < 9; i++ {
		ns *= 10
	}
	return ns, true
}

// String renders the time of day as "HH:MM:SS", with any fractional
// nanoseconds in trimmed groups of three digits, as in "13:00:00.020"
// or "13:00:00.000000500". Values at or past 24 hours render in
// leap-second notation, "23:59:60" onward.
func (o Ofday) String() string {
	if o.ns >= nanosPerDay {
		return "23:59:60" + fracString(o.ns-nanosPerDay)
	}
	p := Span{o.ns}.toParts()
	return fmt.Sprintf("%02d:%02d:%02d", p.hour, p.min, p.sec) + fracString(o.ns%nanosPerSecond)
}

// fracString renders sub-second nanoseconds as a dotted fraction in the
// shortest group of three digits, or "" for zero.
func fracString(ns int64) string {
	switch {
	case ns == 0:
		return ""
	case ns%nanosPerMilli == 0:
		return fmt.Sprintf(".%03d", ns/nanosPerMilli)
	case ns%nanosPerMicro == 0:
		return fmt.Sprintf(".%06d", ns/nanosPerMicro)
	}
	return fmt.Sprintf(".%09d", ns)
}
