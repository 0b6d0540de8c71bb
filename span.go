package timens

import (
	"math"
	"time"

	"github.com/pkg/errors"
	str2duration "github.com/xhit/go-str2duration/v2"
)

// Span is a length of time, represented as a signed 64-bit count of
// nanoseconds. The zero value is a zero-length span.
//
// Span has the same representation as [time.Duration] and converts
// exactly in both directions; see [FromDuration] and [Span.ToDuration].
// It differs in its arithmetic contract: operations wrap around
// silently on overflow, and [Span.Div] rounds toward negative infinity.
type Span struct {
	ns int64
}

const (
	nanosPerMicro  = int64(1000)
	nanosPerMilli  = 1000 * nanosPerMicro
	nanosPerSecond = 1000 * nanosPerMilli
	nanosPerMinute = 60 * nanosPerSecond
	nanosPerHour   = 60 * nanosPerMinute
	nanosPerDay    = 24 * nanosPerHour
)

// Common spans, equal to their plural constructors applied to 1.
var (
	Nanosecond  = Nanoseconds(1)
	Microsecond = Microseconds(1)
	Millisecond = Milliseconds(1)
	Second      = Seconds(1)
	Minute      = Minutes(1)
	Hour        = Hours(1)
	Day         = Hours(24)
)

// MinSpan and MaxSpan are the practical bounds of a Span, about 146
// years on either side of zero. They are documentation, not a
// constraint: nothing stops arithmetic from leaving the range, but
// values inside it have headroom and never wrap.
var (
	MinSpan = Span{-1 << 62}
	MaxSpan = Span{1 << 62}
)

// Float-seconds conversions hold microsecond precision only while the
// magnitude stays within 2^32 seconds, roughly 135 years. Beyond that
// the spacing between adjacent float64 values exceeds a microsecond and
// round-trips stop being stable.
const (
	floatWindowSeconds = 1 << 32
	floatWindowNanos   = floatWindowSeconds * nanosPerSecond
)

// ErrFloatRange reports a float-seconds conversion outside the window
// where float64 holds microsecond precision, roughly ±135 years.
var ErrFloatRange = errors.New("float seconds out of range")

// Nanoseconds returns a span of n nanoseconds.
func Nanoseconds(n int64) Span {
	return Span{n}
}

// Microseconds returns a span of n microseconds.
func Microseconds(n int64) Span {
	return Span{n * nanosPerMicro}
}

// Milliseconds returns a span of n milliseconds.
func Milliseconds(n int64) Span {
	return Span{n * nanosPerMilli}
}

// Seconds returns a span of n seconds.
func Seconds(n int64) Span {
	return Span{n * nanosPerSecond}
}

// Minutes returns a span of n minutes.
func Minutes(n int64) Span {
	return Span{n * nanosPerMinute}
}

// Hours returns a span of n hours. As with all span arithmetic,
// overflow wraps around silently.
func Hours(n int64) Span {
	return Span{n * nanosPerHour}
}

// IntNanoseconds returns a span of n nanoseconds, taking a native int.
func IntNanoseconds(n int) Span {
	return Span{int64(n)}
}

// FromDuration converts a [time.Duration] exactly; both are an int64
// count of nanoseconds.
func FromDuration(d time.Duration) Span {
	return Span{d.Nanoseconds()}
}

// FromSeconds converts float seconds to a span, rounding to the nearest
// microsecond with ties away from zero. It returns [ErrFloatRange] when
// sec is not finite or lies outside the precision window.
func FromSeconds(sec float64) (Span, error) {
	if math.IsNaN(sec) || sec < -floatWindowSeconds || sec > floatWindowSeconds {
		return Span{}, errors.Wrapf(ErrFloatRange, "%v sec", sec)
	}
	return FromSecondsUnchecked(sec), nil
}

// FromSecondsUnchecked is [FromSeconds] without the range check. The
// result is unspecified outside the precision window.
func FromSecondsUnchecked(sec float64) Span {
	return Span{int64(math.Round(sec*1e6)) * nanosPerMicro}
}

// Nanoseconds returns the span as an integer nanosecond count.
func (s Span) Nanoseconds() int64 {
	return s.ns
}

// Microseconds returns the span as an integer microsecond count,
// truncating toward zero.
func (s Span) Microseconds() int64 {
	return s.ns / nanosPerMicro
}

// Milliseconds returns the span as an integer millisecond count,
// truncating toward zero.
func (s Span) Milliseconds() int64 {
	return s.ns / nanosPerMilli
}

// IntSeconds returns the span as an integer second count, truncating
// toward zero.
func (s Span) IntSeconds() int64 {
	return s.ns / nanosPerSecond
}

// IntNanoseconds returns the span as a native int count of nanoseconds,
// or an error when the value does not fit. It cannot fail on 64-bit
// platforms.
func (s Span) IntNanoseconds() (int, error) {
	n := int(s.ns)
	if int64(n) != s.ns {
		return 0, errors.Errorf("span %s overflows int", s)
	}
	return n, nil
}

// Seconds returns the span as float seconds, rounded to the nearest
// microsecond, or [ErrFloatRange] outside the precision window.
// Round-tripping through [FromSeconds] is stable: converting a second
// time changes nothing.
func (s Span) Seconds() (float64, error) {
	if s.ns < -floatWindowNanos || s.ns > floatWindowNanos {
		return 0, errors.Wrapf(ErrFloatRange, "%s", s)
	}
	return float64(roundHalfAway(s.ns, nanosPerMicro)) / 1e6, nil
}

// ToDuration converts to a [time.Duration] exactly.
func (s Span) ToDuration() time.Duration {
	return time.Duration(s.ns)
}

// Add returns s + u. Overflow wraps around silently.
func (s Span) Add(u Span) Span {
	return Span{s.ns + u.ns}
}

// Sub returns s - u. Overflow wraps around silently.
func (s Span) Sub(u Span) Span {
	return Span{s.ns - u.ns}
}

// Neg returns -s.
func (s Span) Neg() Span {
	return Span{-s.ns}
}

// Abs returns the magnitude of s.
func (s Span) Abs() Span {
	if s.ns < 0 {
		return Span{-s.ns}
	}
	return s
}

// Scale returns s * n. Overflow wraps around silently.
func (s Span) Scale(n int64) Span {
	return Span{s.ns * n}
}

// Div returns s / u rounded toward negative infinity, so
// Seconds(7).Div(Seconds(2)) == 3 and Seconds(-7).Div(Seconds(2)) == -4.
// It panics when u is zero or negative.
func (s Span) Div(u Span) int64 {
	if u.ns <= 0 {
		panic("timens: Span.Div by non-positive span")
	}
	return floorDiv(s.ns, u.ns)
}

// Before reports whether s is shorter than u.
func (s Span) Before(u Span) bool {
	return s.ns < u.ns
}

// After reports whether s is longer than u.
func (s Span) After(u Span) bool {
	return s.ns > u.ns
}

// Compare returns -1 when s is shorter than u, +1 when longer, and 0
// when equal. Spans are also comparable with ==.
func (s Span) Compare(u Span) int {
	switch {
	case s.ns < u.ns:
		return -1
	case s.ns > u.ns:
		return +1
	}
	return 0
}

// IsZero reports whether s is the zero-length span.
func (s Span) IsZero() bool {
	return s.ns == 0
}

// String renders the span in the standard library's duration notation,
// for example "1h30m0s". [Span.MarshalText] emits the extended notation
// with day and week units instead; [ParseSpan] accepts both.
func (s Span) String() string {
	return time.Duration(s.ns).String()
}

// ParseSpan parses a duration string. It accepts the standard library
// grammar ("300ms", "-1.5h", "2h45m") extended with "d" (day) and "w"
// (week) units, as in "1w2d6h". Parsed values must lie within
// [MinSpan, MaxSpan].
func ParseSpan(s string) (Span, error) {
	// the sign is handled here; only a magnitude reaches the parser
	neg := false
	body := s
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		neg = body[0] == '-'
		body = body[1:]
		if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
			return Span{}, errors.Errorf("could not parse %q as a span", s)
		}
	}
	d, err := str2duration.ParseDuration(body)
	if err != nil {
		return Span{}, errors.Wrapf(err, "could not parse %q as a span", s)
	}
	if neg {
		d = -d
	}
	return checkRange(FromDuration(d))
}

// checkRange verifies s lies within [MinSpan, MaxSpan], keeping values
// built from text inside the documented bounds.
func checkRange(s Span) (Span, error) {
	if s.Before(MinSpan) || s.After(MaxSpan) {
		return Span{}, errors.Errorf("%d ns is outside the representable range", s.ns)
	}
	return s, nil
}

// floorDiv divides rounding toward negative infinity. unit must be
// positive.
func floorDiv(n, unit int64) int64 {
	q := n / unit
	if n%unit != 0 && n < 0 {
		q--
	}
	return q
}

// roundHalfAway divides rounding to the nearest multiple, ties away
// from zero. unit must be positive.
func roundHalfAway(n, unit int64) int64 {
	q := n / unit
	half := (unit + 1) / 2
	if r := n % unit; r >= half {
		q++
	} else if r <= -half {
		q--
	}
	return q
}
