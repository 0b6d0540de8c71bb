package timens

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Time is an instant, represented as a signed 64-bit count of
// nanoseconds since the Unix epoch, 1970-01-01T00:00:00Z. The zero
// value is the epoch itself.
//
// The int64 representation covers the years 1677 through 2262, the same
// window as [time.Time.UnixNano]. As with [Span], arithmetic wraps
// around silently on overflow; [MinTime] and [MaxTime] mark the range
// with headroom.
//
// Time carries no location. Calendar operations, [Time.UTCDate] and
// [Time.String] among them, interpret the instant in UTC.
type Time struct {
	ns int64
}

// Epoch is the zero Time, 1970-01-01T00:00:00Z.
var Epoch = Time{}

// MinTime and MaxTime are the practical bounds of a Time, about 146
// years on either side of the epoch. Like [MinSpan] and [MaxSpan], they
// are documentation rather than a constraint.
var (
	MinTime = Time{-1 << 62}
	MaxTime = Time{1 << 62}
)

// Unix returns the Time sec seconds and nsec nanoseconds after the
// epoch, in the manner of [time.Unix]. Overflow wraps around silently.
func Unix(sec, nsec int64) Time {
	return Time{sec*nanosPerSecond + nsec}
}

// UnixNano returns the Time ns nanoseconds after the epoch.
func UnixNano(ns int64) Time {
	return Time{ns}
}

// FromTime converts a [time.Time]. The conversion is exact within the
// int64 nanosecond window, the years 1677 through 2262; outside it the
// value wraps like [time.Time.UnixNano].
func FromTime(t time.Time) Time {
	return Time{t.UnixNano()}
}

// UnixSeconds converts float seconds since the epoch, rounding to the
// nearest microsecond with ties away from zero. It returns
// [ErrFloatRange] when sec is not finite or lies outside the precision
// window of roughly ±135 years around the epoch.
func UnixSeconds(sec float64) (Time, error) {
	s, err := FromSeconds(sec)
	if err != nil {
		return Time{}, err
	}
	return Time{s.ns}, nil
}

// UnixSeconds returns the time as float seconds since the epoch,
// rounded to the nearest microsecond, or [ErrFloatRange] outside the
// precision window. Round-tripping through the [UnixSeconds]
// constructor is stable.
func (t Time) UnixSeconds() (float64, error) {
	return Span{t.ns}.Seconds()
}

// UnixNano returns the time as nanoseconds since the epoch.
func (t Time) UnixNano() int64 {
	return t.ns
}

// Unix returns the time as whole seconds since the epoch, rounded
// toward negative infinity so pre-epoch times floor consistently.
func (t Time) Unix() int64 {
	return floorDiv(t.ns, nanosPerSecond)
}

// UnixMilli returns the time as whole milliseconds since the epoch,
// rounded toward negative infinity.
func (t Time) UnixMilli() int64 {
	return floorDiv(t.ns, nanosPerMilli)
}

// UnixMicro returns the time as whole microseconds since the epoch,
// rounded toward negative infinity.
func (t Time) UnixMicro() int64 {
	return floorDiv(t.ns, nanosPerMicro)
}

// IntUnixNano returns the time as a native int count of nanoseconds
// since the epoch, or an error when the value does not fit. It cannot
// fail on 64-bit platforms.
func (t Time) IntUnixNano() (int, error) {
	n := int(t.ns)
	if int64(n) != t.ns {
		return 0, errors.Errorf("time %s overflows int", t)
	}
	return n, nil
}

// SpanSinceEpoch returns the time as a span since the epoch; the two
// representations are identical.
func (t Time) SpanSinceEpoch() Span {
	return Span{t.ns}
}

// ToTime converts to a [time.Time] in UTC. The conversion is exact.
func (t Time) ToTime() time.Time {
	return time.Unix(0, t.ns).UTC()
}

// Add returns t shifted forward by s. Overflow wraps around silently.
func (t Time) Add(s Span) Time {
	return Time{t.ns + s.ns}
}

// SubSpan returns t shifted backward by s. Overflow wraps around
// silently.
func (t Time) SubSpan(s Span) Time {
	return Time{t.ns - s.ns}
}

// Sub returns the span t - u, in the manner of [time.Time.Sub].
func (t Time) Sub(u Time) Span {
	return Span{t.ns - u.ns}
}

// AbsDiff returns the magnitude of the span between t and u.
func (t Time) AbsDiff(u Time) Span {
	return t.Sub(u).Abs()
}

// Next returns the smallest representable time after t.
func (t Time) Next() Time {
	return Time{t.ns + 1}
}

// Prev returns the largest representable time before t.
func (t Time) Prev() Time {
	return Time{t.ns - 1}
}

// Before reports whether t is earlier than u.
func (t Time) Before(u Time) bool {
	return t.ns < u.ns
}

// After reports whether t is later than u.
func (t Time) After(u Time) bool {
	return t.ns > u.ns
}

// Equal reports whether t and u are the same instant. Times are also
// comparable with ==.
func (t Time) Equal(u Time) bool {
	return t.ns == u.ns
}

// Compare returns -1 when t is earlier than u, +1 when later, and 0
// when equal.
func (t Time) Compare(u Time) int {
	switch {
	case t.ns < u.ns:
		return -1
	case t.ns > u.ns:
		return +1
	}
	return 0
}

// IsZero reports whether t is the epoch.
func (t Time) IsZero() bool {
	return t.ns == 0
}

// NextMultiple returns the smallest time of the form base + k*interval,
// for integer k >= 0, that is strictly after the after argument, or
// equal to it when canEqualAfter. When after precedes base, the answer
// is base itself. It panics when interval is zero or negative.
// Arithmetic wraps around silently, like all time arithmetic.
//
// A typical use is finding the next tick of a periodic schedule:
//
//	next := timens.NextMultiple(start, timens.Now(), period, false)
func NextMultiple(base, after Time, interval Span, canEqualAfter bool) Time {
	if interval.ns <= 0 {
		panic("timens: NextMultiple with non-positive interval")
	}
	baseToAfter := after.Sub(base)
	if baseToAfter.ns < 0 {
		// after precedes base; the smallest valid k is 0
		return base
	}
	next := base.Add(interval.Scale(baseToAfter.Div(interval)))
	if next.After(after) || (canEqualAfter && next.Equal(after)) {
		return next
	}
	return next.Add(interval)
}

// Now returns the current wall-clock time. It inherits the host clock's
// behavior: readings are not monotonic and can step backward when the
// clock is adjusted.
func Now() Time {
	return Time{time.Now().UnixNano()}
}

// Since returns the span elapsed since t.
func Since(t Time) Span {
	return Now().Sub(t)
}

// Until returns the span until t.
func Until(t Time) Span {
	return t.Sub(Now())
}

// timeLayouts are tried in order by [ParseTime]. Layouts without an
// explicit zone are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTime parses a timestamp. It accepts RFC 3339, the
// space-separated equivalent, and bare dates, with fractional seconds
// up to nanosecond precision; forms without a zone are read as UTC. A
// bare integer is taken as a count of nanoseconds since the epoch.
func ParseTime(s string) (Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return FromTime(t), nil
		}
	}
	if ns, err := strconv.ParseInt(s, 10, 64); err == nil {
		return UnixNano(ns), nil
	}
	return Time{}, errors.Errorf("could not parse %q as a time", s)
}

// String renders the time in UTC as "2006-01-02 15:04:05.999999999Z",
// with fractional digits in trimmed groups of three. [Time.MarshalText]
// emits strict RFC 3339 instead.
func (t Time) String() string {
	d, s := t.UTCDate()
	return d.String() + " " + Ofday{s.ns}.String() + "Z"
}
