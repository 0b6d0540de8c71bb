package timens

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Date is a calendar date on the proleptic Gregorian calendar,
// unattached to any zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// String renders the date as "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ParseDate parses a "YYYY-MM-DD" calendar date with a four-digit year.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return Date{}, errors.Wrapf(err, "could not parse %q as a date", s)
	}
	y, m, day := t.Date()
	return Date{Year: y, Month: m, Day: day}, nil
}

// AddDays returns the date n calendar days later.
func (d Date) AddDays(n int64) Date {
	return dateOfDays(daysOfDate(d) + n)
}

// Sub returns the number of calendar days from e to d.
func (d Date) Sub(e Date) int64 {
	return daysOfDate(d) - daysOfDate(e)
}

// UTCDate splits the time into its UTC calendar date and the span since
// that date's midnight. The span is always within [0, 24h), for
// pre-epoch times too.
func (t Time) UTCDate() (Date, Span) {
	days := floorDiv(t.ns, nanosPerDay)
	return dateOfDays(days), Span{t.ns - days*nanosPerDay}
}

// FromUTCDate is the inverse of [Time.UTCDate]: the instant
// sinceMidnight past the UTC midnight of d. The span is not validated
// against the day; spans outside [0, 24h) land on neighboring dates,
// and overflow wraps around silently.
func FromUTCDate(d Date, sinceMidnight Span) Time {
	return Time{daysOfDate(d)*nanosPerDay + sinceMidnight.ns}
}

// UTCOfday returns the wall-clock time of day at UTC.
func (t Time) UTCOfday() Ofday {
	_, s := t.UTCDate()
	return Ofday{s.ns}
}

// The converters below walk the proleptic Gregorian calendar in
// 400-year eras of 146097 days, the same cycle arithmetic the standard
// library uses, recentered on the Unix epoch. They are exact inverses
// for all day counts, pre-epoch included.

const (
	daysPerEra = 146097

	// day number of 1970-01-01 in the era arithmetic, which counts
	// from 0000-03-01
	epochDays = 719468
)

// daysOfDate converts a calendar date to days since the Unix epoch.
func daysOfDate(d Date) int64 {
	y, m := int64(d.Year), int64(d.Month)
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	var doy int64      // [0, 365]
	if m > 2 {
		doy = (153*(m-3)+2)/5 + int64(d.Day) - 1
	} else {
		doy = (153*(m+9)+2)/5 + int64(d.Day) - 1
	}
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*daysPerEra + doe - epochDays
}

// dateOfDays converts days since the Unix epoch to a calendar date.
func dateOfDays(days int64) Date {
	z := days + epochDays
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra                                   // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365      // [0, 399]
	doy := doe - (365*yoe + yoe/4 - yoe/100)                    // [0, 365]
	mp := (5*doy + 2) / 153                                     // March-based month, [0, 11]
	day := doy - (153*mp+2)/5 + 1                               // [1, 31]
	y := yoe + era*400
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return Date{Year: int(y), Month: time.Month(m), Day: int(day)}
}
