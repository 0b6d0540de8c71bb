package timens

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/pkg/errors"
	str2duration "github.com/xhit/go-str2duration/v2"
)

// Stable wire forms for Span, Ofday and Time.
//
// The binary form is a version-tagged envelope:
//
//	byte 0:    version, currently 1
//	bytes 1-8: value, big-endian two's-complement nanosecond count
//
// A version's layout is frozen once released. Format changes introduce
// a new version byte alongside the old one, and decoders reject version
// bytes they do not know.
//
// The text forms are the String/Parse notations of each type, with one
// wrinkle for Span: MarshalText emits the extended day/week notation
// (the format's second generation) while ParseSpan accepts both it and
// the standard library notation (the first). JSON marshalling rides on
// the text interfaces.

const wireVersion byte = 1

const wireSize = 1 + 8

func appendWire(b []byte, ns int64) []byte {
	b = append(b, wireVersion)
	return binary.BigEndian.AppendUint64(b, uint64(ns))
}

func parseWire(data []byte) (int64, error) {
	if len(data) == 0 {
		return 0, errors.New("no data")
	}
	if data[0] != wireVersion {
		return 0, errors.Errorf("unknown version %d", data[0])
	}
	if len(data) != wireSize {
		return 0, errors.Errorf("version 1 wants 8 value bytes, got %d", len(data)-1)
	}
	return int64(binary.BigEndian.Uint64(data[1:])), nil
}

// MarshalBinary implements [encoding.BinaryMarshaler].
func (s Span) MarshalBinary() ([]byte, error) {
	return appendWire(make([]byte, 0, wireSize), s.ns), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (s *Span) UnmarshalBinary(data []byte) error {
	ns, err := parseWire(data)
	if err != nil {
		return errors.Wrap(err, "unmarshal span")
	}
	s.ns = ns
	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler].
func (o Ofday) MarshalBinary() ([]byte, error) {
	return appendWire(make([]byte, 0, wireSize), o.ns), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler]. Values
// outside the representable day are rejected.
func (o *Ofday) UnmarshalBinary(data []byte) error {
	ns, err := parseWire(data)
	if err != nil {
		return errors.Wrap(err, "unmarshal ofday")
	}
	v, err := SinceMidnight(Span{ns})
	if err != nil {
		return errors.Wrap(err, "unmarshal ofday")
	}
	*o = v
	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler].
func (t Time) MarshalBinary() ([]byte, error) {
	return appendWire(make([]byte, 0, wireSize), t.ns), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (t *Time) UnmarshalBinary(data []byte) error {
	ns, err := parseWire(data)
	if err != nil {
		return errors.Wrap(err, "unmarshal time")
	}
	t.ns = ns
	return nil
}

// MarshalText implements [encoding.TextMarshaler] using the extended
// duration notation, for example "1w2d6h". Sub-second remainders are
// written as integer millisecond, microsecond or nanosecond terms so
// that every span re-reads exactly through [ParseSpan].
func (s Span) MarshalText() ([]byte, error) {
	d := time.Duration(s.ns)
	if d == 0 {
		return []byte("0s"), nil
	}
	var b []byte
	if d < 0 {
		b, d = append(b, '-'), -d
	}
	if whole := d.Truncate(time.Second); whole > 0 {
		b = append(b, str2duration.String(whole)...)
		d -= whole
	}
	switch {
	case d == 0:
	case d%time.Millisecond == 0:
		b = strconv.AppendInt(b, int64(d/time.Millisecond), 10)
		b = append(b, "ms"...)
	case d%time.Microsecond == 0:
		b = strconv.AppendInt(b, int64(d/time.Microsecond), 10)
		b = append(b, "us"...)
	default:
		b = strconv.AppendInt(b, int64(d), 10)
		b = append(b, "ns"...)
	}
	return b, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]; see [ParseSpan]
// for the accepted notations.
func (s *Span) UnmarshalText(text []byte) error {
	v, err := ParseSpan(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements [encoding.TextMarshaler]; the form is
// [Ofday.String].
func (o Ofday) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]; see
// [ParseOfday].
func (o *Ofday) UnmarshalText(text []byte) error {
	v, err := ParseOfday(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// MarshalText implements [encoding.TextMarshaler] as strict RFC 3339 in
// UTC with nanosecond precision.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.ToTime().Format(time.RFC3339Nano)), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]; see [ParseTime].
func (t *Time) UnmarshalText(text []byte) error {
	v, err := ParseTime(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
