// Package timens provides fixed-point time values with nanosecond
// resolution: [Span], a length of time; [Time], an instant since the
// Unix epoch; and [Ofday], a wall-clock time of day.
//
// Each value is a single int64 count of nanoseconds. Intended as an
// optimization to store a time as an int64 (8 bytes) instead of a
// time.Time (24 bytes), with exact integer arithmetic and comparison
// with ==.
//
// Arithmetic wraps around silently on overflow, like the underlying
// int64. Within the documented bounds of about ±146 years ([MinSpan],
// [MaxSpan], [MinTime], [MaxTime]) overflow cannot occur. Data-dependent
// failures return errors: parsing, float conversions outside the
// precision window, shifts that leave the 24-hour day. Contract
// violations panic: dividing by a non-positive span, asking for a
// non-positive interval in [NextMultiple].
//
// Conversions to and from [time.Time] and [time.Duration] are exact,
// since both sides count integer nanoseconds. Conversions through float
// seconds round to the microsecond and are checked; see [ErrFloatRange].
//
// Serialized forms are stable and versioned; see the MarshalBinary and
// MarshalText methods.
package timens
