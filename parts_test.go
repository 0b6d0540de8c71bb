package timens

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpan_ToParts(t *testing.T) {
	{
		s := Hours(1).Add(Minutes(2)).Add(Seconds(3)).Add(Milliseconds(4)).Add(Microseconds(5)).Add(Nanoseconds(6))
		actual := s.toParts()
		expected := parts{hour: 1, min: 2, sec: 3, ms: 4, us: 5, ns: 6}
		require.Equal(t, expected, actual, "each component lands in its own field")
	}

	// the sign lives outside the components
	{
		s := Hours(1).Add(Minutes(2)).Add(Seconds(3)).Add(Milliseconds(4)).Add(Microseconds(5)).Add(Nanoseconds(6)).Neg()
		actual := s.toParts()
		expected := parts{neg: true, hour: 1, min: 2, sec: 3, ms: 4, us: 5, ns: 6}
		require.Equal(t, expected, actual, "components stay non-negative under negation")
	}

	// hours do not roll over into days
	{
		actual := Day.Add(Hours(3)).Add(Minutes(30)).toParts()
		expected := parts{hour: 27, min: 30}
		require.Equal(t, expected, actual, "hours absorb the days")
	}

	{
		actual := Seconds(0).toParts()
		expected := parts{}
		require.Equal(t, expected, actual, "zero decomposes to nothing")
	}
}

func TestSpanOfParts(t *testing.T) {
	{
		actual := spanOfParts(parts{hour: 2})
		expected := Hours(2)
		require.Equal(t, expected, actual, "a bare hour count")
	}

	{
		actual := spanOfParts(parts{neg: true, min: 90})
		expected := Minutes(-90)
		require.Equal(t, expected, actual, "components beyond their usual range still sum up")
	}
}

func TestSpan_PartsRoundTrip(t *testing.T) {
	spans := []Span{
		Seconds(0),
		Nanoseconds(1),
		Nanoseconds(-1),
		ApproximateEndOfDay.SinceMidnight(),
		MinSpan,
		MaxSpan,
	}
	for _, s := range spans {
		require.Equal(t, s, spanOfParts(s.toParts()), "parts should reassemble to %s", s)
	}

	rnd := rand.New(rand.NewPCG(5, 6))
	for range 1000 {
		s := RandomSpan(rnd)
		require.Equal(t, s, spanOfParts(s.toParts()), "parts should reassemble to %s", s)
	}
}
