package timens

import (
	"testing"
)

// Benchmark floored division between spans
func BenchmarkSpan_Div(b *testing.B) {
	s := Hours(-7)
	unit := Minutes(2)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		s.Div(unit)
	}
}

// Benchmark span decomposition into components
func BenchmarkSpan_ToParts(b *testing.B) {
	s := Hours(27).Add(Minutes(30)).Add(Nanoseconds(999749837)).Neg()

	b.ReportAllocs()

	for b.Loop() {
		s.toParts()
	}
}

// Benchmark parsing the extended duration notation
func BenchmarkParseSpan(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		ParseSpan("1w2d6h")
	}
}

// Benchmark the standard notation renderer
func BenchmarkSpan_String(b *testing.B) {
	s := Milliseconds(90500)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_ = s.String()
	}
}
