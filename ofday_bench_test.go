package timens

import (
	"testing"
)

// Benchmark parsing a fully qualified time of day
func BenchmarkParseOfday(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		ParseOfday("09:14:47.999749837")
	}
}

// Benchmark the wall-clock renderer
func BenchmarkOfday_String(b *testing.B) {
	o, err := ParseOfday("09:14:47.999749837")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_ = o.String()
	}
}
