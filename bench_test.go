package edist_test

import (
	"testing"

	"github.com/katalvlaran/edist"
)

// benchSequences builds two deterministic rune sequences of length n that
// agree on every position not divisible by 7, giving a realistic mix of
// matches, substitutions and shifts.
func benchSequences(n int) ([]rune, []rune) {
	a := make([]rune, n)
	b := make([]rune, n)
	for i := 0; i < n; i++ {
		a[i] = rune('a' + i%23)
		if i%7 == 0 {
			b[i] = rune('A' + i%23) // forced mismatch
		} else {
			b[i] = a[i]
		}
	}

	return a, b
}

// benchmarkEdits runs the full script pipeline on n×n inputs.
func benchmarkEdits(bench *testing.B, n int) {
	a, b := benchSequences(n)

	bench.ResetTimer() // ignore setup time
	for i := 0; i < bench.N; i++ {
		_ = edist.Edits(a, b)
	}
}

// benchmarkLevenshtein runs the distance-only path on n×n inputs.
func benchmarkLevenshtein(bench *testing.B, n int) {
	a, b := benchSequences(n)

	bench.ResetTimer()
	for i := 0; i < bench.N; i++ {
		_ = edist.Levenshtein(a, b)
	}
}

// BenchmarkEdits_Small benchmarks the script evaluator on 64×64 inputs.
func BenchmarkEdits_Small(b *testing.B) { benchmarkEdits(b, 64) }

// BenchmarkEdits_Medium benchmarks the script evaluator on 256×256 inputs.
func BenchmarkEdits_Medium(b *testing.B) { benchmarkEdits(b, 256) }

// BenchmarkLevenshtein_Small benchmarks the distance path on 64×64 inputs.
func BenchmarkLevenshtein_Small(b *testing.B) { benchmarkLevenshtein(b, 64) }

// BenchmarkLevenshtein_Medium benchmarks the distance path on 500×500 inputs.
func BenchmarkLevenshtein_Medium(b *testing.B) { benchmarkLevenshtein(b, 500) }

// BenchmarkLevenshtein_Large benchmarks the distance path on 2000×2000 inputs.
func BenchmarkLevenshtein_Large(b *testing.B) { benchmarkLevenshtein(b, 2000) }
