package benchmark

import (
	"testing"

	"GreekStem/internal/analysis"
	"GreekStem/internal/stemmer"
	"GreekStem/internal/testutil"
)

// StemN works in place on a caller-owned buffer and should not allocate.
func BenchmarkMemory_StemNInPlace(b *testing.B) {
	st := stemmer.New(nil)
	samples := testutil.SampleStems()
	words := make([][]rune, len(samples))
	for i, c := range samples {
		words[i] = []rune(c.Word)
	}
	buf := make([]rune, 32)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := words[i%len(words)]
		n := copy(buf, w)
		if _, err := st.StemN(buf, n); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMemory_StopwordLookup(b *testing.B) {
	sw := stemmer.DefaultStopwords()
	word := []rune("δηλαδη")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sw.Contains(word)
	}
}

func BenchmarkMemory_StemFilter(b *testing.B) {
	f := analysis.NewGreekStemFilter(nil)
	samples := testutil.SampleStems()
	tokens := make([]analysis.Token, len(samples))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j, c := range samples {
			tokens[j] = analysis.Token{Term: c.Word, Position: j}
		}
		_ = f.Filter(tokens)
	}
}
