package benchmark

import (
	"testing"

	"GreekStem/internal/analysis"
	"GreekStem/internal/stemmer"
	"GreekStem/internal/testutil"
)

func BenchmarkStem_Short(b *testing.B) {
	st := stemmer.New(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = st.StemString("ρολογια")
	}
}

func BenchmarkStem_Samples(b *testing.B) {
	st := stemmer.New(nil)
	samples := testutil.SampleStems()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, c := range samples {
			_ = st.StemString(c.Word)
		}
	}
}

func BenchmarkFoldGreek(b *testing.B) {
	text := testutil.SampleText()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = analysis.FoldGreek(text)
	}
}

func BenchmarkAnalysis_Standard_Long(b *testing.B) {
	a := analysis.NewStandardAnalyzer()
	text := testutil.SampleText()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Analyze("field", text)
	}
}

func BenchmarkAnalysis_Greek_Short(b *testing.B) {
	a := analysis.NewGreekAnalyzer(analysis.GreekOptions{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Analyze("field", "Τα ρολόγια")
	}
}

func BenchmarkAnalysis_Greek_Long(b *testing.B) {
	a := analysis.NewGreekAnalyzer(analysis.GreekOptions{})
	text := testutil.SampleText()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Analyze("field", text)
	}
}

func BenchmarkAnalysis_Greek_Parallel(b *testing.B) {
	a := analysis.NewGreekAnalyzer(analysis.GreekOptions{})
	text := testutil.SampleText()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = a.Analyze("field", text)
		}
	})
}

func BenchmarkAnalysis_Keyword(b *testing.B) {
	a := analysis.NewKeywordAnalyzer()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Analyze("field", "exact-match-value")
	}
}
