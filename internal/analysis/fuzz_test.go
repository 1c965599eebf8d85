package analysis

import (
	"testing"
	"unicode/utf8"
)

func FuzzStandardAnalyzer(f *testing.F) {
	f.Add("Hello World")
	f.Add("")
	f.Add("  spaces  everywhere  ")
	f.Add("café résumé naïve")
	f.Add("hello-world foo_bar")
	f.Add("123 456 789")

	f.Fuzz(func(t *testing.T, input string) {
		a := NewStandardAnalyzer()
		// Should not panic.
		tokens := a.Analyze("field", input)

		for i, tok := range tokens {
			if tok.Position != i {
				t.Errorf("token %d position = %d, want %d", i, tok.Position, i)
			}
			if tok.StartByte < 0 || tok.EndByte > len(input) || tok.StartByte > tok.EndByte {
				t.Errorf("invalid byte offsets: start=%d end=%d input_len=%d", tok.StartByte, tok.EndByte, len(input))
			}
			if tok.Term == "" {
				t.Error("empty term produced")
			}
		}
	})
}

func FuzzGreekAnalyzer(f *testing.F) {
	f.Add("Τα ρολόγια")
	f.Add("")
	f.Add("ΑΓΡΙΟΣ γράμματα, δίχτυα!")
	f.Add("προϊόν ΐ ΰ ς")
	f.Add("mixed ελληνικά and latin 123")

	a := NewGreekAnalyzer(GreekOptions{})
	f.Fuzz(func(t *testing.T, input string) {
		tokens := a.Analyze("field", input)

		for i, tok := range tokens {
			if tok.Position != i {
				t.Errorf("token %d position = %d, want %d", i, tok.Position, i)
			}
			if tok.StartByte < 0 || tok.EndByte > len(input) || tok.StartByte >= tok.EndByte {
				t.Errorf("invalid byte offsets: start=%d end=%d input_len=%d", tok.StartByte, tok.EndByte, len(input))
				continue
			}
			// Stemming never grows a token beyond its folded source.
			folded := FoldGreek(input[tok.StartByte:tok.EndByte])
			if utf8.RuneCountInString(tok.Term) > utf8.RuneCountInString(folded) {
				t.Errorf("term %q longer than folded source %q", tok.Term, folded)
			}
		}
	})
}
