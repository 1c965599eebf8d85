package stemmer

import "testing"

func TestIsVowel(t *testing.T) {
	for _, r := range "αεηιουω" {
		if !isVowel(r) {
			t.Errorf("isVowel(%q) = false", r)
		}
	}
	for _, r := range "βγδζθκλμνξπρστφχψa" {
		if isVowel(r) {
			t.Errorf("isVowel(%q) = true", r)
		}
	}
	if isVowelNoY('υ') {
		t.Error("isVowelNoY(υ) = true")
	}
	if !isVowelNoY('ω') {
		t.Error("isVowelNoY(ω) = false")
	}
}

func TestEndsWith(t *testing.T) {
	s := []rune("γραμματα")

	tests := []struct {
		n      int
		suffix string
		want   bool
	}{
		{8, "ματα", true},
		{8, "γραμματα", true},
		{8, "αγραμματα", false},
		{6, "μμα", true},
		{6, "ματα", false},
		{0, "α", false},
		{3, "", true},
	}

	for _, tt := range tests {
		if got := endsWith(s, tt.n, []rune(tt.suffix)); got != tt.want {
			t.Errorf("endsWith(%q, %d, %q) = %v, want %v", string(s), tt.n, tt.suffix, got, tt.want)
		}
	}
}

func TestEndsWithVowel_Empty(t *testing.T) {
	if endsWithVowel(nil, 0) || endsWithVowelNoY(nil, 0) {
		t.Error("empty prefix should not end with a vowel")
	}
	s := []rune("δρυ")
	if !endsWithVowel(s, 3) {
		t.Error("endsWithVowel(δρυ) = false")
	}
	if endsWithVowelNoY(s, 3) {
		t.Error("endsWithVowelNoY(δρυ) = true")
	}
}

func TestRuneSet(t *testing.T) {
	rs := newRuneSet("γραμμ", "σταμ")

	if !rs.contains([]rune("γραμμ")) {
		t.Error("contains(γραμμ) = false")
	}
	if rs.contains([]rune("γραμ")) {
		t.Error("contains(γραμ) = true, membership is exact")
	}
	if rs.contains([]rune("αγραμμ")) {
		t.Error("contains(αγραμμ) = true, membership is not a suffix test")
	}
	if rs.contains([]rune("πολυσυλλαβικοτατων")) {
		t.Error("contains on word longer than any member = true")
	}
	if rs.len() != 2 {
		t.Errorf("len() = %d, want 2", rs.len())
	}
}
