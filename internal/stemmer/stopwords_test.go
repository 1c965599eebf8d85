package stemmer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseStopwords(t *testing.T) {
	input := "# comment\n\nαπο\n  για  \n#για\nκαι\r\n"
	sw, err := ParseStopwords(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"απο", "για", "και"}
	got := sw.Words()
	if len(got) != len(want) {
		t.Fatalf("Words() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if sw.ContainsString("#για") {
		t.Error("comment line was added as a word")
	}
}

func TestDefaultStopwords(t *testing.T) {
	sw := DefaultStopwords()
	if sw != DefaultStopwords() {
		t.Error("DefaultStopwords should return the shared set")
	}
	for _, w := range []string{"απο", "δυο", "ελα", "αμα", "ειτε", "εγω", "δεν", "δηλαδη", "κανο"} {
		if !sw.Contains([]rune(w)) {
			t.Errorf("default set is missing %q", w)
		}
	}
	if sw.ContainsString("αγριοσ") {
		t.Error("default set should not contain αγριοσ")
	}
	if sw.Len() < 50 {
		t.Errorf("default set has %d words, expected the bundled list", sw.Len())
	}
}

func TestLoadStopwordsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stopwords.txt")
	if err := os.WriteFile(path, []byte("αγριοσ\nγραμματα\n"), 0644); err != nil {
		t.Fatal(err)
	}

	sw, err := LoadStopwordsFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if sw.Len() != 2 {
		t.Errorf("Len() = %d, want 2", sw.Len())
	}
	if !sw.ContainsString("γραμματα") {
		t.Error("missing γραμματα")
	}
}

func TestLoadStopwordsFile_Missing(t *testing.T) {
	_, err := LoadStopwordsFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("error = %v, want ErrConfiguration", err)
	}
}

func TestStopwords_Nil(t *testing.T) {
	var sw *Stopwords
	if sw.Contains([]rune("απο")) || sw.ContainsString("απο") {
		t.Error("nil set reported a member")
	}
	if sw.Len() != 0 {
		t.Errorf("Len() = %d, want 0", sw.Len())
	}
	if sw.Words() != nil {
		t.Errorf("Words() = %v, want nil", sw.Words())
	}
}
