package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WithTempDir creates a temporary directory, calls fn with its path,
// and cleans up afterwards.
func WithTempDir(t *testing.T, fn func(dir string)) {
	t.Helper()
	dir := t.TempDir()
	fn(dir)
}

// WriteTempFile writes content to name inside a fresh temporary directory
// and returns the full path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
	return path
}

// StemCase is a folded word and the stem the default stemmer produces for it.
type StemCase struct {
	Word string
	Stem string
}

// SampleStems returns folded Greek words with their expected stems under
// the bundled stopword list.
func SampleStems() []StemCase {
	return []StemCase{
		{"αγριοσ", "αγρι"},
		{"γραμματα", "γραμμα"},
		{"ρολογια", "ρολοι"},
		{"διχτυα", "διχτ"},
		{"ανθρωποι", "ανθρωπ"},
		{"παιδια", "παιδ"},
		{"σπιτια", "σπιτ"},
		{"καλοσ", "καλ"},
		{"αγαπησα", "αγαπ"},
		{"δουλευουμε", "δουλευ"},
		{"ελληνικα", "ελλην"},
		{"θαλασσεσ", "θαλασσ"},
		{"βιβλιου", "βιβλι"},
		{"τραγουδια", "τραγουδ"},
		{"πολεισ", "πολ"},
		{"εργαζομενοσ", "εργαζομεν"},
		{"υπολογιστησ", "υπολογιστ"},
		{"δρομοι", "δρομ"},
		{"ελλαδα", "ελλαδ"},
		{"καταστηματα", "καταστημ"},
		// protected: stopword and too short
		{"απο", "απο"},
		{"αβ", "αβ"},
	}
}

// SampleText returns a paragraph of accented, mixed-case Greek prose.
func SampleText() string {
	return "Οι άνθρωποι στην Ελλάδα αγαπούν τη θάλασσα. " +
		"Τα παιδιά τραγουδούν στους δρόμους και τα καταστήματα ανοίγουν νωρίς. " +
		"Ο υπολογιστής διαβάζει βιβλία, γράμματα και ρολόγια από παλιά σπίτια."
}

// AssertFileExists checks that a file exists at the given path.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("expected file to exist: %s", path)
	}
}

// AssertFileContent checks that the file at path holds exactly want.
func AssertFileContent(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", path, err)
	}
	if string(got) != want {
		t.Errorf("%s content = %q, want %q", path, got, want)
	}
}
