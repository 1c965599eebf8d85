package stemmer

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
)

//go:embed stopwords.txt
var defaultStopwordsText string

// Stopwords is an immutable set of whole words. The stemmer returns its
// members unchanged; the analysis package also uses it for protected words.
// A nil *Stopwords is an empty set.
type Stopwords struct {
	set runeSet
}

// NewStopwords builds a set from the given words.
func NewStopwords(words ...string) *Stopwords {
	return &Stopwords{set: newRuneSet(words...)}
}

// ParseStopwords reads a newline-delimited UTF-8 word list. Lines are
// trimmed; blank lines and lines starting with '#' are skipped.
func ParseStopwords(r io.Reader) (*Stopwords, error) {
	sw := &Stopwords{set: newRuneSet()}
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		w := strings.TrimSpace(scan.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		sw.set.add(w)
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("%w: read stopwords: %v", ErrConfiguration, err)
	}
	return sw, nil
}

// LoadStopwordsFile parses the word list at path.
func LoadStopwordsFile(path string) (*Stopwords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open stopwords %s: %v", ErrConfiguration, path, err)
	}
	defer f.Close()

	sw, err := ParseStopwords(f)
	if err != nil {
		return nil, fmt.Errorf("stopwords %s: %w", path, err)
	}
	return sw, nil
}

var (
	defaultOnce      sync.Once
	defaultStopwords *Stopwords
)

// DefaultStopwords returns the bundled stopword set, built on first use and
// shared by every caller.
func DefaultStopwords() *Stopwords {
	defaultOnce.Do(func() {
		sw, err := ParseStopwords(strings.NewReader(defaultStopwordsText))
		if err != nil {
			// the list is compiled into the binary
			panic(err)
		}
		defaultStopwords = sw
	})
	return defaultStopwords
}

// Contains reports whether the runes of word form a stopword.
func (sw *Stopwords) Contains(word []rune) bool {
	if sw == nil {
		return false
	}
	return sw.set.contains(word)
}

// ContainsString is Contains for a string.
func (sw *Stopwords) ContainsString(word string) bool {
	if sw == nil {
		return false
	}
	_, ok := sw.set.words[word]
	return ok
}

// Len returns the number of distinct words.
func (sw *Stopwords) Len() int {
	if sw == nil {
		return 0
	}
	return sw.set.len()
}

// Words returns the words in sorted order.
func (sw *Stopwords) Words() []string {
	if sw == nil {
		return nil
	}
	out := make([]string, 0, len(sw.set.words))
	for w := range sw.set.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
