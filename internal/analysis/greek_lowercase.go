package analysis

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// foldGreek removes tonos and dialytika and folds final sigma. It maps
// single precomposed runes and does not decompose anything.
func foldGreek(r rune) rune {
	switch r {
	case 'ς':
		return 'σ'
	case 'ά':
		return 'α'
	case 'έ':
		return 'ε'
	case 'ή':
		return 'η'
	case 'ί', 'ϊ', 'ΐ':
		return 'ι'
	case 'ό':
		return 'ο'
	case 'ύ', 'ϋ', 'ΰ':
		return 'υ'
	case 'ώ':
		return 'ω'
	}
	return r
}

// Casers and chains keep state between calls, so each goroutine borrows
// its own.
var greekFolders = sync.Pool{
	New: func() any {
		return transform.Chain(cases.Lower(language.Greek), runes.Map(foldGreek))
	},
}

// FoldGreek lowercases s and strips Greek diacritics, producing the form the
// stemmer expects.
func FoldGreek(s string) string {
	t := greekFolders.Get().(transform.Transformer)
	defer greekFolders.Put(t)

	t.Reset()
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// GreekLowerCaseFilter folds every token with FoldGreek.
type GreekLowerCaseFilter struct{}

// NewGreekLowerCaseFilter creates a GreekLowerCaseFilter.
func NewGreekLowerCaseFilter() *GreekLowerCaseFilter {
	return &GreekLowerCaseFilter{}
}

// Filter folds every token, keyword-marked ones included.
func (f *GreekLowerCaseFilter) Filter(tokens []Token) []Token {
	for i := range tokens {
		tokens[i].Term = FoldGreek(tokens[i].Term)
	}
	return tokens
}
