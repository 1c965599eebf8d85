package analysis

import "GreekStem/internal/stemmer"

// FilterGreekStem is the registry name of GreekStemFilter.
const FilterGreekStem = "skroutz_stem_greek"

// GreekStemFilter stems every token that is not keyword-marked. Input must
// already be folded, see GreekLowerCaseFilter.
type GreekStemFilter struct {
	stemmer *stemmer.Stemmer
}

// NewGreekStemFilter creates a filter around st. A nil st uses the default
// stopwords.
func NewGreekStemFilter(st *stemmer.Stemmer) *GreekStemFilter {
	if st == nil {
		st = stemmer.New(nil)
	}
	return &GreekStemFilter{stemmer: st}
}

// Filter stems each non-keyword token exactly once, reusing one scratch
// buffer across the stream.
func (f *GreekStemFilter) Filter(tokens []Token) []Token {
	var buf []rune
	for i := range tokens {
		if tokens[i].Keyword {
			continue
		}
		buf = buf[:0]
		for _, r := range tokens[i].Term {
			buf = append(buf, r)
		}
		// substitutions may rewrite runes without changing the length
		tokens[i].Term = string(buf[:f.stemmer.Stem(buf)])
	}
	return tokens
}
