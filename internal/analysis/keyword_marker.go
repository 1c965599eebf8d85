package analysis

import "GreekStem/internal/stemmer"

// KeywordMarkerFilter flags tokens whose term is a protected word so that
// later stemming filters leave them alone.
type KeywordMarkerFilter struct {
	// protected reuses the stemmer's immutable word set; nil marks nothing.
	protected *stemmer.Stopwords
}

// NewKeywordMarkerFilter creates a filter protecting the given words. Words
// are compared after folding, so they must be given in folded form.
func NewKeywordMarkerFilter(protected *stemmer.Stopwords) *KeywordMarkerFilter {
	if protected == nil {
		protected = stemmer.NewStopwords()
	}
	return &KeywordMarkerFilter{protected: protected}
}

// Filter sets Keyword on every protected token.
func (f *KeywordMarkerFilter) Filter(tokens []Token) []Token {
	for i := range tokens {
		if f.protected.ContainsString(tokens[i].Term) {
			tokens[i].Keyword = true
		}
	}
	return tokens
}
