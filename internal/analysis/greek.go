package analysis

import (
	"errors"
	"fmt"
	"log/slog"

	"GreekStem/internal/stemmer"
	"GreekStem/internal/storage"
)

// GreekOptions configures a GreekAnalyzer.
type GreekOptions struct {
	// Stopwords are never stemmed. Nil selects the bundled list.
	Stopwords *stemmer.Stopwords

	// Protected words are keyword-marked before stemming. The set type is
	// the stemmer's word set; membership here means "never stem", not
	// "stopword".
	Protected *stemmer.Stopwords
}

// GreekAnalyzer tokenizes text, folds case and diacritics, marks protected
// words and stems the rest.
type GreekAnalyzer struct {
	filters []TokenFilter
}

// NewGreekAnalyzer creates a GreekAnalyzer.
func NewGreekAnalyzer(opts GreekOptions) *GreekAnalyzer {
	return newGreekAnalyzer(
		NewGreekLowerCaseFilter(),
		NewKeywordMarkerFilter(opts.Protected),
		NewGreekStemFilter(stemmer.New(opts.Stopwords)),
	)
}

func newGreekAnalyzer(lower *GreekLowerCaseFilter, marker *KeywordMarkerFilter, stem *GreekStemFilter) *GreekAnalyzer {
	return &GreekAnalyzer{filters: []TokenFilter{lower, marker, stem}}
}

// Analyze returns the stemmed tokens of text.
func (a *GreekAnalyzer) Analyze(_ string, text string) []Token {
	return applyFilters(tokenize(text), a.filters)
}

// LoadGreekOptions reads the stopword and protected word lists. An
// unreadable stopword file falls back to the bundled list; an unreadable
// protected word file leaves no word protected. Both failures are logged
// and returned joined, so callers may treat them as fatal instead.
func LoadGreekOptions(stopwordsPath, protectedPath string, logger *slog.Logger) (GreekOptions, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var opts GreekOptions
	var errs []error

	if stopwordsPath != "" {
		sw, err := loadWordList(stopwordsPath)
		if err != nil {
			logger.Warn("stopwords unavailable, using bundled list",
				"path", stopwordsPath,
				"error", err,
			)
			errs = append(errs, err)
		} else {
			logger.Info("loaded stopwords", "path", stopwordsPath, "count", sw.Len())
			opts.Stopwords = sw
		}
	}

	if protectedPath != "" {
		pw, err := loadWordList(protectedPath)
		if err != nil {
			logger.Warn("protected words unavailable", "path", protectedPath, "error", err)
			errs = append(errs, err)
		} else {
			logger.Info("loaded protected words", "path", protectedPath, "count", pw.Len())
			opts.Protected = pw
		}
	}

	return opts, errors.Join(errs...)
}

func loadWordList(path string) (*stemmer.Stopwords, error) {
	if !storage.FileExists(path) {
		return nil, fmt.Errorf("%w: no such file %s", stemmer.ErrConfiguration, path)
	}
	return stemmer.LoadStopwordsFile(path)
}
