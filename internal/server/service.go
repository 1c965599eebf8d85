package server

import (
	"errors"
	"fmt"
	"log/slog"

	"GreekStem/internal/analysis"
)

var (
	ErrAnalyzerNotFound = errors.New("analyzer not found")
	ErrNoWords          = errors.New("no words provided")
	ErrTooManyWords     = errors.New("too many words")
)

// StemResult pairs an input word with its stem.
type StemResult struct {
	Word string `json:"word"`
	Stem string `json:"stem"`
}

// Service runs stemming and analysis requests against a Registry.
type Service struct {
	registry *analysis.Registry
	lower    analysis.TokenFilter
	stem     analysis.TokenFilter
	maxWords int
	logger   *slog.Logger
}

// NewService creates a Service. The registry must hold the Greek lowercase
// and stem filters.
func NewService(registry *analysis.Registry, maxWords int, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	lower, err := registry.Filter(analysis.FilterGreekLowerCase)
	if err != nil {
		return nil, fmt.Errorf("lookup lowercase filter: %w", err)
	}
	stem, err := registry.Filter(analysis.FilterGreekStem)
	if err != nil {
		return nil, fmt.Errorf("lookup stem filter: %w", err)
	}
	return &Service{
		registry: registry,
		lower:    lower,
		stem:     stem,
		maxWords: maxWords,
		logger:   logger,
	}, nil
}

// Stem returns the stem of every word, in order. Words are folded first
// unless raw is set, in which case they must already be lowercase and
// unaccented.
func (s *Service) Stem(words []string, raw bool) ([]StemResult, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if s.maxWords > 0 && len(words) > s.maxWords {
		return nil, fmt.Errorf("%w: %d exceeds limit of %d", ErrTooManyWords, len(words), s.maxWords)
	}

	tokens := make([]analysis.Token, len(words))
	for i, w := range words {
		tokens[i] = analysis.Token{Term: w, Position: i, EndByte: len(w)}
	}
	if !raw {
		tokens = s.lower.Filter(tokens)
	}
	tokens = s.stem.Filter(tokens)

	results := make([]StemResult, len(words))
	for i, w := range words {
		results[i] = StemResult{Word: w, Stem: tokens[i].Term}
	}
	return results, nil
}

// Analyze runs the named analyzer over text.
func (s *Service) Analyze(name, text string) ([]analysis.Token, error) {
	a, err := s.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrAnalyzerNotFound, name)
	}
	return a.Analyze("", text), nil
}

// Analyzers returns the registered analyzer names, sorted.
func (s *Service) Analyzers() []string {
	return s.registry.Names()
}
