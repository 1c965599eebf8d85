package analysis

import (
	"fmt"
	"sort"
	"sync"

	"GreekStem/internal/stemmer"
)

// Names of the built-in analyzers and filters.
const (
	AnalyzerStandard     = "standard"
	AnalyzerKeyword      = "keyword"
	AnalyzerGreek        = "greek"
	FilterGreekLowerCase = "greek_lowercase"
)

// Registry manages analyzer and token filter instances by name. Registered
// instances are shared between goroutines.
type Registry struct {
	analyzers map[string]Analyzer
	filters   map[string]TokenFilter
	mu        sync.RWMutex
}

// NewRegistry creates a Registry with the built-in analyzers registered and
// the Greek ones using the bundled stopwords.
func NewRegistry() *Registry {
	return NewRegistryWithOptions(GreekOptions{})
}

// NewRegistryWithOptions creates a Registry whose Greek analyzer and stem
// filter use opts.
func NewRegistryWithOptions(opts GreekOptions) *Registry {
	lower := NewGreekLowerCaseFilter()
	stem := NewGreekStemFilter(stemmer.New(opts.Stopwords))
	r := &Registry{
		analyzers: make(map[string]Analyzer),
		filters:   make(map[string]TokenFilter),
	}
	r.analyzers[AnalyzerStandard] = NewStandardAnalyzer()
	r.analyzers[AnalyzerKeyword] = NewKeywordAnalyzer()
	r.analyzers[AnalyzerGreek] = newGreekAnalyzer(lower, NewKeywordMarkerFilter(opts.Protected), stem)
	r.filters[FilterGreekLowerCase] = lower
	r.filters[FilterGreekStem] = stem
	return r
}

// Get returns the analyzer registered under the given name.
func (r *Registry) Get(name string) (Analyzer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.analyzers[name]
	if !ok {
		return nil, fmt.Errorf("unknown analyzer: %q", name)
	}
	return a, nil
}

// Register adds a custom analyzer to the registry.
func (r *Registry) Register(name string, a Analyzer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.analyzers[name]; exists {
		return fmt.Errorf("analyzer already registered: %q", name)
	}
	r.analyzers[name] = a
	return nil
}

// Names returns the names of all registered analyzers, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.analyzers))
	for name := range r.analyzers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Filter returns the token filter registered under the given name.
func (r *Registry) Filter(name string) (TokenFilter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.filters[name]
	if !ok {
		return nil, fmt.Errorf("unknown token filter: %q", name)
	}
	return f, nil
}

// RegisterFilter adds a custom token filter to the registry.
func (r *Registry) RegisterFilter(name string, f TokenFilter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.filters[name]; exists {
		return fmt.Errorf("token filter already registered: %q", name)
	}
	r.filters[name] = f
	return nil
}

// FilterNames returns the names of all registered token filters, sorted.
func (r *Registry) FilterNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.filters))
	for name := range r.filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
