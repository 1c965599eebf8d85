package analysis

// Token represents a single token produced by an analyzer.
type Token struct {
	Term      string
	Position  int
	StartByte int
	EndByte   int

	// Keyword marks a token that stemming filters must pass through
	// unchanged.
	Keyword bool
}

// Analyzer processes text into a stream of tokens.
// Implementations MUST be safe for concurrent use.
type Analyzer interface {
	// Analyze tokenizes the input text and returns tokens with positions.
	Analyze(field string, text string) []Token
}

// TokenFilter rewrites a token stream in place. Filters never add or drop
// tokens, so positions and offsets survive them.
type TokenFilter interface {
	Filter(tokens []Token) []Token
}

// applyFilters runs the filters over tokens in order.
func applyFilters(tokens []Token, filters []TokenFilter) []Token {
	for _, f := range filters {
		tokens = f.Filter(tokens)
	}
	return tokens
}
