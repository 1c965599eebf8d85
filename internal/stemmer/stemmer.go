// Package stemmer reduces inflected Greek words to a stem.
//
// Input must already be lowercase, free of diacritics, and have final sigma
// folded to σ. The stemmer works in place on a rune buffer and only ever
// returns a length no larger than the one it was given.
package stemmer

import "fmt"

// minLength is the shortest word the rules are applied to.
const minLength = 3

// Stemmer applies the rule cascade. It holds no mutable state and is safe
// for concurrent use.
type Stemmer struct {
	stopwords *Stopwords
}

// New returns a Stemmer that leaves the given stopwords untouched. A nil set
// selects DefaultStopwords.
func New(stopwords *Stopwords) *Stemmer {
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}
	return &Stemmer{stopwords: stopwords}
}

// Stopwords returns the set the stemmer guards. A zero Stemmer guards
// DefaultStopwords.
func (st *Stemmer) Stopwords() *Stopwords {
	if st == nil || st.stopwords == nil {
		return DefaultStopwords()
	}
	return st.stopwords
}

// StemN stems buf[:n] in place and returns the stem length. Runes in
// buf[stem:n] are left unspecified.
func (st *Stemmer) StemN(buf []rune, n int) (int, error) {
	if n < 0 || n > len(buf) {
		return 0, fmt.Errorf("%w: length %d outside buffer of %d", ErrInvalidArgument, n, len(buf))
	}
	return st.stem(buf, n), nil
}

// Stem stems the whole buffer in place and returns the stem length.
func (st *Stemmer) Stem(buf []rune) int {
	return st.stem(buf, len(buf))
}

// StemString returns the stem of word.
func (st *Stemmer) StemString(word string) string {
	buf := []rune(word)
	return string(buf[:st.stem(buf, len(buf))])
}

func (st *Stemmer) stem(s []rune, n int) int {
	if n < minLength || st.Stopwords().Contains(s[:n]) {
		return n
	}

	orig := n
	n = rule0(s, n)
	n = rule1(s, n)
	n = rule2(s, n)
	n = rule3(s, n)
	n = rule4(s, n)
	n = rule5a(s, n)
	n = rule5b(s, n)
	n = rule6(s, n)
	n = rule7(s, n)
	n = rule8(s, n)
	n = rule9(s, n)
	n = rule10(s, n)
	n = rule11(s, n)
	n = rule12(s, n)
	n = rule13(s, n)
	n = rule14(s, n)
	n = rule15(s, n)
	n = rule16(s, n)
	n = rule17(s, n)
	n = rule18(s, n)
	n = rule19(s, n)
	n = rule20(s, n)
	n = rule21(s, n)

	// the long list only runs when none of the short rules fired
	if n == orig {
		n = rule22(s, n)
	}
	return rule23(s, n)
}
