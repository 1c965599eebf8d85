package stemmer

// suffixes is an ordered list of literal endings, pre-decoded to runes so
// that matching never touches UTF-8.
type suffixes [][]rune

func newSuffixes(words ...string) suffixes {
	out := make(suffixes, len(words))
	for i, w := range words {
		out[i] = []rune(w)
	}
	return out
}

// match reports whether s[:n] ends with any of the suffixes.
func (x suffixes) match(s []rune, n int) bool {
	for _, suf := range x {
		if endsWith(s, n, suf) {
			return true
		}
	}
	return false
}

// endsWith reports whether the trailing len(suffix) runes of s[:n] equal suffix.
func endsWith(s []rune, n int, suffix []rune) bool {
	if len(suffix) > n {
		return false
	}
	off := n - len(suffix)
	for i := len(suffix) - 1; i >= 0; i-- {
		if s[off+i] != suffix[i] {
			return false
		}
	}
	return true
}

func isVowel(r rune) bool {
	switch r {
	case 'α', 'ε', 'η', 'ι', 'ο', 'υ', 'ω':
		return true
	}
	return false
}

// isVowelNoY is isVowel without upsilon.
func isVowelNoY(r rune) bool {
	return r != 'υ' && isVowel(r)
}

func endsWithVowel(s []rune, n int) bool {
	return n > 0 && isVowel(s[n-1])
}

func endsWithVowelNoY(s []rune, n int) bool {
	return n > 0 && isVowelNoY(s[n-1])
}

// step is one rung of a longest-first suffix ladder: when s[:n] is longer
// than min and ends with one of ends, cut runes are removed.
type step struct {
	min  int
	cut  int
	ends suffixes
}

func newStep(min, cut int, words ...string) step {
	return step{min: min, cut: cut, ends: newSuffixes(words...)}
}

// firstStep returns the index of the first step of the ladder that matches
// s[:n], or -1.
func firstStep(s []rune, n int, ladder []step) int {
	for i, st := range ladder {
		if n > st.min && st.ends.match(s, n) {
			return i
		}
	}
	return -1
}
