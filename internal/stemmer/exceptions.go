package stemmer

import "unicode/utf8"

// scratchBytes bounds the stack buffer used for set lookups. Greek letters
// are two bytes in UTF-8, so this covers 64-letter words without allocating.
const scratchBytes = 128

// runeSet is an immutable set of words compared for exact equality against
// a rune prefix.
type runeSet struct {
	words  map[string]struct{}
	maxLen int
}

func newRuneSet(words ...string) runeSet {
	rs := runeSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		rs.add(w)
	}
	return rs
}

func (rs *runeSet) add(w string) {
	rs.words[w] = struct{}{}
	if n := utf8.RuneCountInString(w); n > rs.maxLen {
		rs.maxLen = n
	}
}

// contains reports whether the runes of s form a word of the set.
func (rs runeSet) contains(s []rune) bool {
	if len(s) > rs.maxLen {
		return false
	}
	var scratch [scratchBytes]byte
	b := scratch[:0]
	for _, r := range s {
		b = utf8.AppendRune(b, r)
	}
	_, ok := rs.words[string(b)]
	return ok
}

func (rs runeSet) len() int {
	return len(rs.words)
}

// Exception tables. Each belongs to exactly one rule and is matched against
// the whole remaining stem, never as a suffix.
var (
	// παρεα, στερεα
	exc4 = newRuneSet("θ", "δ", "ελ", "γαλ", "ν", "π", "ιδ", "παρ", "στερ",
		"ορφ", "ανδρ", "αντρ")

	// ηλιος, αγριος, χωριο, αγιος, νοτια, τηλιο, δημιος, ποντιος, σκορπιος
	exc5 = newRuneSet("αγ", "αγγελ", "αγρ", "αερ", "αθλ", "ακουσ", "αξ", "ασ",
		"β", "βιβλ", "βυτ", "γ", "γιαγ", "γων", "δ", "δαν", "δηλ", "δημ",
		"δοκιμ", "ελ", "ζαχαρ", "ηλ", "ηπ", "ιδ", "ισκ", "ιστ", "ιον", "ιων",
		"κιμωλ", "κολον", "κορ", "κτηρ", "κυρ", "λαγ", "λογ", "μαγ", "μπαν",
		"μπετον", "μπρ", "ναυτ", "νοτ", "οπαλ", "οξ", "ορ", "οσ", "παναγ",
		"πατρ", "πηλ", "πην", "πλαισ", "ποντ", "ραδ", "ροδ", "σκ", "σκορπ",
		"σουν", "σπαν", "σταδ", "συρ", "τηλ", "τιμ", "τοκ", "τοπ", "τροχ",
		"χωρ", "φιλ", "φωτ", "χ", "χιλ", "χρωμ")

	exc6 = newRuneSet("αδ", "αλ", "αμαν", "αμερ", "αμμοχαλ", "ανηθ", "αντιδ",
		"απλ", "αττ", "αφρ", "βασ", "βρωμ", "γεν", "γερ", "δ", "δικαν",
		"δυτ", "ειδ", "ενδ", "εξωδ", "ηθ", "θετ", "καλλιν", "καλπ", "καταδ",
		"κουζιν", "κρ", "κωδ", "λογ", "μ", "μερ", "μοναδ", "μουλ", "μουσ",
		"μπαγιατ", "μπαν", "μπολ", "μποσ", "μυστ", "ν", "νιτ", "ξικ", "οπτ",
		"παν", "πετσ", "πικαντ", "πιτσ", "πλαστ", "πλιατσ", "ποντ", "ποστελν",
		"πρωτοδ", "σερτ", "σημαντ", "στατ", "συναδ", "συνομηλ", "τελ", "τεχν",
		"τροπ", "τσαμ", "υποδ", "φ", "φιλον", "φυλοδ", "φυσ", "χασ")

	exc7 = newRuneSet("αναπ", "αποθ", "αποκ", "αποστ", "βουβ", "ξεθ", "ουλ",
		"πεθ", "πικρ", "ποτ", "σιχ", "χ")

	exc8a = newRuneSet("τρ", "τσ")

	exc8b = newRuneSet("βετερ", "βουλκ", "βραχμ", "γ", "δραδουμ", "θ", "καλπουζ",
		"καστελ", "κορμορ", "λαοπλ", "μωαμεθ", "μ", "μουσουλμ", "ν", "ουλ",
		"π", "πελεκ", "πλ", "πολισ", "πορτολ", "σαρακατσ", "σουλτ",
		"τσαρλατ", "ορφ", "τσιγγ", "τσοπ", "φωτοστεφ", "χ", "ψυχοπλ", "αγ",
		"γαλ", "γερ", "δεκ", "διπλ", "αμερικαν", "ουρ", "πιθ",
		"πουριτ", "σ", "ζωντ", "ικ", "καστ", "κοπ", "λιχ", "λουθηρ", "μαιντ",
		"μελ", "σιγ", "σπ", "στεγ", "τραγ", "τσαγ", "φ", "ερ", "αδαπ",
		"αθιγγ", "αμηχ", "ανικ", "ανοργ", "απηγ", "απιθ", "ατσιγγ", "βασ",
		"βασκ", "βαθυγαλ", "βιομηχ", "βραχυκ", "διατ", "διαφ", "ενοργ",
		"θυσ", "καπνοβιομηχ", "καταγαλ", "κλιβ", "κοιλαρφ", "λιβ",
		"μεγλοβιομηχ", "μικροβιομηχ", "νταβ", "ξηροκλιβ", "ολιγοδαμ",
		"ολογαλ", "πενταρφ", "περηφ", "περιτρ", "πλατ", "πολυδαπ", "πολυμηχ",
		"στεφ", "ταβ", "τετ", "υπερηφ", "υποκοπ", "χαμηλοδαπ", "ψηλοταβ")

	exc9 = newRuneSet("αβαρ", "βεν", "εναρ", "αβρ", "αδ", "αθ", "αν", "απλ",
		"βαρον", "ντρ", "σκ", "κοπ", "μπορ", "νιφ", "παγ", "παρακαλ", "σερπ",
		"σκελ", "συρφ", "τοκ", "υ", "δ", "εμ", "θαρρ", "θ")

	exc12a = newRuneSet("π", "απ", "συμπ", "ασυμπ", "ακαταπ", "αμεταμφ")

	exc12b = newRuneSet("αλ", "αρ", "εκτελ", "ζ", "μ", "ξ", "παρακαλ", "προ", "νισ")

	exc13 = newRuneSet("διαθ", "θ", "παρακαταθ", "προσθ", "συνθ")

	exc14 = newRuneSet("φαρμακ", "χαδ", "αγκ", "αναρρ", "βρομ", "εκλιπ", "λαμπιδ",
		"λεχ", "μ", "πατ", "ρ", "λ", "μεδ", "μεσαζ", "υποτειν", "αμ", "αιθ",
		"ανηκ", "δεσποζ", "ενδιαφερ", "δε", "δευτερευ", "καθαρευ", "πλε",
		"τσα")

	exc15a = newRuneSet("αβαστ", "πολυφ", "αδηφ", "παμφ", "ρ", "ασπ", "αφ", "αμαλ",
		"αμαλλι", "ανυστ", "απερ", "ασπαρ", "αχαρ", "δερβεν", "δροσοπ",
		"ξεφ", "νεοπ", "νομοτ", "ολοπ", "ομοτ", "προστ", "προσωποπ", "συμπ",
		"συντ", "τ", "υποτ", "χαρ", "αειπ", "αιμοστ", "ανυπ", "αποτ",
		"αρτιπ", "διατ", "εν", "επιτ", "κροκαλοπ", "σιδηροπ", "λ", "ναυ",
		"ουλαμ", "ουρ", "π", "τρ", "μ")

	exc15b = newRuneSet("ψοφ", "ναυλοχ")

	exc16 = newRuneSet("ν", "χερσον", "δωδεκαν", "ερημον", "μεγαλον", "επταν", "ι")

	exc17 = newRuneSet("ασβ", "σβ", "αχρ", "χρ", "απλ", "αειμν", "δυσχρ", "ευχρ",
		"κοινοχρ", "παλιμψ")

	exc18 = newRuneSet("ν", "ρ", "σπι", "στραβομουτσ", "κακομουτσ", "εξων")

	exc19 = newRuneSet("παρασουσ", "φ", "χ", "ωριοπλ", "αζ", "αλλοσουσ", "ασουσ")

	// γραμματα keeps its -α
	exc20a = newRuneSet("γραμμ")

	exc20b = newRuneSet("γεμ", "σταμ")

	exc23a = newRuneSet("εξ", "εσ", "κατ", "αν", "κ", "μ", "πρ")

	exc23b = newRuneSet("κα", "μ", "λε", "ελε", "δε")
)
