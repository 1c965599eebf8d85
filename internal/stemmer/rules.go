package stemmer

// Every rule takes the buffer and the current stem length and returns the
// new length. Truncation only moves the length; characters past it stay in
// place so that a full restore is a plain increment.

// Irregular paradigms: καθεστως, γεγονος, κρεας, περας, τερας, φως and the
// -γιο diminutives. No exceptions apply.
var rule0Ladder = []step{
	newStep(9, 4, "καθεστωτοσ", "καθεστωτων"),
	newStep(8, 4, "γεγονοτοσ", "γεγονοτων"),
	newStep(8, 3, "καθεστωτα"),
	newStep(7, 4, "τατογιου", "τατογιων"),
	newStep(7, 3, "γεγονοτα"),
	newStep(7, 2, "καθεστωσ"),
	newStep(6, 4, "σκαγιου", "σκαγιων", "κρεατοσ", "κρεατων", "περατοσ",
		"περατων", "τερατοσ", "τερατων"),
	newStep(6, 3, "τατογια"),
	newStep(6, 2, "γεγονοσ"),
	newStep(5, 4, "φαγιου", "φαγιων", "σογιου", "σογιων"),
	newStep(5, 3, "σκαγια", "κρεατα", "περατα", "τερατα"),
	newStep(4, 3, "φαγια", "σογια", "φωτοσ", "φωτων"),
	newStep(4, 2, "κρεασ", "περασ", "τερασ"),
	newStep(3, 2, "φωτα"),
	newStep(2, 1, "φωσ"),
	newStep(2, 1, "ευα"),
}

func rule0(s []rune, n int) int {
	if i := firstStep(s, n, rule0Ladder); i >= 0 {
		return n - rule0Ladder[i].cut
	}
	return n
}

var (
	rule1Ends = newSuffixes("αδεσ", "αδων")
	// stems that drop -αδ- entirely: μαμαδες -> μαμ
	rule1Keep = newSuffixes("οκ", "μαμ", "μαν", "μπαμπ", "πατερ", "γιαγι",
		"νταντ", "κυρ", "θει", "πεθερ", "μουσαμ", "παρ", "ψαρ", "τζουρ",
		"ταμπουρ", "καπλαμ")
)

func rule1(s []rune, n int) int {
	if n > 4 && rule1Ends.match(s, n) {
		n -= 4
		if !rule1Keep.match(s, n) {
			n += 2 // -αδ
		}
	}
	return n
}

var (
	rule2Ends    = newSuffixes("εδεσ", "εδων")
	rule2Restore = newSuffixes("οπ", "ιπ", "εμπ", "υπ", "γηπ", "δαπ", "κρασπ", "μιλ")
)

func rule2(s []rune, n int) int {
	if n > 4 && rule2Ends.match(s, n) {
		n -= 4
		if rule2Restore.match(s, n) {
			n += 2 // -εδ
		}
	}
	return n
}

var (
	rule3Ends    = newSuffixes("ουδεσ", "ουδων")
	rule3Restore = newSuffixes("αρκ", "καλιακ", "πεταλ", "λιχ", "πλεξ", "σκ", "σ",
		"φλ", "φρ", "βελ", "λουλ", "χν", "σπ", "τραγ", "φε")
)

func rule3(s []rune, n int) int {
	if n > 5 && rule3Ends.match(s, n) {
		n -= 5
		if rule3Restore.match(s, n) {
			n += 3 // -ουδ
		}
	}
	return n
}

var rule4Ladder = []step{
	newStep(3, 3, "εωσ", "εων", "εασ"),
	newStep(2, 2, "εα"),
}

func rule4(s []rune, n int) int {
	if i := firstStep(s, n, rule4Ladder); i >= 0 {
		n -= rule4Ladder[i].cut
		if exc4.contains(s[:n]) {
			n++ // -ε
		}
	}
	return n
}

var rule5aLadder = []step{
	newStep(7, 3, "ειο", "εια"),
	newStep(8, 4, "ειοσ", "ειοι", "ειασ", "ειεσ", "ειου", "ειων"),
	newStep(9, 5, "ειουσ"),
}

func rule5a(s []rune, n int) int {
	if i := firstStep(s, n, rule5aLadder); i >= 0 {
		n -= rule5aLadder[i].cut
	}
	return n
}

var (
	rule5bLadder = []step{
		newStep(2, 2, "ιο", "ια"),
		newStep(3, 3, "ιασ", "ιεσ", "ιοσ", "ιου", "ιοι", "ιον", "ιων"),
		newStep(4, 4, "ιουσ"),
	}
	// ρολογια -> ρολοι, κατωγια -> κατωι
	rule5bWatch = newSuffixes("ρολογ", "κατωγ")
	rule5bPal   = newSuffixes("παλ")
)

func rule5b(s []rune, n int) int {
	i := firstStep(s, n, rule5bLadder)
	if i < 0 {
		return n
	}
	n -= rule5bLadder[i].cut
	if i == 0 && rule5bWatch.match(s, n) {
		s[n-1] = 'ι'
		return n
	}
	switch {
	case endsWithVowel(s, n) || exc5.contains(s[:n]) || n < 2:
		n++ // -ι
	case rule5bPal.match(s, n):
		// at least two runes were removed, so -αι fits
		n += 2
		s[n-2] = 'α'
		s[n-1] = 'ι'
	}
	return n
}

var (
	rule6Ladder = []step{
		newStep(3, 3, "ικα", "ικο", "ικη"),
		newStep(4, 4, "ικου", "ικων", "ικωσ", "ικοσ", "ικον", "ικοι", "ικησ", "ικεσ"),
		newStep(5, 5, "ικουσ", "ικεισ"),
	}
	rule6Restore = newSuffixes("φοιν")
)

func rule6(s []rune, n int) int {
	if i := firstStep(s, n, rule6Ladder); i >= 0 {
		n -= rule6Ladder[i].cut
		if endsWithVowel(s, n) || exc6.contains(s[:n]) || rule6Restore.match(s, n) {
			n += 2 // -ικ
		}
	}
	return n
}

var (
	rule7Whole  = []rune("αγαμε")
	rule7Ladder = []step{
		newStep(7, 7, "ηθηκαμε"),
		newStep(6, 6, "ουσαμε"),
		newStep(5, 5, "αγαμε", "ησαμε", "ηκαμε"),
	}
	rule7Ame = newSuffixes("αμε")
)

func rule7(s []rune, n int) int {
	if n == 5 && endsWith(s, n, rule7Whole) {
		return n - 1
	}
	if i := firstStep(s, n, rule7Ladder); i >= 0 {
		n -= rule7Ladder[i].cut
	}
	if n > 3 && rule7Ame.match(s, n) {
		n -= 3
		if exc7.contains(s[:n]) {
			n += 2 // -αμ
		}
	}
	return n
}

var (
	rule8Ladder = []step{
		newStep(8, 8, "ιουντανε"),
		newStep(7, 7, "ιοντανε", "ουντανε", "ηθηκανε"),
		newStep(6, 6, "ιοτανε", "οντανε", "ουσανε"),
		newStep(5, 5, "αγανε", "ησανε", "οτανε", "ηκανε"),
	}
	rule8Ane = newSuffixes("ανε")
)

func rule8(s []rune, n int) int {
	if i := firstStep(s, n, rule8Ladder); i >= 0 {
		n -= rule8Ladder[i].cut
		if exc8a.contains(s[:n]) {
			// at least five runes were removed, so -αγαν fits
			n += 4
			s[n-4] = 'α'
			s[n-3] = 'γ'
			s[n-2] = 'α'
			s[n-1] = 'ν'
		}
	}
	if n > 3 && rule8Ane.match(s, n) {
		n -= 3
		if endsWithVowelNoY(s, n) || exc8b.contains(s[:n]) {
			n += 2 // -αν
		}
	}
	return n
}

var (
	rule9Esete   = newSuffixes("ησετε")
	rule9Ete     = newSuffixes("ετε")
	rule9Restore = newSuffixes("οδ", "αιρ", "φορ", "ταθ", "διαθ", "σχ", "ενδ", "ευρ",
		"τιθ", "υπερθ", "ραθ", "ενθ", "ροθ", "σθ", "πυρ", "αιν", "συνδ", "συν",
		"συνθ", "χωρ", "πον", "βρ", "καθ", "ευθ", "εκθ", "νετ", "ρον", "αρκ",
		"βαρ", "βολ", "ωφελ")
)

func rule9(s []rune, n int) int {
	if n > 5 && rule9Esete.match(s, n) {
		n -= 5
	}
	if n > 3 && rule9Ete.match(s, n) {
		n -= 3
		if exc9.contains(s[:n]) || endsWithVowelNoY(s, n) || rule9Restore.match(s, n) {
			n += 2 // -ετ
		}
	}
	return n
}

var (
	rule10Ends = newSuffixes("οντασ", "ωντασ")
	rule10Arx  = []rune("αρχ")
	rule10Kre  = []rune("κρε")
)

func rule10(s []rune, n int) int {
	if n > 5 && rule10Ends.match(s, n) {
		n -= 5
		if n == 3 && endsWith(s, n, rule10Arx) {
			n += 3 // αρχοντ
			s[n-3] = 'ο'
		}
		if endsWith(s, n, rule10Kre) {
			n += 3 // κρεωντ
			s[n-3] = 'ω'
		}
	}
	return n
}

var (
	rule11Ladder = []step{
		newStep(6, 6, "ομαστε"),
		newStep(7, 7, "ιομαστε"),
	}
	rule11On = []rune("ον")
)

// rule11 only ever takes its first rung: every -ιομαστε form also ends in
// -ομαστε.
func rule11(s []rune, n int) int {
	i := firstStep(s, n, rule11Ladder)
	if i < 0 {
		return n
	}
	n -= rule11Ladder[i].cut
	if n == 2 && endsWith(s, n, rule11On) {
		n += 5 // -ομαστ
		if i == 1 {
			s[n-5] = 'ο'
			s[n-4] = 'μ'
			s[n-3] = 'α'
			s[n-2] = 'σ'
			s[n-1] = 'τ'
		}
	}
	return n
}

var (
	rule12Ieste = newSuffixes("ιεστε")
	rule12Este  = newSuffixes("εστε")
)

func rule12(s []rune, n int) int {
	if n > 5 && rule12Ieste.match(s, n) {
		n -= 5
		if exc12a.contains(s[:n]) {
			n += 4 // -ιεστ
		}
	}
	if n > 4 && rule12Este.match(s, n) {
		n -= 4
		if exc12b.contains(s[:n]) {
			n += 3 // -εστ
		}
	}
	return n
}

var (
	rule13Passive = []step{
		newStep(6, 6, "ηθηκεσ"),
		newStep(5, 5, "ηθηκα", "ηθηκε"),
	}
	rule13Ladder = []step{
		newStep(4, 4, "ηκεσ"),
		newStep(3, 3, "ηκα", "ηκε"),
	}
	rule13Restore = newSuffixes("σκωλ", "σκουλ", "ναρθ", "σφ", "οθ", "πιθ")
)

func rule13(s []rune, n int) int {
	if i := firstStep(s, n, rule13Passive); i >= 0 {
		n -= rule13Passive[i].cut
	}
	if i := firstStep(s, n, rule13Ladder); i >= 0 {
		n -= rule13Ladder[i].cut
		if exc13.contains(s[:n]) || rule13Restore.match(s, n) {
			n += 2 // -ηκ
		}
	}
	return n
}

var (
	rule14Ladder = []step{
		newStep(5, 5, "ουσεσ"),
		newStep(4, 4, "ουσα", "ουσε"),
	}
	rule14Restore = newSuffixes("ποδαρ", "βλεπ", "πανταχ", "φρυδ", "μαντιλ", "μαλλ",
		"κυματ", "λαχ", "ληγ", "φαγ", "ομ", "πρωτ")
)

func rule14(s []rune, n int) int {
	if i := firstStep(s, n, rule14Ladder); i >= 0 {
		n -= rule14Ladder[i].cut
		if exc14.contains(s[:n]) || endsWithVowel(s, n) || rule14Restore.match(s, n) {
			n += 3 // -ουσ
		}
	}
	return n
}

var (
	rule15Ladder = []step{
		newStep(4, 4, "αγεσ"),
		newStep(3, 3, "αγα", "αγε"),
	}
	rule15Restore = newSuffixes("οφ", "πελ", "χορτ", "λλ", "σφ", "ρπ", "φρ", "πρ",
		"λοχ", "σμην")
	rule15Veto = newSuffixes("κολλ")
)

func rule15(s []rune, n int) int {
	if i := firstStep(s, n, rule15Ladder); i >= 0 {
		n -= rule15Ladder[i].cut
		restore := exc15a.contains(s[:n]) || rule15Restore.match(s, n)
		veto := exc15b.contains(s[:n]) || rule15Veto.match(s, n)
		if restore && !veto {
			n += 2 // -αγ
		}
	}
	return n
}

var rule16Ladder = []step{
	newStep(4, 4, "ησου"),
	newStep(3, 3, "ησε", "ησα"),
}

func rule16(s []rune, n int) int {
	if i := firstStep(s, n, rule16Ladder); i >= 0 {
		n -= rule16Ladder[i].cut
		if exc16.contains(s[:n]) {
			n += 2 // -ησ
		}
	}
	return n
}

var rule17Ends = newSuffixes("ηστε")

func rule17(s []rune, n int) int {
	if n > 4 && rule17Ends.match(s, n) {
		n -= 4
		if exc17.contains(s[:n]) {
			n += 3 // -ηστ
		}
	}
	return n
}

var rule18Ladder = []step{
	newStep(6, 6, "ησουνε", "ηθουνε"),
	newStep(4, 4, "ουνε"),
}

func rule18(s []rune, n int) int {
	if i := firstStep(s, n, rule18Ladder); i >= 0 {
		n -= rule18Ladder[i].cut
		if exc18.contains(s[:n]) {
			n += 3
			s[n-3] = 'ο'
			s[n-2] = 'υ'
			s[n-1] = 'ν'
		}
	}
	return n
}

var rule19Ladder = []step{
	newStep(6, 6, "ησουμε", "ηθουμε"),
	newStep(4, 4, "ουμε"),
}

func rule19(s []rune, n int) int {
	if i := firstStep(s, n, rule19Ladder); i >= 0 {
		n -= rule19Ladder[i].cut
		if exc19.contains(s[:n]) {
			n += 3
			s[n-3] = 'ο'
			s[n-2] = 'υ'
			s[n-1] = 'μ'
		}
	}
	return n
}

// Neuter nouns in -μα. The cut leaves the μ in place.
var rule20Ladder = []step{
	newStep(6, 5, "ματουσ"),
	newStep(5, 4, "ματων", "ματοσ", "ματωσ", "ματου", "ματησ", "ματεσ", "ματοι"),
	newStep(4, 3, "ματα", "ματο", "ματη"),
}

func rule20(s []rune, n int) int {
	if i := firstStep(s, n, rule20Ladder); i >= 0 {
		n -= rule20Ladder[i].cut
		switch {
		case exc20a.contains(s[:n]):
			n++
			s[n-1] = 'α'
		case exc20b.contains(s[:n]):
			n += 2 // -ατ
		}
	}
	return n
}

var rule21Ends = newSuffixes("ουα")

func rule21(s []rune, n int) int {
	if n > 3 && rule21Ends.match(s, n) {
		return n - 1
	}
	return n
}

// rule22Ladder is the long list of generic inflections, longest first.
var rule22Ladder = []step{
	newStep(9, 9, "ιοντουσαν"),
	newStep(8, 8, "ιομασταν", "ιοσασταν", "ιουμαστε", "οντουσαν"),
	newStep(7, 7, "ιεμαστε", "ιεσαστε", "ιομουνα", "ιοσαστε", "ιοσουνα",
		"ιουνται", "ιουνταν", "ηθηκατε", "ομασταν", "οσασταν", "ουμαστε"),
	newStep(6, 6, "ιομουν", "ιονταν", "ιοσουν", "ηθειτε", "ηθηκαν", "ομουνα",
		"οσαστε", "οσουνα", "ουνται", "ουνταν", "ουσατε"),
	newStep(5, 5, "αγατε", "ιεμαι", "ιεται", "ιεσαι", "ιοταν", "ιουμα",
		"ηθεισ", "ηθουν", "ηκατε", "ησατε", "ησουν", "ομουν", "ονται",
		"ονταν", "οσουν", "ουμαι", "ουσαν"),
	newStep(4, 4, "αγαν", "αμαι", "ασαι", "αται", "ειτε", "εσαι", "εται",
		"ηδεσ", "ηδων", "ηθει", "ηκαν", "ησαν", "ησει", "ησεσ", "ομαι", "οταν"),
	newStep(3, 3, "αει", "εισ", "ηθω", "ησω", "ουν", "οισ", "ουσ"),
	newStep(2, 2, "αν", "ασ", "αω", "ει", "εσ", "ησ", "οι", "οσ", "ου", "υα",
		"υσ", "ων"),
}

func rule22(s []rune, n int) int {
	if i := firstStep(s, n, rule22Ladder); i >= 0 {
		return n - rule22Ladder[i].cut
	}
	if n > 1 && endsWithVowel(s, n) {
		return n - 1
	}
	return n
}

var (
	rule23Superlative = newSuffixes("εστερ", "εστατ")
	rule23Comparative = newSuffixes("οτερ", "οτατ", "υτερ", "υτατ", "ωτερ", "ωτατ")
)

// rule23 strips comparative and superlative endings. It has no minimum
// length: a word that is nothing but the ending stems to empty.
func rule23(s []rune, n int) int {
	if rule23Superlative.match(s, n) {
		return n - 5
	}
	if !rule23Comparative.match(s, n) {
		return n
	}
	n -= 4
	switch {
	case exc23a.contains(s[:n]):
		n += 4
	case exc23b.contains(s[:n]):
		n += 2
		s[n-2] = 'υ'
		s[n-1] = 'τ'
	}
	return n
}
