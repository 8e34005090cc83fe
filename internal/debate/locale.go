package debate

import "strings"

// DetectLocale classifies text as English or Spanish using lexical
// heuristics. It runs once, on the first message of a conversation; the
// result is locked and every later reply renders in it.
//
// Spanish diacritics are a strong signal and win outright. Otherwise
// each locale scores one point per marker word present (whole-word
// match); a locale needs at least two hits and strictly more than the
// other. Bilingual pattern phrases break remaining ties. No signal at
// all defaults to English.
func DetectLocale(text string) Locale {
	if strings.ContainsAny(text, "áéíóúüñ¿¡") {
		return LocaleES
	}

	lower := " " + strings.ToLower(text) + " "
	count := func(words []string) int {
		n := 0
		for _, w := range words {
			if strings.Contains(lower, " "+w+" ") {
				n++
			}
		}
		return n
	}

	esCount := count(markers[LocaleES].specificWords)
	enCount := count(markers[LocaleEN].specificWords)
	if esCount >= 2 && esCount > enCount {
		return LocaleES
	}
	if enCount >= 2 && enCount > esCount {
		return LocaleEN
	}

	hasPattern := func(patterns []string) bool {
		for _, p := range patterns {
			if strings.Contains(lower, p) {
				return true
			}
		}
		return false
	}
	esPattern := hasPattern(markers[LocaleES].patterns)
	enPattern := hasPattern(markers[LocaleEN].patterns)
	if esPattern && !enPattern {
		return LocaleES
	}
	return LocaleEN
}
