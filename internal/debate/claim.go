package debate

import "strings"

const claimMaxLen = 200

// ExtractClaim pulls the key claim out of the user's message for the
// refutation part: the longest clause, with opinion fillers stripped
// and the length capped. An empty result falls back to a generic
// "your point" in the conversation's locale.
func ExtractClaim(text string, locale Locale) string {
	b := bank(locale)

	clauses := strings.FieldsFunc(strings.TrimSpace(text), func(r rune) bool {
		return r == '.' || r == '?' || r == '!' || r == ';'
	})
	longest := ""
	for _, clause := range clauses {
		clause = strings.TrimSpace(clause)
		if len(clause) > len(longest) {
			longest = clause
		}
	}
	if longest == "" {
		return b.fallbackClaim
	}

	for _, filler := range b.fillers {
		for {
			idx := strings.Index(strings.ToLower(longest), filler)
			if idx < 0 {
				break
			}
			longest = strings.TrimSpace(longest[:idx] + longest[idx+len(filler):])
		}
	}

	if len(longest) > claimMaxLen {
		cut := longest[:claimMaxLen]
		if idx := strings.LastIndex(cut, " "); idx > 0 {
			cut = cut[:idx]
		}
		longest = cut + "..."
	}
	if longest == "" {
		return b.fallbackClaim
	}
	return longest
}

// WantsExample reports whether the user message asks for an example.
func WantsExample(text string, locale Locale) bool {
	lower := strings.ToLower(text)
	for _, cue := range bank(locale).exampleCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
