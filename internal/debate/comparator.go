package debate

import (
	"regexp"
	"strings"
)

// Preference records which side, if any, the user's phrasing favors.
type Preference int

const (
	PreferenceNone  Preference = iota // bare "A vs B"
	PreferenceSideA                   // "A better than B", "prefer A to B"
)

// Match is the raw result of comparator pattern extraction, before a
// bot side has been chosen.
type Match struct {
	SideA      string
	SideB      string
	Preference Preference
}

type comparatorPattern struct {
	re         *regexp.Regexp
	preference Preference
}

// Patterns run against normalized text (lowercased, punctuation
// stripped), so "vs." and "VS" reduce to "vs" before matching. The
// pattern may appear anywhere in the message.
var comparatorPatterns = map[Locale][]comparatorPattern{
	LocaleEN: {
		{regexp.MustCompile(`(?P<a>[\w\s-]+?)\s+(?:vs|versus)\s+(?P<b>[\w\s-]+?)(?:\s|$)`), PreferenceNone},
		{regexp.MustCompile(`(?P<a>[\w\s-]+?)\s+(?:is\s+)?(?:better|superior)\s+(?:than|to)\s+(?P<b>[\w\s-]+?)(?:\s|$)`), PreferenceSideA},
		{regexp.MustCompile(`prefer\s+(?P<a>[\w\s-]+?)\s+to\s+(?P<b>[\w\s-]+?)(?:\s|$)`), PreferenceSideA},
	},
	LocaleES: {
		{regexp.MustCompile(`(?P<a>[\w\s-]+?)\s+(?:vs|versus|contra|frente\s+a)\s+(?P<b>[\w\s-]+?)(?:\s|$)`), PreferenceNone},
		{regexp.MustCompile(`(?P<a>[\w\s-]+?)\s+(?:es\s+)?(?:mejor|superior)\s+(?:que|a)\s+(?P<b>[\w\s-]+?)(?:\s|$)`), PreferenceSideA},
		{regexp.MustCompile(`prefiero\s+(?P<a>[\w\s-]+?)\s+a\s+(?P<b>[\w\s-]+?)(?:\s|$)`), PreferenceSideA},
	},
}

var termPrefixes = map[Locale][]string{
	LocaleEN: {"explain why", "why", "that", "the", "a", "an"},
	LocaleES: {"explicar por que", "por que", "que", "el", "la", "un", "una"},
}

var termSuffixes = map[Locale][]string{
	LocaleEN: {"the", "a", "an", "is"},
	LocaleES: {"el", "la", "un", "una", "es"},
}

// ExtractPair scans text for an "A vs B" style comparison. It returns
// the extracted sides with any stated preference, or false when no
// pattern matches or the extracted terms are degenerate.
func ExtractPair(text string, locale Locale) (*Match, bool) {
	normalized := normalize(text)
	patterns, ok := comparatorPatterns[locale]
	if !ok {
		patterns = comparatorPatterns[LocaleEN]
	}
	for _, p := range patterns {
		groups := p.re.FindStringSubmatch(normalized)
		if groups == nil {
			continue
		}
		a := cleanTerm(groups[p.re.SubexpIndex("a")], locale)
		b := cleanTerm(groups[p.re.SubexpIndex("b")], locale)
		if len(a) < 2 || len(b) < 2 || a == b {
			continue
		}
		return &Match{SideA: a, SideB: b, Preference: p.preference}, true
	}
	return nil, false
}

// cleanTerm trims articles and question scaffolding from an extracted
// side so "explain why the coke" reduces to "coke".
func cleanTerm(term string, locale Locale) string {
	term = strings.TrimSpace(term)
	lower := strings.ToLower(term)

	prefixes := termPrefixes[locale]
	if prefixes == nil {
		prefixes = termPrefixes[LocaleEN]
	}
	for changed := true; changed; {
		changed = false
		for _, prefix := range prefixes {
			if strings.HasPrefix(lower, prefix+" ") {
				term = strings.TrimSpace(term[len(prefix):])
				lower = strings.ToLower(term)
				changed = true
			}
		}
	}

	suffixes := termSuffixes[locale]
	if suffixes == nil {
		suffixes = termSuffixes[LocaleEN]
	}
	words := strings.Fields(term)
	for len(words) > 0 {
		last := strings.ToLower(words[len(words)-1])
		trailing := false
		for _, suffix := range suffixes {
			if last == suffix {
				trailing = true
				break
			}
		}
		if !trailing {
			break
		}
		words = words[:len(words)-1]
	}
	if len(words) == 0 {
		return term
	}
	return strings.Join(words, " ")
}

// Resolve picks the side the bot argues for. A stated preference for A
// sends the bot to B. For a neutral pair the side comes from a stable
// hash of the normalized pair text, so the same pair always yields the
// same argued side in any conversation.
func (m *Match) Resolve() *Pair {
	pair := &Pair{SideA: m.SideA, SideB: m.SideB}
	switch {
	case m.Preference == PreferenceSideA:
		pair.UserSide = m.SideA
		pair.BotSide = m.SideB
	case stableIndex(normalize(m.SideA)+"|"+normalize(m.SideB), 2, "") == 0:
		pair.UserSide = m.SideA
		pair.BotSide = m.SideB
	default:
		pair.UserSide = m.SideB
		pair.BotSide = m.SideA
	}
	return pair
}

// substituteSides fills an axis or phrasing template with the pair's
// terms: {{B}} is the side the bot argues for, {{A}} the other.
func substituteSides(template string, pair *Pair) string {
	r := strings.NewReplacer("{{A}}", pair.UserSide, "{{B}}", pair.BotSide)
	return r.Replace(template)
}
