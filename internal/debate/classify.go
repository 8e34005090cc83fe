package debate

import "strings"

// DetectStance classifies the user's position as "pro" or "contra"
// using polarity keyword counts. Heavy negation combined with positive
// words reads as contra ("AI will never be good for us").
func DetectStance(text string, locale Locale) string {
	lower := strings.ToLower(text)

	m, ok := markers[locale]
	if !ok {
		m = markers[LocaleEN]
	}
	count := func(words []string) int {
		n := 0
		for _, w := range words {
			if strings.Contains(lower, w) {
				n++
			}
		}
		return n
	}

	negations := count(m.negationMarkers)
	contra := count(m.contraIndicators)
	pro := count(m.proIndicators)

	switch {
	case negations >= 2 && pro > 0:
		return "contra"
	case contra > pro:
		return "contra"
	case pro > contra:
		return "pro"
	case negations > 0:
		return "contra"
	default:
		return "pro"
	}
}

// ClassifyFirstTurn derives the conversation's Lock from its first
// message. Comparator extraction runs first; a match fixes the pair and
// the bot's argued side. Otherwise the catalog topics are tried (one
// keyword is enough), and finally the general mode. For catalog and
// general topics the bot's stance is the opposite of the user's.
func ClassifyFirstTurn(text string, locale Locale) Lock {
	lock := Lock{Locale: locale}

	if match, ok := ExtractPair(text, locale); ok {
		lock.Topic = TopicGeneral
		lock.Pair = match.Resolve()
		lock.Stance = StanceOpposing
		return lock
	}

	lock.Topic = matchCatalogTopic(text, locale)
	if DetectStance(text, locale) == "pro" {
		lock.Stance = StanceOpposing
	} else {
		lock.Stance = StanceSupporting
	}
	return lock
}

// matchCatalogTopic returns the first catalog topic with a keyword hit,
// or TopicGeneral when nothing matches.
func matchCatalogTopic(text string, locale Locale) Topic {
	lower := strings.ToLower(text)
	byTopic, ok := topics[locale]
	if !ok {
		byTopic = topics[LocaleEN]
	}
	for _, topic := range []Topic{TopicClimate, TopicTechnology, TopicEducation} {
		for _, keyword := range byTopic[topic].keywords {
			if strings.Contains(lower, keyword) {
				return topic
			}
		}
	}
	return TopicGeneral
}

// DetectTopicSwitch looks for a strong signal (two or more keywords)
// that the message belongs to a different catalog topic than the locked
// one. A switch is only acknowledged, never acted on: the locked topic
// keeps driving the argumentation.
func DetectTopicSwitch(text string, locked Topic, locale Locale) (Topic, bool) {
	lower := strings.ToLower(text)
	byTopic, ok := topics[locale]
	if !ok {
		byTopic = topics[LocaleEN]
	}

	best := TopicGeneral
	bestScore := 0
	for _, topic := range []Topic{TopicClimate, TopicTechnology, TopicEducation} {
		score := 0
		for _, keyword := range byTopic[topic].keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > bestScore {
			best = topic
			bestScore = score
		}
	}

	if bestScore >= 2 && best != locked {
		return best, true
	}
	return TopicGeneral, false
}
