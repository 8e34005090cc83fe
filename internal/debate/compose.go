package debate

import (
	"fmt"
	"strings"
)

// wordCap bounds reply length. When a draft runs over, the closing is
// dropped first, then the analogy; anchor, arguments and the rhetorical
// question always survive. Whatever remains is cut on a word boundary.
const wordCap = 300

// Part offsets stagger the rotation of each rhetorical part so that two
// pools of the same size don't move in lockstep across turns.
const (
	offsetAnchor = iota
	offsetArgument
	offsetReasoning
	offsetAnalogy
	offsetQuestion
	offsetRefutation
	offsetClosing
	offsetExample
)

// ComposeRequest carries everything the composer needs for one turn.
// TurnCounter is the number of completed exchanges before this one, so
// the first reply of a conversation composes with TurnCounter zero.
type ComposeRequest struct {
	Lock           Lock
	UserMessage    string
	TurnCounter    int
	SwitchedTopic  Topic
	SwitchDetected bool
}

// replyPart is one rhetorical unit of the draft. dropOrder 0 marks the
// part non-negotiable; higher values are dropped earlier when the draft
// exceeds the word cap.
type replyPart struct {
	text      string
	dropOrder int
}

const (
	dropNever   = 0
	dropAnalogy = 1
	dropClosing = 2
)

// Compose assembles the reply for a turn. It is a pure function of its
// request: the same lock, message and turn counter always produce the
// same text, byte for byte.
func Compose(req ComposeRequest) string {
	var parts []replyPart

	if req.SwitchDetected && !req.Lock.Comparator() && req.Lock.Topic != TopicGeneral {
		b := bank(req.Lock.Locale)
		ack := fmt.Sprintf(b.topicSwitch, b.topicNames[req.Lock.Topic], b.topicNames[req.SwitchedTopic])
		parts = append(parts, replyPart{text: ack})
	}

	switch {
	case req.Lock.Comparator():
		parts = append(parts, composeComparator(req)...)
	case req.Lock.Topic == TopicGeneral:
		parts = append(parts, composeGeneral(req)...)
	default:
		parts = append(parts, composeCatalog(req)...)
	}

	return capWords(parts)
}

// rotate selects a pool index from the turn counter and a per-part
// offset. Selection never repeats within a window shorter than the
// pool, and cycles after the pool is exhausted.
func rotate(turn, offset, n int) int {
	if n < 1 {
		return 0
	}
	return (turn + offset) % n
}

func composeCatalog(req ComposeRequest) []replyPart {
	b := bank(req.Lock.Locale)
	td := topicData(req.Lock.Locale, req.Lock.Topic)
	t := req.TurnCounter
	name := b.topicNames[req.Lock.Topic]

	anchorPool := b.anchors[req.Lock.Stance]
	anchor := fmt.Sprintf(anchorPool[rotate(t, offsetAnchor, len(anchorPool))], name)

	parts := []replyPart{{text: anchor}}
	for i := 0; i < 2; i++ {
		template := b.argumentTemplates[rotate(t, offsetArgument+i*3, len(b.argumentTemplates))]
		argument := td.arguments[rotate(t, i, len(td.arguments))]
		reasoning := b.reasoning[rotate(t, offsetReasoning+i, len(b.reasoning))]
		parts = append(parts, replyPart{text: fmt.Sprintf(template, argument, reasoning)})
	}

	analogyTemplate := b.analogyTemplates[rotate(t, offsetAnalogy, len(b.analogyTemplates))]
	analogy := td.analogies[rotate(t, 0, len(td.analogies))]
	principle := td.principles[rotate(t, 1, len(td.principles))]
	parts = append(parts, replyPart{
		text:      fmt.Sprintf(analogyTemplate, analogy, principle),
		dropOrder: dropAnalogy,
	})

	questionTemplate := b.questionTemplates[rotate(t, offsetQuestion, len(b.questionTemplates))]
	question := td.questions[rotate(t, 0, len(td.questions))]
	parts = append(parts, replyPart{text: fmt.Sprintf(questionTemplate, question)})

	claim := ExtractClaim(req.UserMessage, req.Lock.Locale)
	refutation := b.refutationTemplates[rotate(t, offsetRefutation, len(b.refutationTemplates))]
	parts = append(parts, replyPart{text: fmt.Sprintf(refutation, claim)})

	if WantsExample(req.UserMessage, req.Lock.Locale) {
		parts = append(parts, replyPart{text: td.examples[rotate(t, offsetExample, len(td.examples))]})
	}

	closing := b.closings[rotate(t, offsetClosing, len(b.closings))]
	parts = append(parts, replyPart{text: closing, dropOrder: dropClosing})
	return parts
}

func composeComparator(req ComposeRequest) []replyPart {
	locale := req.Lock.Locale
	pair := req.Lock.Pair
	t := req.TurnCounter
	axes := axisCatalog(locale, pair)

	anchorPool := pool(comparatorAnchors, locale)
	parts := []replyPart{{text: substituteSides(anchorPool[rotate(t, offsetAnchor, len(anchorPool))], pair)}}

	// Primary axis follows the turn counter directly; the companion
	// axis runs half a catalog ahead so neither stream repeats before
	// the catalog cycles.
	primary := rotate(t, 0, len(axes))
	parts = append(parts, replyPart{text: substituteSides(axes[primary], pair)})
	if len(axes) > 1 {
		companion := rotate(t, len(axes)/2, len(axes))
		if companion == primary {
			companion = rotate(t, 1, len(axes))
		}
		parts = append(parts, replyPart{text: substituteSides(axes[companion], pair)})
	}

	analogyPool := pool(comparatorAnalogies, locale)
	parts = append(parts, replyPart{
		text:      substituteSides(analogyPool[rotate(t, offsetAnalogy, len(analogyPool))], pair),
		dropOrder: dropAnalogy,
	})

	questionPool := pool(comparatorQuestions, locale)
	parts = append(parts, replyPart{text: substituteSides(questionPool[rotate(t, offsetQuestion, len(questionPool))], pair)})

	parts = append(parts, replyPart{text: comparatorRefutation(req)})

	if WantsExample(req.UserMessage, locale) {
		parts = append(parts, replyPart{text: substituteSides(analogyPool[rotate(t, offsetExample, len(analogyPool))], pair)})
	}

	closingPool := pool(comparatorClosings, locale)
	parts = append(parts, replyPart{
		text:      substituteSides(closingPool[rotate(t, offsetClosing, len(closingPool))], pair),
		dropOrder: dropClosing,
	})
	return parts
}

// comparatorRefutation answers a restated preference head on and quotes
// the user's claim otherwise.
func comparatorRefutation(req ComposeRequest) string {
	locale := req.Lock.Locale
	pair := req.Lock.Pair
	lower := strings.ToLower(req.UserMessage)
	for _, cue := range []string{"better", "superior", "prefer", "mejor", "prefiero"} {
		if strings.Contains(lower, cue) {
			return fmt.Sprintf(comparatorPreferenceRefutation[locale], pair.UserSide, pair.BotSide)
		}
	}
	claim := ExtractClaim(req.UserMessage, locale)
	return fmt.Sprintf(comparatorClaimRefutation[locale], claim)
}

var generalReasoningLead = map[Locale]string{
	LocaleEN: "Generally speaking, %s.",
	LocaleES: "En términos generales, %s.",
}

var generalRefutation = map[Locale]string{
	LocaleEN: "You say %q, but this perspective overlooks important considerations.",
	LocaleES: "Dices %q, pero esta perspectiva pasa por alto consideraciones importantes.",
}

var generalQuestion = map[Locale][]string{
	LocaleEN: {
		"But ask yourself: is that as self-evident as it sounds?",
		"Don't you think the opposite case deserves a fair hearing?",
		"Isn't it possible the strongest version of this view still falls short?",
	},
	LocaleES: {
		"¿Pero acaso es tan evidente como suena?",
		"¿No crees que la postura contraria merece ser escuchada?",
		"¿No es posible que incluso la mejor versión de esa idea se quede corta?",
	},
}

// composeGeneral handles unconventional topics: no catalog entry, so
// the reply acknowledges subjectivity and argues the opposite of
// whatever polarity the message carried.
func composeGeneral(req ComposeRequest) []replyPart {
	locale := req.Lock.Locale
	b := bank(locale)
	td := topicData(locale, TopicGeneral)
	t := req.TurnCounter

	opening := b.openings[rotate(t, offsetAnchor, len(b.openings))]
	body := b.bodies[rotate(t, offsetArgument, len(b.bodies))] + "."
	reasoning := fmt.Sprintf(tmpl(generalReasoningLead, locale), b.reasoning[rotate(t, offsetReasoning, len(b.reasoning))])

	question := pool(generalQuestion, locale)[rotate(t, offsetQuestion, len(pool(generalQuestion, locale)))]

	claim := ExtractClaim(req.UserMessage, locale)
	refutation := fmt.Sprintf(tmpl(generalRefutation, locale), claim)

	parts := []replyPart{
		{text: opening},
		{text: body},
		{text: reasoning},
		{text: question},
		{text: refutation},
	}
	if WantsExample(req.UserMessage, locale) {
		parts = append(parts, replyPart{text: td.examples[rotate(t, offsetExample, len(td.examples))]})
	}
	parts = append(parts, replyPart{
		text:      b.generalClosings[rotate(t, offsetClosing, len(b.generalClosings))],
		dropOrder: dropClosing,
	})
	return parts
}

// pool fetches a locale's phrase pool with an English fallback.
func pool(m map[Locale][]string, locale Locale) []string {
	if p, ok := m[locale]; ok {
		return p
	}
	return m[LocaleEN]
}

func tmpl(m map[Locale]string, locale Locale) string {
	if p, ok := m[locale]; ok {
		return p
	}
	return m[LocaleEN]
}

// capWords enforces the word cap: droppable parts go first (closing,
// then analogy), then the joined text is cut on a word boundary.
func capWords(parts []replyPart) string {
	total := 0
	for _, p := range parts {
		total += len(strings.Fields(p.text))
	}

	for _, order := range []int{dropClosing, dropAnalogy} {
		if total <= wordCap {
			break
		}
		for i, p := range parts {
			if p.dropOrder == order {
				total -= len(strings.Fields(p.text))
				parts = append(parts[:i], parts[i+1:]...)
				break
			}
		}
	}

	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = p.text
	}
	joined := strings.Join(texts, " ")
	if total <= wordCap {
		return joined
	}
	words := strings.Fields(joined)
	return strings.Join(words[:wordCap], " ")
}
