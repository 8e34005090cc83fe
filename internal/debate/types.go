package debate

// Locale identifies one of the two supported reply languages.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
)

// Topic is a catalog tag fixed on the first turn of a conversation.
type Topic string

const (
	TopicClimate    Topic = "climate"
	TopicTechnology Topic = "technology"
	TopicEducation  Topic = "education"
	TopicGeneral    Topic = "general"
)

// Stance is the side the bot argues relative to a catalog topic. It is
// always the opposite of the stance detected in the user's first
// message.
type Stance string

const (
	StanceSupporting Stance = "supporting"
	StanceOpposing   Stance = "opposing"
)

// Pair holds the two terms of an "A vs B" comparison and which side the
// bot argues for. UserSide and BotSide are SideA and SideB in some
// order.
type Pair struct {
	SideA    string `json:"side_a"`
	SideB    string `json:"side_b"`
	UserSide string `json:"user_side"`
	BotSide  string `json:"bot_side"`
}

// Lock carries the conversation attributes fixed on turn 1: reply
// locale, topic (or comparator pair) and the bot's stance. A Lock is
// never recomputed after it is set.
type Lock struct {
	Locale Locale `json:"locale"`
	Topic  Topic  `json:"topic"`
	Stance Stance `json:"stance"`
	Pair   *Pair  `json:"pair,omitempty"`
}

// Comparator reports whether the conversation argues a pair rather than
// a catalog topic.
func (l Lock) Comparator() bool { return l.Pair != nil }
