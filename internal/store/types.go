package store

import (
	"time"

	"github.com/lorenzotomasdiez/contrarian/internal/debate"
)

// maxExchanges bounds conversation history: the last five exchanges
// (ten messages) survive a trim, oldest evicted first.
const maxExchanges = 5

// Exchange is one completed turn: the user's message and the bot's
// reply.
type Exchange struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

// State is all persisted conversation state. Locale, topic and stance
// inside Lock are write-once: they are set when the conversation is
// created and never change afterward. Version increases on every update
// and drives optimistic locking in the drivers.
type State struct {
	ID          string      `json:"id"`
	Lock        debate.Lock `json:"lock"`
	TurnCounter int         `json:"turn_counter"`
	History     []Exchange  `json:"history"`
	Version     int64       `json:"version"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	ExpiresAt   time.Time   `json:"expires_at"`
}

// AppendExchange records a completed turn, trims history to the bound
// and advances the turn counter.
func (s *State) AppendExchange(user, bot string) {
	s.History = append(s.History, Exchange{User: user, Bot: bot})
	if len(s.History) > maxExchanges {
		s.History = s.History[len(s.History)-maxExchanges:]
	}
	s.TurnCounter++
}

// Expired reports whether the state's TTL has lapsed. Expired records
// are treated as nonexistent even if the backing store has not
// physically reaped them yet.
func (s *State) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(now)
}
