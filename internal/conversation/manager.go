package conversation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lorenzotomasdiez/contrarian/internal/debate"
	"github.com/lorenzotomasdiez/contrarian/internal/store"
)

const (
	// maxMessageBytes rejects oversized input before any state is read.
	maxMessageBytes = 4096

	// conflictRetries bounds the optimistic-locking retry loop before a
	// turn surfaces ErrConflict.
	conflictRetries = 3

	// defaultStoreTimeout bounds every store round trip.
	defaultStoreTimeout = 2 * time.Second
)

// Turn is one role-tagged message of the transcript returned to the
// caller.
type Turn struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// Manager is the conversation orchestrator: the only component that
// mutates conversation state. Classification runs exactly once, on the
// turn that creates a conversation; every later turn reuses the locked
// attributes.
type Manager struct {
	store        store.Store
	locks        *lockTable
	log          zerolog.Logger
	storeTimeout time.Duration
	newID        func() string
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithStoreTimeout overrides the per-operation store timeout.
func WithStoreTimeout(d time.Duration) ManagerOption {
	return func(m *Manager) { m.storeTimeout = d }
}

// NewManager builds an orchestrator over the given store.
func NewManager(st store.Store, log zerolog.Logger, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:        st,
		locks:        newLockTable(),
		log:          log,
		storeTimeout: defaultStoreTimeout,
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// HandleTurn processes one user message and returns the conversation id
// together with the full retained transcript, ending with the exchange
// just produced. An empty conversation id starts a new conversation; a
// supplied id that resolves to no live state fails with ErrNotFound.
func (m *Manager) HandleTurn(ctx context.Context, conversationID, message string) (string, []Turn, error) {
	if err := validateMessage(message); err != nil {
		return "", nil, err
	}

	if conversationID == "" {
		return m.startConversation(ctx, message)
	}
	return m.continueConversation(ctx, conversationID, message)
}

func validateMessage(message string) error {
	if message == "" {
		return fmt.Errorf("%w: empty message", ErrValidation)
	}
	if len(message) > maxMessageBytes {
		return fmt.Errorf("%w: message exceeds %d bytes", ErrValidation, maxMessageBytes)
	}
	return nil
}

// startConversation runs first-turn locking: locale, topic and stance
// are derived from the message and frozen into the new state.
func (m *Manager) startConversation(ctx context.Context, message string) (string, []Turn, error) {
	id := m.newID()
	locale := debate.DetectLocale(message)
	lock := debate.ClassifyFirstTurn(message, locale)

	reply := debate.Compose(debate.ComposeRequest{
		Lock:        lock,
		UserMessage: message,
		TurnCounter: 0,
	})

	state := &store.State{ID: id, Lock: lock}
	state.AppendExchange(message, reply)

	opCtx, cancel := context.WithTimeout(ctx, m.storeTimeout)
	defer cancel()
	if err := m.store.Create(opCtx, state); err != nil {
		return "", nil, m.mapStoreError(err)
	}

	m.log.Info().
		Str("conversation_id", id).
		Str("locale", string(lock.Locale)).
		Str("topic", string(lock.Topic)).
		Bool("comparator", lock.Comparator()).
		Msg("conversation locked")

	return id, transcript(state), nil
}

// continueConversation reuses the locked attributes and runs only the
// lightweight topic-switch detector. The read-modify-write sequence
// holds the per-id lock, and the store's version check catches writers
// outside this process; on conflict the whole sequence re-runs against
// fresh state so a user message is never silently dropped.
func (m *Manager) continueConversation(ctx context.Context, id, message string) (string, []Turn, error) {
	release := m.locks.acquire(id)
	defer release()

	var lastErr error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		state, err := m.getState(ctx, id)
		if err != nil {
			return "", nil, err
		}

		switchedTopic, switched := debate.DetectTopicSwitch(message, state.Lock.Topic, state.Lock.Locale)
		reply := debate.Compose(debate.ComposeRequest{
			Lock:           state.Lock,
			UserMessage:    message,
			TurnCounter:    state.TurnCounter,
			SwitchedTopic:  switchedTopic,
			SwitchDetected: switched,
		})
		state.AppendExchange(message, reply)

		opCtx, cancel := context.WithTimeout(ctx, m.storeTimeout)
		err = m.store.Update(opCtx, state)
		cancel()
		if err == nil {
			m.log.Debug().
				Str("conversation_id", id).
				Int("turn", state.TurnCounter).
				Bool("topic_switch", switched).
				Msg("turn handled")
			return id, transcript(state), nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return "", nil, m.mapStoreError(err)
		}
		lastErr = err
	}
	return "", nil, fmt.Errorf("%w: %v", ErrConflict, lastErr)
}

func (m *Manager) getState(ctx context.Context, id string) (*store.State, error) {
	opCtx, cancel := context.WithTimeout(ctx, m.storeTimeout)
	defer cancel()

	state, err := m.store.Get(opCtx, id)
	if err != nil {
		return nil, m.mapStoreError(err)
	}
	if state == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return state, nil
}

// mapStoreError translates storage failures into the caller-facing
// taxonomy.
func (m *Manager) mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, store.ErrAlreadyExists), errors.Is(err, store.ErrVersionConflict):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}

// transcript flattens retained history into role-tagged turns, oldest
// first.
func transcript(state *store.State) []Turn {
	turns := make([]Turn, 0, len(state.History)*2)
	for _, exchange := range state.History {
		turns = append(turns, Turn{Role: "user", Message: exchange.User})
		turns = append(turns, Turn{Role: "bot", Message: exchange.Bot})
	}
	return turns
}
