package store

import (
	"context"
	"sync"
	"time"
)

// memoryStore keeps conversations in a map, guarded by a mutex, with
// lazy expiry: stale records are reaped on access rather than by a
// background sweeper.
type memoryStore struct {
	mu            sync.RWMutex
	conversations map[string]*State
	ttl           time.Duration
	now           func() time.Time
}

func newMemoryStore(ttl time.Duration) *memoryStore {
	return &memoryStore{
		conversations: make(map[string]*State),
		ttl:           ttl,
		now:           time.Now,
	}
}

// Create implements Store.
func (s *memoryStore) Create(ctx context.Context, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if existing, ok := s.conversations[state.ID]; ok && !existing.Expired(now) {
		return ErrAlreadyExists
	}

	state.CreatedAt = now
	state.UpdatedAt = now
	state.ExpiresAt = now.Add(s.ttl)
	state.Version = 1

	s.conversations[state.ID] = cloneState(state)
	return nil
}

// Get implements Store.
func (s *memoryStore) Get(ctx context.Context, id string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.conversations[id]
	if !ok {
		return nil, nil
	}
	if state.Expired(s.now()) {
		delete(s.conversations, id)
		return nil, nil
	}
	return cloneState(state), nil
}

// Update implements Store.
func (s *memoryStore) Update(ctx context.Context, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stored, ok := s.conversations[state.ID]
	if !ok || stored.Expired(now) {
		return ErrNotFound
	}
	if stored.Version != state.Version {
		return ErrVersionConflict
	}

	state.Version++
	state.UpdatedAt = now
	state.ExpiresAt = now.Add(s.ttl)

	s.conversations[state.ID] = cloneState(state)
	return nil
}

// Delete implements Store.
func (s *memoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conversations, id)
	return nil
}

// Close implements Store.
func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations = nil
	return nil
}

// cloneState copies a State so callers cannot mutate the stored record
// behind the store's back.
func cloneState(state *State) *State {
	clone := *state
	clone.History = append([]Exchange(nil), state.History...)
	if state.Lock.Pair != nil {
		pair := *state.Lock.Pair
		clone.Lock.Pair = &pair
	}
	return &clone
}
