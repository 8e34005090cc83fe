package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis key prefix for conversations.
const conversationKeyPrefix = "conv:"

// redisStore persists conversations as JSON values with a server-side
// TTL. Updates run under WATCH so that a concurrent writer aborts the
// transaction instead of clobbering the record.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func newRedisStore(client *redis.Client, ttl time.Duration) *redisStore {
	return &redisStore{client: client, ttl: ttl}
}

func conversationKey(id string) string { return conversationKeyPrefix + id }

// Create implements Store.
func (s *redisStore) Create(ctx context.Context, state *State) error {
	now := time.Now()
	state.CreatedAt = now
	state.UpdatedAt = now
	state.ExpiresAt = now.Add(s.ttl)
	state.Version = 1

	val, err := json.Marshal(state)
	if err != nil {
		return err
	}

	ok, err := s.client.SetNX(ctx, conversationKey(state.ID), val, s.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyExists
	}
	return nil
}

// Get implements Store.
func (s *redisStore) Get(ctx context.Context, id string) (*State, error) {
	val, err := s.client.Get(ctx, conversationKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		// Corrupt record: drop it rather than fail every turn.
		_ = s.client.Del(ctx, conversationKey(id)).Err()
		return nil, nil
	}
	if state.Expired(time.Now()) {
		return nil, nil
	}
	return &state, nil
}

// Update implements Store.
func (s *redisStore) Update(ctx context.Context, state *State) error {
	key := conversationKey(state.ID)

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var stored State
		if err := json.Unmarshal([]byte(val), &stored); err != nil {
			return ErrNotFound
		}
		if stored.Version != state.Version {
			return ErrVersionConflict
		}

		now := time.Now()
		state.Version++
		state.UpdatedAt = now
		state.ExpiresAt = now.Add(s.ttl)

		newVal, err := json.Marshal(state)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, newVal, s.ttl)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrVersionConflict
	}
	return err
}

// Delete implements Store.
func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, conversationKey(id)).Err()
}

// Close implements Store.
func (s *redisStore) Close() error {
	return s.client.Close()
}

// Ping checks connectivity for readiness probes.
func (s *redisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
