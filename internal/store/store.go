package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Common errors for conversation store operations.
var (
	ErrInvalidConfig    = errors.New("store: invalid configuration")
	ErrInvalidStoreType = errors.New("store: invalid store type")
	ErrVersionConflict  = errors.New("store: conversation version conflict")
	ErrNotFound         = errors.New("store: conversation not found")
	ErrAlreadyExists    = errors.New("store: conversation already exists")
)

// Store persists conversation state with a TTL. Implementations expire
// records on their own after the configured TTL; callers additionally
// treat a record whose ExpiresAt has passed as absent.
type Store interface {
	// Create inserts a new conversation with Version set to 1.
	// Returns ErrAlreadyExists if the id is already present.
	Create(ctx context.Context, state *State) error

	// Get retrieves a conversation by id.
	// Returns (nil, nil) when the conversation is absent or expired.
	Get(ctx context.Context, id string) (*State, error)

	// Update overwrites an existing conversation with optimistic
	// locking: the stored Version must match, and is incremented on
	// success. Returns ErrVersionConflict on a mismatch and
	// ErrNotFound when the conversation does not exist.
	Update(ctx context.Context, state *State) error

	// Delete removes a conversation by id.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}

// Type selects a store driver.
type Type string

const (
	TypeMemory Type = "memory"
	TypeRedis  Type = "redis"
)

// Option configures a store built by New.
type Option func(*config)

type config struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// WithRedisClient sets the Redis client for the Redis driver.
func WithRedisClient(client *redis.Client) Option {
	return func(c *config) { c.redisClient = client }
}

// WithTTL overrides the default 24h conversation TTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) { c.ttl = ttl }
}

// defaultTTL is how long a conversation survives without a new turn.
const defaultTTL = 24 * time.Hour

// New builds a Store for the given driver type.
func New(storeType Type, opts ...Option) (Store, error) {
	cfg := &config{ttl: defaultTTL}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.ttl <= 0 {
		cfg.ttl = defaultTTL
	}

	switch storeType {
	case TypeMemory:
		return newMemoryStore(cfg.ttl), nil
	case TypeRedis:
		if cfg.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		return newRedisStore(cfg.redisClient, cfg.ttl), nil
	default:
		return nil, ErrInvalidStoreType
	}
}
