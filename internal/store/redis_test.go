package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzotomasdiez/contrarian/internal/debate"
)

func setupRedisStore(t *testing.T) (*redisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := newRedisStore(client, time.Hour)

	t.Cleanup(func() {
		_ = s.Close()
		mr.Close()
	})
	return s, mr
}

func TestRedisStoreCreateGet(t *testing.T) {
	s, mr := setupRedisStore(t)
	ctx := context.Background()

	state := newTestState("c1")
	require.NoError(t, s.Create(ctx, state))
	assert.Equal(t, int64(1), state.Version)

	got, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.ID)
	assert.Equal(t, debate.TopicTechnology, got.Lock.Topic)
	assert.Equal(t, []Exchange{{User: "hello", Bot: "I disagree"}}, got.History)

	// Server-side TTL is set on the key.
	assert.Greater(t, mr.TTL("conv:c1"), time.Duration(0))
}

func TestRedisStoreGetAbsent(t *testing.T) {
	s, _ := setupRedisStore(t)

	got, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreCreateDuplicate(t *testing.T) {
	s, _ := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newTestState("c1")))
	err := s.Create(ctx, newTestState("c1"))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRedisStoreUpdate(t *testing.T) {
	s, _ := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newTestState("c1")))

	state, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	state.AppendExchange("second message", "second reply")

	require.NoError(t, s.Update(ctx, state))
	assert.Equal(t, int64(2), state.Version)

	got, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.Version)
	assert.Len(t, got.History, 2)
}

func TestRedisStoreUpdateVersionConflict(t *testing.T) {
	s, _ := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newTestState("c1")))

	first, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	second, err := s.Get(ctx, "c1")
	require.NoError(t, err)

	first.AppendExchange("winner", "reply")
	require.NoError(t, s.Update(ctx, first))

	second.AppendExchange("loser", "reply")
	err = s.Update(ctx, second)
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestRedisStoreUpdateMissing(t *testing.T) {
	s, _ := setupRedisStore(t)

	state := newTestState("ghost")
	state.Version = 1
	err := s.Update(context.Background(), state)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreCorruptRecordDropped(t *testing.T) {
	s, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("conv:bad", "{not json"))

	got, err := s.Get(ctx, "bad")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, mr.Exists("conv:bad"))
}

func TestRedisStoreExpiredRecordTreatedAbsent(t *testing.T) {
	s, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newTestState("c1")))

	// Advance miniredis past the key TTL.
	mr.FastForward(2 * time.Hour)

	got, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreDelete(t *testing.T) {
	s, _ := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newTestState("c1")))
	require.NoError(t, s.Delete(ctx, "c1"))

	got, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStorePing(t *testing.T) {
	s, mr := setupRedisStore(t)
	require.NoError(t, s.Ping(context.Background()))

	mr.Close()
	assert.Error(t, s.Ping(context.Background()))
}

func TestRedisStorePairRoundTrip(t *testing.T) {
	s, _ := setupRedisStore(t)
	ctx := context.Background()

	state := newTestState("c1")
	state.Lock.Topic = debate.TopicGeneral
	state.Lock.Pair = &debate.Pair{SideA: "coffee", SideB: "tea", UserSide: "coffee", BotSide: "tea"}
	require.NoError(t, s.Create(ctx, state))

	got, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got.Lock.Pair)
	assert.Equal(t, "tea", got.Lock.Pair.BotSide)
}
