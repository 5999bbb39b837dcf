package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/Ar-Dante/Quiz-platform/internal/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*cache.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	m := miniredis.RunT(t)
	s := cache.Dial(m.Addr(), "", 0)
	t.Cleanup(func() { s.Close() })
	return s, m
}

func TestSetGet(t *testing.T) {
	ctx := context.Background()
	s, m := newStore(t)

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Hour))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	m.FastForward(2 * time.Hour)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestScanSortsByKey(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	require.NoError(t, s.Set(ctx, "quiz_answers:b:1:c", []byte("2"), 0))
	require.NoError(t, s.Set(ctx, "quiz_answers:a:1:c", []byte("1"), 0))
	require.NoError(t, s.Set(ctx, "other:a", []byte("x"), 0))

	entries, err := s.Scan(ctx, "quiz_answers:*")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "quiz_answers:a:1:c", entries[0].Key)
	assert.Equal(t, []byte("2"), entries[1].Value)

	none, err := s.Scan(ctx, "missing:*")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPing(t *testing.T) {
	s, _ := newStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}
