package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonathan/pathfinder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	c := New(Options{Addr: mr.Addr(), TTL: ttl})
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGet(t *testing.T) {
	c, _ := setupCache(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))

	rec := &types.Recommendation{
		AIRecommendation: "Industry Path Recommended",
		ConfidenceLevel:  "High",
		KeyInsights:      []string{"a"},
		ActionItems:      []string{"b"},
		Timestamp:        time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, c.Set(ctx, "abc", rec))

	got, ok, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rec.AIRecommendation, got.AIRecommendation)
	assert.Equal(t, rec.KeyInsights, got.KeyInsights)
	assert.True(t, rec.Timestamp.Equal(got.Timestamp))
}

func TestCache_Miss(t *testing.T) {
	c, _ := setupCache(t, time.Hour)
	got, ok, err := c.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestCache_Expires(t *testing.T) {
	c, mr := setupCache(t, time.Minute)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "abc", &types.Recommendation{AIRecommendation: "x"}))
	assert.Equal(t, time.Minute, mr.TTL(KeyPrefix+"abc"))

	mr.FastForward(2 * time.Minute)
	_, ok, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_CorruptEntry(t *testing.T) {
	c, mr := setupCache(t, time.Hour)
	require.NoError(t, mr.Set(KeyPrefix+"bad", "{not json"))

	_, ok, err := c.Get(context.Background(), "bad")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestCache_Delete(t *testing.T) {
	c, mr := setupCache(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "abc", &types.Recommendation{AIRecommendation: "x"}))
	require.NoError(t, c.Delete(ctx, "abc"))
	assert.False(t, mr.Exists(KeyPrefix+"abc"))
}

func TestCache_Unavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	c := New(Options{Addr: mr.Addr(), TTL: time.Hour})
	defer c.Close()
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Error(t, c.Ping(ctx))
	_, _, err = c.Get(ctx, "abc")
	assert.Error(t, err)
}
