package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	InitRedis(mr.Addr())
	t.Cleanup(func() { client = nil })
	require.NotNil(t, GetClient())
}

func TestGetSetJSONRoundTrip(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	want := cachedThing{ID: 1, Name: "alice"}
	require.NoError(t, SetJSON(ctx, "thing:1", want, time.Minute))

	var got cachedThing
	found, err := GetJSON(ctx, "thing:1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)
}

func TestGetJSONMiss(t *testing.T) {
	setupMiniredis(t)

	var got cachedThing
	found, err := GetJSON(context.Background(), "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAsideFetchesOnce(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *cachedThing) func() error {
		return func() error {
			calls++
			*dest = cachedThing{ID: 2, Name: "bob"}
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, Aside(ctx, PostKey(2), &first, PostTTL, fetch(&first)))
	assert.Equal(t, 1, calls)

	var second cachedThing
	require.NoError(t, Aside(ctx, PostKey(2), &second, PostTTL, fetch(&second)))
	assert.Equal(t, 1, calls, "second read must be served from cache")
	assert.Equal(t, first, second)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	var dest cachedThing
	fetch := func() error {
		calls++
		dest = cachedThing{ID: 3}
		return nil
	}

	require.NoError(t, Aside(ctx, ProfileKey(3), &dest, ProfileTTL, fetch))
	InvalidateProfile(ctx, 3)
	require.NoError(t, Aside(ctx, ProfileKey(3), &dest, ProfileTTL, fetch))
	assert.Equal(t, 2, calls)
}

func TestHelpersNoopWithoutRedis(t *testing.T) {
	client = nil

	ctx := context.Background()
	var dest cachedThing
	found, err := GetJSON(ctx, "k", &dest)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, SetJSON(ctx, "k", dest, time.Minute))

	calls := 0
	require.NoError(t, Aside(ctx, "k", &dest, time.Minute, func() error {
		calls++
		return nil
	}))
	assert.Equal(t, 1, calls, "fetch runs on every call when cache is disabled")
}
