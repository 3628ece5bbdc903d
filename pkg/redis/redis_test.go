package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	t.Cleanup(srv.Close)

	orig := GetClient()
	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	SetClient(cli)
	t.Cleanup(func() {
		_ = cli.Close()
		SetClient(orig)
	})
	return srv
}

func TestHelpers_RoundTrip(t *testing.T) {
	startMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, Set(ctx, "k", "v", time.Minute))
	val, err := Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	ok, err := Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	set, err := SetNX(ctx, "k", "other", time.Minute)
	require.NoError(t, err)
	assert.False(t, set)

	require.NoError(t, Del(ctx, "k"))
	_, err = Get(ctx, "k")
	assert.True(t, IsNil(err))
}

func TestHelpers_NotInitialized(t *testing.T) {
	orig := GetClient()
	SetClient(nil)
	t.Cleanup(func() { SetClient(orig) })
	ctx := context.Background()

	assert.ErrorIs(t, Set(ctx, "k", "v", time.Minute), ErrNotInitialized)
	_, err := Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.ErrorIs(t, Del(ctx, "k"), ErrNotInitialized)
	_, err = SetNX(ctx, "k", "v", time.Minute)
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = Exists(ctx, "k")
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.NoError(t, Close())
}

func TestInit_BadURL(t *testing.T) {
	orig := GetClient()
	t.Cleanup(func() { SetClient(orig) })

	assert.Error(t, Init("://bad", ""))
}

func TestTokenBlocklist_RevokeAndCheck(t *testing.T) {
	srv := startMiniRedis(t)
	ctx := context.Background()
	bl := NewTokenBlocklist()

	revoked, err := bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.Revoke(ctx, "jti-1", time.Minute))
	revoked, err = bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	srv.FastForward(2 * time.Minute)
	revoked, err = bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenBlocklist_EdgeCases(t *testing.T) {
	bl := NewTokenBlocklist()
	ctx := context.Background()

	assert.Error(t, bl.Revoke(ctx, "", time.Minute))

	origSet := setBlocklistValue
	t.Cleanup(func() { setBlocklistValue = origSet })
	called := false
	setBlocklistValue = func(context.Context, string, interface{}, time.Duration) error {
		called = true
		return errors.New("unexpected")
	}
	require.NoError(t, bl.Revoke(ctx, "jti", 0))
	assert.False(t, called)

	revoked, err := bl.IsRevoked(ctx, "")
	require.NoError(t, err)
	assert.False(t, revoked)
}
