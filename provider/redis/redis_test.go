package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	p, err := New(Config{
		Client:      goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
		CloseClient: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p, mr
}

func TestNewRequiresClient(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrNilClient)
}

func TestSetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	p, mr := newTestProvider(t)

	require.NoError(t, p.Set(ctx, "k", []byte{0x00, 0xff, 'a'}))

	got, ok, err := p.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{0x00, 0xff, 'a'}, got)

	// written without expiry
	assert.Zero(t, mr.TTL("k"))
}

func TestGetMissVersusEmpty(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestProvider(t)

	got, ok, err := p.Get(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)

	require.NoError(t, p.Set(ctx, "empty", nil))
	got, ok, err = p.Get(ctx, "empty")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestFlushClearsSelectedDB(t *testing.T) {
	ctx := context.Background()
	p, mr := newTestProvider(t)

	require.NoError(t, mr.Set("foreign", "x"))
	require.NoError(t, p.Set(ctx, "k", []byte("v")))

	require.NoError(t, p.Flush(ctx))
	assert.Empty(t, mr.Keys())

	_, ok, err := p.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	p, mr := newTestProvider(t)

	mr.SetError("ERR injected failure")
	_, _, err := p.Get(ctx, "k")
	assert.ErrorContains(t, err, "injected failure")
	assert.ErrorContains(t, p.Set(ctx, "k", []byte("v")), "injected failure")
	assert.ErrorContains(t, p.Flush(ctx), "injected failure")
}

func TestCloseOnlyOwnedClient(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	p, err := New(Config{Client: client})
	require.NoError(t, err)
	require.NoError(t, p.Close(ctx))
	require.NoError(t, client.Ping(ctx).Err())

	owned, err := New(Config{Client: client, CloseClient: true})
	require.NoError(t, err)
	require.NoError(t, owned.Close(ctx))
	require.NoError(t, owned.Close(ctx))
	assert.Error(t, client.Ping(ctx).Err())
}

func TestNewDefault(t *testing.T) {
	p := NewDefault()
	assert.True(t, p.closeClient)
	opts := p.rdb.(*goredis.Client).Options()
	assert.Equal(t, DefaultAddr, opts.Addr)
	assert.Equal(t, 0, opts.DB)
	require.NoError(t, p.Close(context.Background()))
}
