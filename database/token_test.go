package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s TokenStore) {
	ctx := context.Background()

	token, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.Set(ctx, "a", "abc"))
	require.NoError(t, s.Set(ctx, "b", "def"))
	token, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
	token, err = s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "def", token)

	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Delete(ctx, "a"))
	token, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, token)

	// đăng xuất phiên a không ảnh hưởng phiên b
	token, err = s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "def", token)
}

func TestMemoryTokenStore(t *testing.T) {
	exerciseStore(t, NewMemoryTokenStore())
}

func TestRedisTokenStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	s := NewRedisTokenStore(client, "", time.Hour)
	exerciseStore(t, s)

	require.NoError(t, s.Set(context.Background(), "c", "xyz"))
	got, err := mr.Get("accessToken:c")
	require.NoError(t, err)
	assert.Equal(t, "xyz", got)

	mr.FastForward(2 * time.Hour)
	token, err := s.Get(context.Background(), "c")
	require.NoError(t, err)
	assert.Empty(t, token)
}
