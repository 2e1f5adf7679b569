package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"estatex/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_WithoutRedisIsNoop(t *testing.T) {
	c := New(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{},
		Logger: slog.New(slog.DiscardHandler),
	})
	require.IsType(t, noopCache{}, c)

	ctx := context.Background()
	assert.NoError(t, c.Set(ctx, "listings:abc", []string{"x"}, time.Minute))

	var dest []string
	found, err := c.Get(ctx, "listings:abc", &dest)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.DeletePrefix(ctx, "listings"))
}

func TestRedisCache_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisCache(client)
	ctx := context.Background()

	var dest map[string]any
	found, err := c.Get(ctx, "banners:x", &dest)
	assert.Error(t, err)
	assert.False(t, found)
	assert.Error(t, c.Set(ctx, "banners:x", map[string]any{"a": 1}, time.Minute))
	assert.Error(t, c.DeletePrefix(ctx, "banners"))
}
