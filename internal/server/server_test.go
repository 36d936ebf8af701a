package server

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelease_ClosesRedisWithoutDatabase(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	s := &Server{Redis: client}

	require.NoError(t, s.release())

	assert.ErrorIs(t, client.Close(), redis.ErrClosed)
	assert.ErrorIs(t, client.Ping(context.Background()).Err(), redis.ErrClosed)
}

func TestRelease_NothingOpened(t *testing.T) {
	assert.NoError(t, (&Server{}).release())
}

func TestShutdown_WithoutHTTPServerReleasesRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	s := &Server{Redis: client}

	require.NoError(t, s.Shutdown(context.Background()))
	assert.ErrorIs(t, client.Close(), redis.ErrClosed)
}
