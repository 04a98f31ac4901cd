package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/locations/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return mr, &RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host: "127.0.0.1",
		Port: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "postal:22201", "38.88,-77.09", time.Minute))

	value, err := client.Get(ctx, "postal:22201")
	require.NoError(t, err)
	assert.Equal(t, "38.88,-77.09", value)
	assert.True(t, mr.TTL("postal:22201") > 0)

	require.NoError(t, client.Delete(ctx, "postal:22201"))
	_, err = client.Get(ctx, "postal:22201")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_Hash(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	err := client.HMSet(ctx, "geocode:abc", map[string]interface{}{"lat": "1.5", "lng": "2.5"})
	require.NoError(t, err)
	require.NoError(t, client.Expire(ctx, "geocode:abc", time.Hour))

	values, err := client.HGetAll(ctx, "geocode:abc")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"lat": "1.5", "lng": "2.5"}, values)
	assert.Equal(t, time.Hour, mr.TTL("geocode:abc"))
}
