package database

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func setupMiniredis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}

	host, portStr, found := strings.Cut(mr.Addr(), ":")
	assert.True(t, found)
	port, err := strconv.Atoi(portStr)
	assert.NoError(t, err)

	client, err := NewRedisClient(models.RedisConfig{Host: host, Port: port})
	assert.NoError(t, err)

	return client, mr
}

func TestRedisClient_SetAndGet(t *testing.T) {
	client, mr := setupMiniredis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "geocode:kibuye", `{"lat":-2.0603,"lng":29.3478}`, time.Hour)
	assert.NoError(t, err)

	value, err := client.Get(ctx, "geocode:kibuye")
	assert.NoError(t, err)
	assert.Equal(t, `{"lat":-2.0603,"lng":29.3478}`, value)
}

func TestRedisClient_GetMissingKey(t *testing.T) {
	client, mr := setupMiniredis(t)
	defer mr.Close()
	defer client.Close()

	_, err := client.Get(context.Background(), "geocode:unknown")
	assert.Error(t, err)
}

func TestRedisClient_Delete(t *testing.T) {
	client, mr := setupMiniredis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	assert.NoError(t, client.Set(ctx, "key", "value", 0))
	assert.NoError(t, client.Delete(ctx, "key"))

	_, err := client.Get(ctx, "key")
	assert.Error(t, err)
}

func TestRedisClient_TTLApplied(t *testing.T) {
	client, mr := setupMiniredis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	assert.NoError(t, client.Set(ctx, "key", "value", time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("key"))
}

func TestNewRedisClient_ConnectionFailure(t *testing.T) {
	_, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: 1})

	assert.Error(t, err)
}
