package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "invalid-host",
		Port:     9999,
		PoolSize: 10,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestNewRedisClient_Miniredis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: mustPort(t, mr)})

	require.NoError(t, err)
	assert.NotNil(t, client.GetClient())
	assert.NoError(t, client.Close())
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("test:key", "test-value", time.Hour).SetVal("OK")

	err := client.Set(context.Background(), "test:key", "test-value", time.Hour)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Set_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("test:key", "test-value", time.Hour).SetErr(errors.New("redis down"))

	err := client.Set(context.Background(), "test:key", "test-value", time.Hour)

	assert.EqualError(t, err, "redis down")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Get(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock redismock.ClientMock)
		want    string
		wantErr error
	}{
		{
			name:  "hit",
			setup: func(mock redismock.ClientMock) { mock.ExpectGet("k").SetVal("v") },
			want:  "v",
		},
		{
			name:    "miss",
			setup:   func(mock redismock.ClientMock) { mock.ExpectGet("k").RedisNil() },
			wantErr: redis.Nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			client := &RedisClient{Client: db}
			tt.setup(mock)

			got, err := client.Get(context.Background(), "k")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("test:key").SetVal(1)

	assert.NoError(t, client.Delete(context.Background(), "test:key"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_HGetAll(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectHGetAll("h").SetVal(map[string]string{"lat": "1.5"})

	got, err := client.HGetAll(context.Background(), "h")

	assert.NoError(t, err)
	assert.Equal(t, "1.5", got["lat"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_RunScript(t *testing.T) {
	mr := miniredis.RunT(t)
	client := &RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	defer client.Close()

	script := redis.NewScript(`redis.call("SET", KEYS[1], ARGV[1]); return 1`)

	res, err := client.RunScript(context.Background(), script, []string{"scripted"}, "value")

	require.NoError(t, err)
	assert.Equal(t, int64(1), res)
	got, _ := mr.Get("scripted")
	assert.Equal(t, "value", got)
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	var port int
	_, err := fmt.Sscanf(mr.Port(), "%d", &port)
	require.NoError(t, err)
	return port
}
