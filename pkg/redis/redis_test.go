package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOptionClient() *Client {
	return &Client{opts: &redis.UniversalOptions{}}
}

func TestOptions(t *testing.T) {
	client := newOptionClient()

	WithAddrs([]string{"redis-a:6379", "redis-b:6379"})(client)
	WithUsername("vms")(client)
	WithPassword("secret")(client)
	WithDB(3)(client)
	WithDialTimeout(2 * time.Second)(client)
	WithReadTimeout(time.Second)(client)
	WithWriteTimeout(time.Second)(client)
	WithPoolSize(20)(client)

	assert.Equal(t, []string{"redis-a:6379", "redis-b:6379"}, client.opts.Addrs, "Expected configured addresses")
	assert.Equal(t, "vms", client.opts.Username, "Expected correct username")
	assert.Equal(t, "secret", client.opts.Password, "Expected correct password")
	assert.Equal(t, 3, client.opts.DB, "Expected correct DB")
	assert.Equal(t, 2*time.Second, client.opts.DialTimeout, "Expected correct dial timeout")
	assert.Equal(t, time.Second, client.opts.ReadTimeout, "Expected correct read timeout")
	assert.Equal(t, time.Second, client.opts.WriteTimeout, "Expected correct write timeout")
	assert.Equal(t, 20, client.opts.PoolSize, "Expected correct pool size")
}

func TestWithAddrs_EmptyKeepsDefault(t *testing.T) {
	client := &Client{opts: &redis.UniversalOptions{Addrs: []string{"localhost:6379"}}}

	WithAddrs(nil)(client)

	assert.Equal(t, []string{"localhost:6379"}, client.opts.Addrs, "Empty addrs should keep the default")
}

func setupMockRedis() (RedisClient, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return NewFromClient(db), mock
}

func TestClient_Eval(t *testing.T) {
	client, mock := setupMockRedis()
	ctx := context.Background()
	script := "return redis.call('INCR', KEYS[1])"

	mock.ExpectEval(script, []string{"counter"}).SetVal(int64(1))

	result, err := client.Eval(ctx, script, []string{"counter"})
	require.NoError(t, err, "Eval() should not fail")
	assert.Equal(t, int64(1), result, "Expected script reply")

	require.NoError(t, mock.ExpectationsWereMet(), "Redis expectations should be met")
}

func TestClient_EvalInt(t *testing.T) {
	client, mock := setupMockRedis()
	ctx := context.Background()
	script := "return tonumber(ARGV[1])"

	mock.ExpectEval(script, []string{"k"}, 7).SetVal(int64(7))
	mock.ExpectEval(script, []string{"k"}, 8).SetErr(errors.New("NOSCRIPT"))

	value, err := client.EvalInt(ctx, script, []string{"k"}, 7)
	require.NoError(t, err, "EvalInt() should not fail")
	assert.Equal(t, int64(7), value, "Expected integer reply")

	_, err = client.EvalInt(ctx, script, []string{"k"}, 8)
	assert.Error(t, err, "EvalInt() should surface server errors")

	require.NoError(t, mock.ExpectationsWereMet(), "Redis expectations should be met")
}

func TestClient_Ping(t *testing.T) {
	client, mock := setupMockRedis()

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, client.Ping(context.Background()), "Ping() should succeed")

	require.NoError(t, mock.ExpectationsWereMet(), "Redis expectations should be met")
}

func TestClient_Getters(t *testing.T) {
	client, _ := setupMockRedis()

	assert.NotNil(t, client.GetClient(), "GetClient() should return client")
	assert.Empty(t, client.Addrs(), "Wrapped clients carry no configured addresses")
}

func TestNewWithConfig_Unreachable(t *testing.T) {
	client, err := NewWithConfig(Config{
		Addrs:       []string{"127.0.0.1:1"},
		DialTimeout: 200 * time.Millisecond,
	})
	assert.Error(t, err, "NewWithConfig() should fail when redis is unreachable")
	assert.Nil(t, client, "Client should be nil on error")
}
