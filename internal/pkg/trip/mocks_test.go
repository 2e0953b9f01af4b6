//go:build unit

package trip

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

type MockRedisClient struct {
	mock.Mock
}

func NewMockRedisClient(t *testing.T) *MockRedisClient {
	m := &MockRedisClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)

	return args.Get(0).(*redis.StatusCmd)
}

func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)

	return args.Get(0).(*redis.StringCmd)
}

func (m *MockRedisClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	callArgs := make([]interface{}, 0, len(keys)+1)
	callArgs = append(callArgs, ctx)
	for _, key := range keys {
		callArgs = append(callArgs, key)
	}

	args := m.Called(callArgs...)

	return args.Get(0).(*redis.IntCmd)
}
