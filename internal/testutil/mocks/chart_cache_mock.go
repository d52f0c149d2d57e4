package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockChartCache is a mock implementation of cache.ChartCache
type MockChartCache struct {
	mock.Mock
}

func (m *MockChartCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockChartCache) Set(ctx context.Context, key string, data []byte) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

func (m *MockChartCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockChartCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
