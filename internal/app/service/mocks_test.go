//go:build unit

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"travel-explorer-service/internal/app/dto"
	"travel-explorer-service/internal/pkg/aviationstack"
)

type MockFlightAPI struct {
	mock.Mock
}

func NewMockFlightAPI(t *testing.T) *MockFlightAPI {
	m := &MockFlightAPI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFlightAPI) Search(ctx context.Context, origin, destination, date string) ([]aviationstack.Flight, error) {
	args := m.Called(ctx, origin, destination, date)

	var flights []aviationstack.Flight
	if args.Get(0) != nil {
		flights = args.Get(0).([]aviationstack.Flight)
	}

	return flights, args.Error(1)
}

type MockTripStore struct {
	mock.Mock
}

func NewMockTripStore(t *testing.T) *MockTripStore {
	m := &MockTripStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTripStore) Get(ctx context.Context, sessionID string) (dto.TripOverview, error) {
	args := m.Called(ctx, sessionID)

	return args.Get(0).(dto.TripOverview), args.Error(1)
}

func (m *MockTripStore) Save(ctx context.Context, sessionID string, overview dto.TripOverview, expiration time.Duration) error {
	args := m.Called(ctx, sessionID, overview, expiration)

	return args.Error(0)
}

func (m *MockTripStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)

	return args.Error(0)
}
