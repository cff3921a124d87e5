package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shelfrent-backend/internal/domain"
)

type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockShelfRepo struct {
	mock.Mock
}

func (m *MockShelfRepo) List(ctx context.Context) ([]domain.Shelf, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shelf), args.Error(1)
}

func (m *MockShelfRepo) Rent(ctx context.Context, shelfID, customerID int) (int64, error) {
	args := m.Called(ctx, shelfID, customerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockSaleRepo struct {
	mock.Mock
}

func (m *MockSaleRepo) Create(ctx context.Context, s *domain.Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(err error) error {
	return m.Called(err).Error(0)
}
