package commands_test

import (
	"context"
	"testing"
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/order"
	"darkstore/internal/core/domain/model/product"
	"darkstore/internal/core/domain/model/support"
	"darkstore/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

type MockSupportRepository struct{ mock.Mock }

func (m *MockSupportRepository) AddFeedback(ctx context.Context, feedback *support.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockSupportRepository) AddBugReport(ctx context.Context, report *support.BugReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockSupportRepository) GetAllFeedback(ctx context.Context) ([]*support.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*support.Feedback), args.Error(1)
}

func (m *MockSupportRepository) GetAllBugReports(ctx context.Context) ([]*support.BugReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*support.BugReport), args.Error(1)
}

// Test fixtures shared across handler tests.

func testLineItems(t *testing.T) []order.LineItem {
	t.Helper()

	first, err := order.NewLineItem(kernel.NewUUID(), 30, 2)
	require.NoError(t, err)
	second, err := order.NewLineItem(kernel.NewUUID(), 50, 1)
	require.NoError(t, err)

	return []order.LineItem{first, second}
}

func testLocation(t *testing.T) order.DeliveryLocation {
	t.Helper()

	point, err := kernel.NewGeoPoint(28.63, 77.22)
	require.NoError(t, err)
	location, err := order.NewDeliveryLocation(point, "14 Lajpat Nagar")
	require.NoError(t, err)

	return location
}

func testPendingOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()

	otp, err := order.OTPFromString("123456")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), customerID, testLineItems(t), testLocation(t), 27, otp, time.Now().UTC())
	require.NoError(t, err)

	return aggregate
}

func testClaimedOrder(t *testing.T, agentID kernel.UUID) *order.Order {
	t.Helper()

	aggregate := testPendingOrder(t, kernel.NewUUID())
	require.NoError(t, aggregate.Claim(agentID))

	return aggregate
}
