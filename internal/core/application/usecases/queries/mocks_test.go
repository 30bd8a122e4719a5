package queries_test

import (
	"context"
	"time"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/domain/model/user"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// The repository mocks embed their port so that only the read methods the
// queries call need stubbing.

type MockUserRepository struct {
	mock.Mock
	ports.UserRepository
}

func (m *MockUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*user.User)
	return found, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	found, _ := args.Get(0).(*user.User)
	return found, args.Error(1)
}

func (m *MockUserRepository) ListAll(ctx context.Context, f ports.UserFilter, p ports.Page) ([]*user.User, error) {
	args := m.Called(ctx, f, p)
	found, _ := args.Get(0).([]*user.User)
	return found, args.Error(1)
}

func (m *MockUserRepository) CountAll(ctx context.Context, f ports.UserFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
	ports.ProductRepository
}

func (m *MockProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*product.Product)
	return found, args.Error(1)
}

func (m *MockProductRepository) ListAll(
	ctx context.Context,
	f ports.ProductFilter,
	p ports.Page,
) ([]*product.Product, error) {
	args := m.Called(ctx, f, p)
	found, _ := args.Get(0).([]*product.Product)
	return found, args.Error(1)
}

func (m *MockProductRepository) CountAll(ctx context.Context, f ports.ProductFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
	ports.OrderRepository
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*order.Order)
	return found, args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context, f ports.OrderFilter, p ports.Page) ([]*order.Order, error) {
	args := m.Called(ctx, f, p)
	found, _ := args.Get(0).([]*order.Order)
	return found, args.Error(1)
}

func (m *MockOrderRepository) CountAll(ctx context.Context, f ports.OrderFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, plain string) bool {
	return m.Called(hash, plain).Bool(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(ctx context.Context, userID int64) (string, time.Time, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func ptr[T any](v T) *T {
	return &v
}
