package commands_test

import (
	"context"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/domain/model/user"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	created, _ := args.Get(0).(*user.User)
	return created, args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) UpdateEmail(ctx context.Context, id int64, email string) error {
	return m.Called(ctx, id, email).Error(0)
}

func (m *MockUserRepository) UpdateUsername(ctx context.Context, id int64, username string) error {
	return m.Called(ctx, id, username).Error(0)
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

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
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

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) (*product.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(*product.Product)
	return created, args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) UpdatePrice(ctx context.Context, id int64, price float64) error {
	return m.Called(ctx, id, price).Error(0)
}

func (m *MockProductRepository) UpdateStock(ctx context.Context, id int64, stock int) error {
	return m.Called(ctx, id, stock).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*product.Product)
	return found, args.Error(1)
}

func (m *MockProductRepository) GetByName(ctx context.Context, name string) (*product.Product, error) {
	args := m.Called(ctx, name)
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

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(*order.Order)
	return created, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) UpdateTotal(ctx context.Context, id int64, total float64) error {
	return m.Called(ctx, id, total).Error(0)
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

// MockUoW satisfies every unit of work interface the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, plain string) bool {
	return m.Called(hash, plain).Bool(0)
}

func ptr[T any](v T) *T {
	return &v
}
