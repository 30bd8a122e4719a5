package cmd

import (
	"fmt"

	httpin "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/security"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/jobs"
	"shop/internal/pkg/logger"
	"shop/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	log        logger.Logger
	metrics    metrics.Metrics
	uowFactory *postgres.GormUnitOfWorkFactory
	repos      postgres.Repositories
	hasher     *security.BcryptHasher
	tokens     *security.JWTService
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, log logger.Logger, m metrics.Metrics) (*CompositionRoot, error) {
	tokens, err := security.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("create token service: %w", err)
	}

	return &CompositionRoot{
		cfg:        cfg,
		log:        log,
		metrics:    m,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, log, m),
		repos:      postgres.NewRepositories(gormDB, log, m),
		hasher:     security.NewBcryptHasher(0),
		tokens:     tokens,
	}, nil
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	return commands.NewUpdateUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.repos.Users, c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateGetStoreStatsQueryHandler() queries.GetStoreStatsQueryHandler {
	return queries.NewGetStoreStatsQueryHandler(c.repos.Users, c.repos.Products, c.repos.Orders)
}

// UseCases wires every handler the HTTP API dispatches to.
func (c *CompositionRoot) UseCases() httpin.UseCases {
	registerUser := c.CreateRegisterUserCommandHandler()
	updateUser := c.CreateUpdateUserCommandHandler()
	deleteUser := c.CreateDeleteUserCommandHandler()
	createProduct := c.CreateCreateProductCommandHandler()
	updateProduct := c.CreateUpdateProductCommandHandler()
	deleteProduct := c.CreateDeleteProductCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()
	updateOrder := c.CreateUpdateOrderCommandHandler()
	deleteOrder := c.CreateDeleteOrderCommandHandler()

	return httpin.UseCases{
		Authenticate: c.CreateAuthenticateUserQueryHandler(),

		RegisterUser: &registerUser,
		UpdateUser:   &updateUser,
		DeleteUser:   &deleteUser,
		GetUser:      queries.NewGetUserQueryHandler(c.repos.Users),
		ListUsers:    queries.NewListUsersQueryHandler(c.repos.Users),

		CreateProduct: &createProduct,
		UpdateProduct: &updateProduct,
		DeleteProduct: &deleteProduct,
		GetProduct:    queries.NewGetProductQueryHandler(c.repos.Products),
		ListProducts:  queries.NewListProductsQueryHandler(c.repos.Products),

		CreateOrder: &createOrder,
		UpdateOrder: &updateOrder,
		DeleteOrder: &deleteOrder,
		GetOrder:    queries.NewGetOrderQueryHandler(c.repos.Orders),
		ListOrders:  queries.NewListOrdersQueryHandler(c.repos.Orders),
	}
}

func (c *CompositionRoot) NewHTTPServer(gatherer prometheus.Gatherer) *httpin.Server {
	return httpin.NewServer(c.UseCases(), c.tokens, c.log, c.metrics, gatherer)
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStoreStatsQueryHandler(), c.cfg.StatsJobSchedule, c.log)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
