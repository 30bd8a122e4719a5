// Package http exposes the shop use cases over a JSON API built on echo.
package http

import (
	"context"
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/domain/model/user"
	"shop/internal/core/ports"
	"shop/internal/pkg/logger"
	"shop/internal/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CommandHandler runs a use case that only reports success or failure.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler runs a use case that returns a value.
type ResultHandler[Q, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}

// UseCases lists every handler the API dispatches to.
type UseCases struct {
	Authenticate ResultHandler[queries.AuthenticateUserQuery, queries.AuthenticateUserQueryResponse]

	RegisterUser ResultHandler[commands.RegisterUserCommand, *user.User]
	UpdateUser   CommandHandler[commands.UpdateUserCommand]
	DeleteUser   CommandHandler[commands.DeleteUserCommand]
	GetUser      ResultHandler[queries.GetUserQuery, *user.User]
	ListUsers    ResultHandler[queries.ListUsersQuery, queries.ListUsersQueryResponse]

	CreateProduct ResultHandler[commands.CreateProductCommand, *product.Product]
	UpdateProduct CommandHandler[commands.UpdateProductCommand]
	DeleteProduct CommandHandler[commands.DeleteProductCommand]
	GetProduct    ResultHandler[queries.GetProductQuery, *product.Product]
	ListProducts  ResultHandler[queries.ListProductsQuery, queries.ListProductsQueryResponse]

	CreateOrder ResultHandler[commands.CreateOrderCommand, *order.Order]
	UpdateOrder CommandHandler[commands.UpdateOrderCommand]
	DeleteOrder CommandHandler[commands.DeleteOrderCommand]
	GetOrder    ResultHandler[queries.GetOrderQuery, *order.Order]
	ListOrders  ResultHandler[queries.ListOrdersQuery, queries.ListOrdersQueryResponse]
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	useCases UseCases
	verifier ports.TokenVerifier
	log      logger.Logger
	metrics  metrics.Metrics
	gatherer prometheus.Gatherer
}

// NewServer creates a new HTTP server. gatherer backs the /metrics endpoint.
func NewServer(
	useCases UseCases,
	verifier ports.TokenVerifier,
	log logger.Logger,
	m metrics.Metrics,
	gatherer prometheus.Gatherer,
) *Server {
	return &Server{
		useCases: useCases,
		verifier: verifier,
		log:      log,
		metrics:  m,
		gatherer: gatherer,
	}
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Echo builds the router with middleware and every route attached.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.Validator = &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
	e.HTTPErrorHandler = s.handleError

	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}),
		s.observe,
		middleware.Recover(),
	)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	e.POST("/login", s.login)
	e.POST("/users", s.createUser)

	auth := s.authenticate
	e.GET("/users", s.listUsers, auth)
	e.GET("/users/:id", s.getUser, auth)
	e.PATCH("/users/:id", s.updateUser, auth)
	e.DELETE("/users/:id", s.deleteUser, auth)

	e.POST("/products", s.createProduct, auth)
	e.GET("/products", s.listProducts, auth)
	e.GET("/products/:id", s.getProduct, auth)
	e.PATCH("/products/:id", s.updateProduct, auth)
	e.DELETE("/products/:id", s.deleteProduct, auth)

	e.POST("/orders", s.createOrder, auth)
	e.GET("/orders", s.listOrders, auth)
	e.GET("/orders/:id", s.getOrder, auth)
	e.PATCH("/orders/:id", s.updateOrder, auth)
	e.DELETE("/orders/:id", s.deleteOrder, auth)

	return e
}
