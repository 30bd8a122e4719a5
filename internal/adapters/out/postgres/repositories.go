package postgres

import (
	"shop/internal/adapters/out/postgres/gormrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/adapters/out/postgres/userrepo"
	"shop/internal/pkg/logger"
	"shop/internal/pkg/metrics"

	"gorm.io/gorm"
)

// Repositories groups stand-alone repositories. Each of their writes runs in
// its own transaction and is durable as soon as the call returns.
type Repositories struct {
	Users    *userrepo.GormUserRepository
	Products *productrepo.GormProductRepository
	Orders   *orderrepo.GormOrderRepository
}

func NewRepositories(db *gorm.DB, log logger.Logger, m metrics.Metrics) Repositories {
	opts := []gormrepo.Option{gormrepo.WithLogger(log), gormrepo.WithMetrics(m)}

	return Repositories{
		Users:    userrepo.NewGormUserRepository(db, nil, opts...),
		Products: productrepo.NewGormProductRepository(db, nil, opts...),
		Orders:   orderrepo.NewGormOrderRepository(db, nil, opts...),
	}
}
