package postgres

import (
	"context"
	"fmt"
	"time"

	"shop/internal/pkg/logger"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DriverPgx = "pgx"
	DriverPQ  = "postgres"

	pingTimeout = 5 * time.Second
)

// Config describes how to reach PostgreSQL and how to size the pool.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// Driver selects the database/sql driver: DriverPgx (default) or DriverPQ.
	Driver string

	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetime    time.Duration
	SlowQueryThreshold time.Duration
}

func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, sslMode)
}

// Open creates the process-wide connection pool and checks it with a ping.
// The pool is owned by the caller and released with Close.
func Open(ctx context.Context, cfg Config, log logger.Logger) (*gorm.DB, error) {
	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.NewGormLogger(log, cfg.SlowQueryThreshold),
		TranslateError:         true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err = sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info(ctx, "database connected",
		logger.String("host", cfg.Host),
		logger.String("database", cfg.Name),
		logger.String("driver", driverOrDefault(cfg.Driver)),
	)

	return db, nil
}

// Close releases the pool opened by Open.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func newDialector(cfg Config) (gorm.Dialector, error) {
	switch driverOrDefault(cfg.Driver) {
	case DriverPgx:
		return gorm_postgres.Open(cfg.DSN()), nil
	case DriverPQ:
		return gorm_postgres.New(gorm_postgres.Config{
			DriverName: DriverPQ,
			DSN:        cfg.DSN(),
		}), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func driverOrDefault(driver string) string {
	if driver == "" {
		return DriverPgx
	}

	return driver
}
