package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"shop/internal/adapters/out/postgres"
	"shop/internal/jobs"
	"shop/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string `mapstructure:"HTTP_PORT"`

	DBHost               string        `mapstructure:"DB_HOST"`
	DBPort               string        `mapstructure:"DB_PORT"`
	DBUser               string        `mapstructure:"DB_USER"`
	DBPassword           string        `mapstructure:"DB_PASSWORD"`
	DBName               string        `mapstructure:"DB_NAME"`
	DBSslMode            string        `mapstructure:"DB_SSLMODE"`
	DBDriver             string        `mapstructure:"DB_DRIVER"`
	DBMaxOpenConns       int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns       int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetime    time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	DBSlowQueryThreshold time.Duration `mapstructure:"DB_SLOW_QUERY_THRESHOLD"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	LogProduction    bool   `mapstructure:"LOG_PRODUCTION"`
	StatsJobSchedule string `mapstructure:"STATS_JOB_SCHEDULE"`
}

var defaults = map[string]any{
	"HTTP_PORT":               "8080",
	"DB_HOST":                 "localhost",
	"DB_PORT":                 "5432",
	"DB_USER":                 "postgres",
	"DB_PASSWORD":             "",
	"DB_NAME":                 "shop",
	"DB_SSLMODE":              "disable",
	"DB_DRIVER":               postgres.DriverPgx,
	"DB_MAX_OPEN_CONNS":       10,
	"DB_MAX_IDLE_CONNS":       5,
	"DB_CONN_MAX_LIFETIME":    30 * time.Minute,
	"DB_SLOW_QUERY_THRESHOLD": 200 * time.Millisecond,
	"JWT_SECRET":              "",
	"JWT_TTL":                 time.Hour,
	"LOG_PRODUCTION":          false,
	"STATS_JOB_SCHEDULE":      jobs.DefaultStoreStatsSchedule,
}

// LoadConfig reads <dir>/.env when it exists, then lets the process
// environment override it. Every key has a default except JWT_SECRET, so
// callers that serve traffic must run Validate.
func LoadConfig(dir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Validate reports every unusable setting at once.
func (c Config) Validate() error {
	var problems []error
	if c.JWTSecret == "" {
		problems = append(problems, errs.NewValueIsRequiredError("JWT_SECRET"))
	}
	if c.JWTTTL <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("JWT_TTL", c.JWTTTL, "1s", "-"))
	}
	if c.DBDriver != postgres.DriverPgx && c.DBDriver != postgres.DriverPQ {
		problems = append(problems, errs.NewValueIsInvalidError("DB_DRIVER"))
	}
	return errors.Join(problems...)
}

func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		Host:               c.DBHost,
		Port:               c.DBPort,
		User:               c.DBUser,
		Password:           c.DBPassword,
		Name:               c.DBName,
		SSLMode:            c.DBSslMode,
		Driver:             c.DBDriver,
		MaxOpenConns:       c.DBMaxOpenConns,
		MaxIdleConns:       c.DBMaxIdleConns,
		ConnMaxLifetime:    c.DBConnMaxLifetime,
		SlowQueryThreshold: c.DBSlowQueryThreshold,
	}
}
