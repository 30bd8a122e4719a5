package jobs

import (
	"context"
	"time"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// DefaultStoreStatsSchedule runs the job at the start of every minute.
const DefaultStoreStatsSchedule = "0 * * * * *"

type StoreStatsHandler interface {
	Handle(ctx context.Context, query queries.GetStoreStatsQuery) (queries.StoreStats, error)
}

// StoreStatsJob periodically logs how many users, products and orders the
// store holds.
type StoreStatsJob struct {
	handler  StoreStatsHandler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   logger.Logger
}

// NewStoreStatsJob creates the job. schedule is a six-field cron expression
// (seconds first); an empty one falls back to DefaultStoreStatsSchedule.
func NewStoreStatsJob(handler StoreStatsHandler, schedule string, log logger.Logger) *StoreStatsJob {
	if schedule == "" {
		schedule = DefaultStoreStatsSchedule
	}
	return &StoreStatsJob{
		handler:  handler,
		schedule: schedule,
		timeout:  10 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   log.With(logger.String("component", "store_stats_job")),
	}
}

// Start registers the job with the scheduler and starts it.
func (j *StoreStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info(context.Background(), "store stats job started", logger.String("schedule", j.schedule))
	return nil
}

// Run collects the counts once. Failures are logged and the next tick tries again.
func (j *StoreStatsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	stats, err := j.handler.Handle(ctx, queries.NewGetStoreStatsQuery())
	if err != nil {
		j.logger.Error(ctx, "store stats job failed", logger.WithError(err))
		return
	}

	j.logger.Info(ctx, "store stats",
		logger.Int64("users", stats.Users),
		logger.Int64("products", stats.Products),
		logger.Int64("orders", stats.Orders),
	)
}

// Stop stops the scheduler and waits for a running tick to finish.
func (j *StoreStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info(context.Background(), "store stats job stopped")
}
