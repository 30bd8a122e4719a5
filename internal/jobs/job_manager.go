package jobs

import (
	"fmt"

	"shop/internal/pkg/logger"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	storeStatsJob *StoreStatsJob
}

func NewJobManager(statsHandler StoreStatsHandler, statsSchedule string, log logger.Logger) *JobManager {
	return &JobManager{
		storeStatsJob: NewStoreStatsJob(statsHandler, statsSchedule, log),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.storeStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start store stats job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.storeStatsJob.Stop()
}
