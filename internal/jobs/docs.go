// Package jobs provides scheduled background tasks for the shop service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-resolution
// schedules and are started and stopped together through JobManager:
//
//	jobManager := jobs.NewJobManager(statsHandler, cfg.StatsJobSchedule, log)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// StoreStatsJob logs the number of users, products and orders. It reads
// through the private-mode repositories and never writes.
package jobs
