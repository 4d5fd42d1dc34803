// Package jobs provides scheduled background tasks for the hog trading system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the trading service.
//
// # Available Jobs
//
// 1. StockReportJob - Runs daily at 06:00 to log a snapshot of the available
// hog inventory (head count, total live weight, total farmgate value)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getAvailableHogsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The stock report uses the cron expression "0 6 * * *", i.e. once a day at
// 06:00 local time, before trading starts.
//
// # Error Handling
//
// The report job logs query failures and skips the run; the next scheduled
// run starts fresh.
package jobs
