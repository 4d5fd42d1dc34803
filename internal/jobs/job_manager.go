package jobs

import (
	"fmt"
	"log/slog"

	"hogtrade/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stockReportJob *StockReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	getAvailableHogsHandler queries.GetAvailableHogsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stockReportJob: NewStockReportJob(getAvailableHogsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stockReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start stock report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stockReportJob.Stop()
}
