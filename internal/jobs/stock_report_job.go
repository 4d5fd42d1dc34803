package jobs

import (
	"context"
	"log/slog"

	"hogtrade/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StockReportJob logs a daily snapshot of the available hog inventory.
// Runs every morning before trading starts so the day opens with a known
// head count, total live weight, and total farmgate value.
type StockReportJob struct {
	handler queries.GetAvailableHogsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStockReportJob creates a new job for the daily stock report.
// Uses GetAvailableHogsQueryHandler to read the current inventory.
func NewStockReportJob(handler queries.GetAvailableHogsQueryHandler, logger *slog.Logger) *StockReportJob {
	return &StockReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stock_report_job"),
	}
}

// Start schedules the stock report to run daily at 06:00.
func (j *StockReportJob) Start() error {
	_, err := j.cron.AddFunc("0 6 * * *", func() {
		ctx := context.Background()
		query := queries.NewGetAvailableHogsQuery()

		hogs, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stock report job failed", "error", err)
			return
		}

		var totalWeight, totalValue float64
		for _, h := range hogs {
			totalWeight += h.LiveWeight
			totalValue += h.FarmgatePrice * h.LiveWeight
		}

		j.logger.InfoContext(ctx, "Daily stock report",
			"availableHogs", len(hogs),
			"totalLiveWeight", totalWeight,
			"totalValue", totalValue,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock report job started (running daily at 06:00)")
	return nil
}

// Stop stops the stock report job.
func (j *StockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stock report job stopped")
}
