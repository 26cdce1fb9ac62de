package jobs

import (
	"context"
	"log/slog"
	"time"

	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// SettlementSyncJob keeps the open register's cash and pix totals in step
// with the day's orders. Runs every minute; the underlying command is an
// overwrite so a missed tick is caught up by the next one.
type SettlementSyncJob struct {
	handler commands.UpdateSettlementTotalsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSettlementSyncJob creates a job that syncs settlement totals.
func NewSettlementSyncJob(handler commands.UpdateSettlementTotalsCommandHandler, logger *slog.Logger) *SettlementSyncJob {
	return &SettlementSyncJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "settlement_sync_job"),
	}
}

// Start schedules the sync at the top of every minute.
func (j *SettlementSyncJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewUpdateSettlementTotalsCommand(kernel.DateOf(time.Now()))
		if err != nil {
			j.logger.ErrorContext(ctx, "Settlement sync job could not build command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Settlement sync job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement sync job started (running every minute)")
	return nil
}

// Stop stops the settlement sync job.
func (j *SettlementSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settlement sync job stopped")
}
