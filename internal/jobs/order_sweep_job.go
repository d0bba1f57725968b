package jobs

import (
	"context"
	"log/slog"
	"time"

	"catering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderSweepJob manages the scheduled maintenance pass over live orders.
// Runs every minute to recompute priorities as delivery dates draw closer
// and to charge overdue equipment loans.
type OrderSweepJob struct {
	handler commands.SweepOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderSweepJob creates a new job for sweeping live orders.
// Uses SweepOrdersCommandHandler to process the pass every minute.
func NewOrderSweepJob(handler commands.SweepOrdersCommandHandler, logger *slog.Logger) *OrderSweepJob {
	return &OrderSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_sweep_job"),
	}
}

// Start begins the order sweep job to run every minute.
func (j *OrderSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewSweepOrdersCommand(time.Now())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order sweep command creation failed", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order sweep job started (running every minute)")
	return nil
}

// Stop stops the order sweep job.
func (j *OrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order sweep job stopped")
}
