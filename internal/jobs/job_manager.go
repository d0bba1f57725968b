package jobs

import (
	"log/slog"

	"catering/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderSweepJob *OrderSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	sweepOrdersHandler commands.SweepOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderSweepJob: NewOrderSweepJob(sweepOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	return jm.orderSweepJob.Start()
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderSweepJob.Stop()
}
