// Package jobs provides scheduled background tasks for the catering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. OrderSweepJob - Runs every minute to recompute the urgency tier of
// live orders and to charge equipment loans whose grace period has lapsed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepOrdersHandler, logger)
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
// The sweep uses the cron expression "0 * * * * *", running at the top of
// every minute. Priority tiers change at day granularity and equipment
// deadlines at hour granularity, so a minute pass keeps the board fresh
// without load on the database.
//
// # Error Handling
//
// A failed sweep pass is logged and retried on the next tick; the pass is
// idempotent, so skipped ticks only delay priority refreshes and penalty
// charges rather than losing them.
package jobs
