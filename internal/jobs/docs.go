// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. AutoAssignJob - Runs on a configurable schedule to attach unassigned
// orders to delivery routes, creating routes for cities that have none.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(executeAutoAssignHandler, schedule, logger)
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
// The auto-assignment schedule is a six-field cron expression with a
// seconds column, configured through the application config. A nightly
// run such as "0 0 20 * * *" leaves time to review routes before the
// next day's departures.
//
// # Error Handling
//
// A failed city is reported in its outcome and logged; the run continues
// with the remaining cities. Failed job starts stop any already running
// jobs.
package jobs
