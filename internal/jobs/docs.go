// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. CourierAssignmentJob - Periodically assigns couriers to pending sub-orders that have a hub
// 2. TrackingSyncJob - Periodically polls the tracking source and records courier status updates
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignmentJob, trackingSyncJob)
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
// The assignment job runs every five seconds so new shipments pick up a
// courier shortly after the split. The tracking sync schedule comes from
// configuration; courier feeds rarely warrant more than once a minute.
//
// # Error Handling
//
// - Assignment job logs expected business misses (no hub, no courier) at debug
// - Tracking sync logs unknown sub-orders at debug and everything else as errors
// - Failed job starts will stop any already running jobs
package jobs
