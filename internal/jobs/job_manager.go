package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	courierAssignmentJob *CourierAssignmentJob
	trackingSyncJob      *TrackingSyncJob
}

// NewJobManager creates a new job manager from the already wired jobs.
func NewJobManager(
	courierAssignmentJob *CourierAssignmentJob,
	trackingSyncJob *TrackingSyncJob,
) *JobManager {
	return &JobManager{
		courierAssignmentJob: courierAssignmentJob,
		trackingSyncJob:      trackingSyncJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.courierAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start courier assignment job: %w", err)
	}

	if err := jm.trackingSyncJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.courierAssignmentJob.Stop()
		return fmt.Errorf("failed to start tracking sync job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trackingSyncJob.Stop()
	jm.courierAssignmentJob.Stop()
}
