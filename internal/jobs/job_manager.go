package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	autoAssignJob *AutoAssignJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	executeAutoAssignHandler commands.ExecuteAutoAssignCommandHandler,
	autoAssignSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		autoAssignJob: NewAutoAssignJob(executeAutoAssignHandler, autoAssignSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.autoAssignJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto-assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.autoAssignJob.Stop()
}
