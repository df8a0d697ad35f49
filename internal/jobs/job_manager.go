// Package jobs provides the scheduled background tasks of the application,
// built on github.com/robfig/cron/v3. The only job today is the daily trial
// expiry sweep of the admin subsystem; the live order board itself has no
// background work, everything happens inside event dispatch.
package jobs

import (
	"fmt"
	"log/slog"

	"orderboard/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	trialExpiryJob *TrialExpiryJob
}

// NewJobManager creates a job manager wiring the command handlers to their
// schedules.
func NewJobManager(
	expireTrialsHandler commands.ExpireTrialsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		trialExpiryJob: NewTrialExpiryJob(expireTrialsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.trialExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start trial expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trialExpiryJob.Stop()
}
