package jobs

import (
	"context"
	"log/slog"

	"orderboard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TrialExpiryJob deactivates merchants whose free trial has ended.
// Runs once a day shortly after midnight.
type TrialExpiryJob struct {
	handler commands.ExpireTrialsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTrialExpiryJob creates a daily trial expiry job.
func NewTrialExpiryJob(handler commands.ExpireTrialsCommandHandler, logger *slog.Logger) *TrialExpiryJob {
	return &TrialExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "trial_expiry_job"),
	}
}

// Start schedules the daily sweep. The sweep also runs once immediately so a
// restart never leaves expired merchants active until the next midnight.
func (j *TrialExpiryJob) Start() error {
	run := func() {
		ctx := context.Background()
		cmd := commands.NewExpireTrialsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Trial expiry job failed", "error", err)
		}
	}

	_, err := j.cron.AddFunc("5 0 * * *", run)
	if err != nil {
		return err
	}

	go run()

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Trial expiry job started (running daily at 00:05)")
	return nil
}

// Stop stops the trial expiry job.
func (j *TrialExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Trial expiry job stopped")
}
