package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"exportpro/internal/core/application/usecases/commands"
)

// DocumentationSweepJob periodically retries document generation for orders
// sitting in documentation status. Runs every minute.
type DocumentationSweepJob struct {
	handler commands.SweepDocumentationCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDocumentationSweepJob creates the scheduled documentation retry job.
func NewDocumentationSweepJob(handler commands.SweepDocumentationCommandHandler, logger *slog.Logger) *DocumentationSweepJob {
	return &DocumentationSweepJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "documentation_sweep_job"),
	}
}

// Start begins the sweep job on a one-minute schedule.
func (j *DocumentationSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSweepDocumentationCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty documentation queue is the expected steady state
			if !errors.Is(err, commands.ErrNoOrdersInDocumentation) {
				j.logger.ErrorContext(ctx, "Documentation sweep failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Documentation sweep job started (running every minute)")
	return nil
}

// Stop stops the sweep job.
func (j *DocumentationSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Documentation sweep job stopped")
}
