package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AutoAssignJob runs the auto-assignment on a schedule, attaching the
// day's unassigned orders to delivery routes. Each run targets the next
// calendar day, so routes created overnight are ready for tomorrow's
// departures.
type AutoAssignJob struct {
	handler  commands.ExecuteAutoAssignCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAutoAssignJob creates the scheduled auto-assignment job. The
// schedule is a six-field cron expression with a seconds column.
func NewAutoAssignJob(
	handler commands.ExecuteAutoAssignCommandHandler,
	schedule string,
	logger *slog.Logger,
) *AutoAssignJob {
	return &AutoAssignJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "auto_assign_job"),
	}
}

// Start registers the job with its cron schedule and begins execution.
func (j *AutoAssignJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto-assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the auto-assignment job.
func (j *AutoAssignJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto-assignment job stopped")
}

func (j *AutoAssignJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewExecuteAutoAssignCommand(nextDeliveryDate(time.Now()), nil)
	if err != nil {
		j.logger.ErrorContext(ctx, "Auto-assignment command rejected", "error", err)
		return
	}

	outcomes, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Auto-assignment run failed", "error", err)
		return
	}

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			j.logger.ErrorContext(ctx, "Auto-assignment failed for city",
				"city", outcome.City,
				"error", outcome.Err,
			)
			continue
		}

		j.logger.InfoContext(ctx, "Auto-assignment completed for city",
			"city", outcome.City,
			"route_id", outcome.RouteID,
			"route_created", outcome.RouteCreated,
			"assigned", outcome.AssignedCount,
			"skipped", outcome.SkippedCount,
		)
	}
}

// nextDeliveryDate returns the day after now, at midnight UTC.
func nextDeliveryDate(now time.Time) time.Time {
	tomorrow := now.UTC().AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.UTC)
}
