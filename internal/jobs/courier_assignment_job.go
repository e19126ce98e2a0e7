package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// CourierAssignmentJob works through the backlog of pending sub-orders
// without a courier. Runs every five seconds so shipments pick up a courier
// shortly after the split.
type CourierAssignmentJob struct {
	unassignedHandler queries.GetUnassignedSubOrdersQueryHandler
	assignHandler     commands.AssignCourierCommandHandler
	cron              *cron.Cron
	logger            *slog.Logger
}

// NewCourierAssignmentJob creates a job that matches pending sub-orders with
// hub couriers.
func NewCourierAssignmentJob(
	unassignedHandler queries.GetUnassignedSubOrdersQueryHandler,
	assignHandler commands.AssignCourierCommandHandler,
	logger *slog.Logger,
) *CourierAssignmentJob {
	return &CourierAssignmentJob{
		unassignedHandler: unassignedHandler,
		assignHandler:     assignHandler,
		cron:              cron.New(cron.WithSeconds()),
		logger:            logger.With("component", "courier_assignment_job"),
	}
}

// Start begins the courier assignment job.
func (j *CourierAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier assignment job started (running every five seconds)")
	return nil
}

// Stop stops the courier assignment job.
func (j *CourierAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier assignment job stopped")
}

func (j *CourierAssignmentJob) run() {
	ctx := context.Background()

	pending, err := j.unassignedHandler.Handle(ctx, queries.NewGetUnassignedSubOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Courier assignment job failed to list pending sub-orders", "error", err)
		return
	}

	for _, subOrder := range pending {
		cmd, err := commands.NewAssignCourierCommand(subOrder.ID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Courier assignment job built an invalid command",
				"subOrderID", subOrder.ID.String(), "error", err)
			continue
		}

		if err := j.assignHandler.Handle(ctx, cmd); err != nil {
			// A sub-order without a hub or a hub without couriers stays
			// pending until an operator intervenes.
			if errors.Is(err, commands.ErrMissingHub) || errors.Is(err, services.ErrNoCourierAvailable) {
				j.logger.DebugContext(ctx, "Sub-order left unassigned",
					"subOrderID", subOrder.ID.String(), "reason", err)
				continue
			}

			j.logger.ErrorContext(ctx, "Courier assignment job failed",
				"subOrderID", subOrder.ID.String(), "error", err)
		}
	}
}
