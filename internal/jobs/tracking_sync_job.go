package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// TrackingSyncJob polls the tracking source on a schedule and records each
// update through the tracking command, so courier feeds that cannot push
// webhooks still drive the delivery lifecycle.
type TrackingSyncJob struct {
	source   ports.TrackingSource
	handler  commands.RecordTrackingEventCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTrackingSyncJob creates a job that syncs courier tracking feeds.
// schedule is a six-field cron expression.
func NewTrackingSyncJob(
	source ports.TrackingSource,
	handler commands.RecordTrackingEventCommandHandler,
	schedule string,
	logger *slog.Logger,
) *TrackingSyncJob {
	return &TrackingSyncJob{
		source:   source,
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "tracking_sync_job"),
	}
}

// Start begins the tracking sync job.
func (j *TrackingSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the tracking sync job.
func (j *TrackingSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking sync job stopped")
}

func (j *TrackingSyncJob) run() {
	ctx := context.Background()

	updates, err := j.source.FetchUpdates(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Tracking sync failed to fetch updates", "error", err)
		return
	}

	for _, update := range updates {
		cmd, err := commands.NewRecordTrackingEventCommand(
			update.SubOrderID, update.Status,
			update.Description, update.Location,
			order.SourceSyncJob, update.OccurredAt,
		)
		if err != nil {
			j.logger.ErrorContext(ctx, "Tracking sync received an invalid update",
				"subOrderID", update.SubOrderID.String(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Feeds report tracking numbers the engine never issued;
			// those updates are dropped, not retried.
			if errors.Is(err, errs.ErrObjectNotFound) {
				j.logger.DebugContext(ctx, "Tracking update for unknown sub-order dropped",
					"subOrderID", update.SubOrderID.String())
				continue
			}

			j.logger.ErrorContext(ctx, "Tracking sync failed to record update",
				"subOrderID", update.SubOrderID.String(), "error", err)
		}
	}
}
