package cmd

import (
	"log/slog"
	"os"

	"fulfillment/internal/adapters/out/notify"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/courierrepo"
	"fulfillment/internal/adapters/out/postgres/hubrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/raterepo"
	"fulfillment/internal/adapters/out/postgres/settlementrepo"
	"fulfillment/internal/adapters/out/postgres/zonerepo"
	"fulfillment/internal/adapters/out/trackingfeed"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	logger         *slog.Logger
	trackingSource *trackingfeed.QueueSource
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),

		logger:         slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		trackingSource: trackingfeed.NewQueueSource(),
	}
}

// MigrateDB creates or updates the database schema for every aggregate.
func (c *CompositionRoot) MigrateDB() error {
	return c.gormDB.AutoMigrate(
		&zonerepo.ZoneDTO{},
		&raterepo.ShippingRateDTO{},
		&hubrepo.HubDTO{},
		&hubrepo.HubCourierDTO{},
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.SubOrderDTO{},
		&orderrepo.SubOrderItemDTO{},
		&orderrepo.TrackingEventDTO{},
		&settlementrepo.SettlementDTO{},
		&settlementrepo.SettlementItemDTO{},
	)
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) TrackingSource() *trackingfeed.QueueSource {
	return c.trackingSource
}

func (c *CompositionRoot) CreateSplitOrderCommandHandler() commands.SplitOrderCommandHandler {
	var f commands.SplitOrderUoWFactory = FuncSplitOrderUoWFactory(func() commands.SplitOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSplitOrderCommandHandler(f, c.config.SplitTransactional)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.AssignCourierUoWFactory = FuncAssignCourierUoWFactory(func() commands.AssignCourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordTrackingEventCommandHandler() commands.RecordTrackingEventCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordTrackingEventCommandHandler(
		f,
		notify.NewLogDispatcher(c.logger),
		c.logger,
		c.config.TrackingStrictMode,
	)
}

func (c *CompositionRoot) CreateCreateSettlementCommandHandler() commands.CreateSettlementCommandHandler {
	return commands.NewCreateSettlementCommandHandler(c.settlementUoWFactory())
}

func (c *CompositionRoot) CreateMarkSettlementPaidCommandHandler() commands.MarkSettlementPaidCommandHandler {
	return commands.NewMarkSettlementPaidCommandHandler(
		c.settlementUoWFactory(), c.config.SettlementTransactional,
	)
}

func (c *CompositionRoot) CreateCalculateShippingQueryHandler() queries.CalculateShippingQueryHandler {
	return queries.NewCalculateShippingQueryHandler(
		zonerepo.NewGormZoneRepository(c.gormDB),
		raterepo.NewGormRateRepository(c.gormDB),
		hubrepo.NewGormHubRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetCourierPaymentStatsQueryHandler() queries.GetCourierPaymentStatsQueryHandler {
	return queries.NewGetCourierPaymentStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedSubOrdersQueryHandler() queries.GetUnassignedSubOrdersQueryHandler {
	return queries.NewGetUnassignedSubOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	assignmentJob := jobs.NewCourierAssignmentJob(
		c.CreateGetUnassignedSubOrdersQueryHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.logger,
	)

	trackingSyncJob := jobs.NewTrackingSyncJob(
		c.trackingSource,
		c.CreateRecordTrackingEventCommandHandler(),
		c.config.TrackingSyncSchedule,
		c.logger,
	)

	return jobs.NewJobManager(assignmentJob, trackingSyncJob)
}

func (c *CompositionRoot) settlementUoWFactory() commands.SettlementUoWFactory {
	return FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
}

type FuncSplitOrderUoWFactory func() commands.SplitOrderUoW

func (f FuncSplitOrderUoWFactory) Create() commands.SplitOrderUoW {
	return f()
}

type FuncAssignCourierUoWFactory func() commands.AssignCourierUoW

func (f FuncAssignCourierUoWFactory) Create() commands.AssignCourierUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}
