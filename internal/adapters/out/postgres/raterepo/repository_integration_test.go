package raterepo_test

import (
	"context"
	"testing"

	"fulfillment/internal/adapters/out/postgres/raterepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rate"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// RateRepositoryIntegrationTestSuite tests shipping rate lookup precedence
// against a real PostgreSQL database.
type RateRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *raterepo.GormRateRepository
}

func (suite *RateRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&raterepo.ShippingRateDTO{})
	suite.Require().NoError(err)

	suite.repo = raterepo.NewGormRateRepository(db)
}

func (suite *RateRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipping_rates").Error
	suite.Require().NoError(err)
}

func (suite *RateRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *RateRepositoryIntegrationTestSuite) money(amount float64) kernel.Money {
	m, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)
	return m
}

func (suite *RateRepositoryIntegrationTestSuite) addRate(
	zoneID kernel.UUID, hubID *kernel.UUID, flat float64, active bool, priority int,
) *rate.ShippingRate {
	r, err := rate.NewShippingRate(
		kernel.NewUUID(), zoneID, hubID, nil,
		suite.money(flat), suite.money(200),
		nil, nil, nil,
		active, priority,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), r))
	return r
}

func (suite *RateRepositoryIntegrationTestSuite) TestFindActive_HubScopedWinsAtEqualPriority() {
	ctx := context.Background()
	zoneID := kernel.NewUUID()
	hubID := kernel.NewUUID()

	suite.addRate(zoneID, nil, 1500, true, 10)
	hubRate := suite.addRate(zoneID, &hubID, 900, true, 10)

	found, err := suite.repo.FindActive(ctx, zoneID, &hubID)
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(hubRate.ID()), "Hub-scoped rate should break the priority tie")
}

func (suite *RateRepositoryIntegrationTestSuite) TestFindActive_PriorityBeatsHubScope() {
	ctx := context.Background()
	zoneID := kernel.NewUUID()
	hubID := kernel.NewUUID()

	suite.addRate(zoneID, &hubID, 900, true, 0)
	zoneWide := suite.addRate(zoneID, nil, 1500, true, 10)

	found, err := suite.repo.FindActive(ctx, zoneID, &hubID)
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(zoneWide.ID()), "Higher priority governs regardless of scope")
}

func (suite *RateRepositoryIntegrationTestSuite) TestFindActive_HigherPriorityWins() {
	ctx := context.Background()
	zoneID := kernel.NewUUID()

	suite.addRate(zoneID, nil, 1500, true, 1)
	preferred := suite.addRate(zoneID, nil, 1200, true, 10)

	found, err := suite.repo.FindActive(ctx, zoneID, nil)
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(preferred.ID()))
}

func (suite *RateRepositoryIntegrationTestSuite) TestFindActive_NilHubOnlyMatchesZoneWide() {
	ctx := context.Background()
	zoneID := kernel.NewUUID()
	hubID := kernel.NewUUID()

	suite.addRate(zoneID, &hubID, 900, true, 10)
	zoneWide := suite.addRate(zoneID, nil, 1500, true, 0)

	found, err := suite.repo.FindActive(ctx, zoneID, nil)
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(zoneWide.ID()), "Nil hub lookup should ignore hub-scoped rates")
}

func (suite *RateRepositoryIntegrationTestSuite) TestFindActive_IgnoresInactive() {
	ctx := context.Background()
	zoneID := kernel.NewUUID()

	suite.addRate(zoneID, nil, 1500, false, 10)

	_, err := suite.repo.FindActive(ctx, zoneID, nil)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestRateRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RateRepositoryIntegrationTestSuite))
}
