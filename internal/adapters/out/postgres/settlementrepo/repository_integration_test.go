package settlementrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/settlementrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/settlement"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SettlementRepositoryIntegrationTestSuite tests settlement persistence
// against a real PostgreSQL database.
type SettlementRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *settlementrepo.GormSettlementRepository
}

func (suite *SettlementRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&settlementrepo.SettlementDTO{}, &settlementrepo.SettlementItemDTO{})
	suite.Require().NoError(err)

	suite.repo = settlementrepo.NewGormSettlementRepository(db)
}

func (suite *SettlementRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE settlements, settlement_items").Error
	suite.Require().NoError(err)
}

func (suite *SettlementRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *SettlementRepositoryIntegrationTestSuite) money(amount float64) kernel.Money {
	m, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)
	return m
}

func (suite *SettlementRepositoryIntegrationTestSuite) makeSettlement() *settlement.Settlement {
	itemA, err := settlement.NewItem(kernel.NewUUID(), suite.money(1200))
	suite.Require().NoError(err)
	itemB, err := settlement.NewItem(kernel.NewUUID(), suite.money(1900))
	suite.Require().NoError(err)

	now := time.Now()
	batch, err := settlement.NewSettlement(
		kernel.NewUUID(), kernel.NewUUID(),
		now.Add(-7*24*time.Hour), now,
		[]settlement.Item{itemA, itemB},
	)
	suite.Require().NoError(err)
	return batch
}

func (suite *SettlementRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	batch := suite.makeSettlement()

	suite.Require().NoError(suite.repo.Add(ctx, batch))

	loaded, err := suite.repo.Get(ctx, batch.ID())
	suite.Require().NoError(err)
	suite.True(loaded.CourierID().IsEqual(batch.CourierID()))
	suite.Equal(settlement.StatusPending, loaded.Status())
	suite.Len(loaded.Items(), 2)
	suite.InEpsilon(3100.0, loaded.Total().Amount(), 1e-9)
}

func (suite *SettlementRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SettlementRepositoryIntegrationTestSuite) TestUpdate_MarkPaid() {
	ctx := context.Background()
	batch := suite.makeSettlement()
	suite.Require().NoError(suite.repo.Add(ctx, batch))

	paidAt := time.Now()
	err := batch.MarkPaid(settlement.PaymentInfo{
		Reference: "PAY-2026-007",
		Method:    "bank_transfer",
		PaidAt:    paidAt,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Update(ctx, batch))

	loaded, err := suite.repo.Get(ctx, batch.ID())
	suite.Require().NoError(err)
	suite.Equal(settlement.StatusPaid, loaded.Status())
	suite.Equal("PAY-2026-007", loaded.PaymentReference())
	suite.Equal("bank_transfer", loaded.PaymentMethod())
	suite.NotNil(loaded.PaidAt())
}

func (suite *SettlementRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	batch := suite.makeSettlement()
	err := suite.repo.Update(context.Background(), batch)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestSettlementRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementRepositoryIntegrationTestSuite))
}
