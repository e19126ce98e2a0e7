package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/settlement"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSettlementRepository struct{ mock.Mock }

func (m *MockSettlementRepository) Add(ctx context.Context, s *settlement.Settlement) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSettlementRepository) Update(ctx context.Context, s *settlement.Settlement) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSettlementRepository) Get(ctx context.Context, id kernel.UUID) (*settlement.Settlement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settlement.Settlement), args.Error(1)
}

type MockSettlementUoW struct{ mock.Mock }

func (m *MockSettlementUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettlementUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettlementUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettlementUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockSettlementUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockSettlementUoW) SettlementRepository() ports.SettlementRepository {
	args := m.Called()
	return args.Get(0).(ports.SettlementRepository)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

func deliveredSubOrder(t *testing.T, cost float64) *order.SubOrder {
	t.Helper()
	hubID := kernel.NewUUID()
	subOrder := makeSubOrder(t, &hubID)
	require.NoError(t, subOrder.SetShippingCost(mustMoney(t, cost)))
	_, err := subOrder.RecordEvent(order.DeliveryDelivered, "", "",
		order.SourceCourierWebhook, time.Now(), false)
	require.NoError(t, err)
	return subOrder
}

func TestCreateSettlementCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	periodStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	settlementCourier := assignTestCourier(t, "GIG Logistics")
	first := deliveredSubOrder(t, 1900)
	second := deliveredSubOrder(t, 1200)

	cmd, err := commands.NewCreateSettlementCommand(
		kernel.NewUUID(), settlementCourier.ID(), periodStart, periodEnd)
	require.NoError(t, err)

	courierRepo := new(MockAssignCourierRepository)
	orderRepo := new(MockSplitOrderRepository)
	settlementRepo := new(MockSettlementRepository)
	uow := new(MockSettlementUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("SettlementRepository").Return(settlementRepo).Once(),
		courierRepo.On("Get", ctx, settlementCourier.ID()).Return(settlementCourier, nil).Once(),
		orderRepo.On("GetSubOrdersEligibleForSettlement",
			ctx, settlementCourier.ID(), periodStart, periodEnd).
			Return([]*order.SubOrder{first, second}, nil).Once(),
		settlementRepo.On("Add", ctx, mock.AnythingOfType("*settlement.Settlement")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateSettlementCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := settlementRepo.Calls[0].Arguments[1].(*settlement.Settlement)
	assert.True(t, added.ID().IsEqual(cmd.SettlementID()))
	assert.Equal(t, settlement.StatusPending, added.Status())
	require.Len(t, added.Items(), 2)
	assert.InDelta(t, 3100, added.Total().Amount(), 0.001,
		"total is the sum of the shipment costs")

	courierRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	settlementRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateSettlementCommandHandler_Handle_NoEligibleShipments(t *testing.T) {
	ctx := t.Context()
	periodStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	settlementCourier := assignTestCourier(t, "Kwik")

	cmd, err := commands.NewCreateSettlementCommand(
		kernel.NewUUID(), settlementCourier.ID(), periodStart, periodEnd)
	require.NoError(t, err)

	courierRepo := new(MockAssignCourierRepository)
	orderRepo := new(MockSplitOrderRepository)
	settlementRepo := new(MockSettlementRepository)
	uow := new(MockSettlementUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("SettlementRepository").Return(settlementRepo).Once(),
		courierRepo.On("Get", ctx, settlementCourier.ID()).Return(settlementCourier, nil).Once(),
		orderRepo.On("GetSubOrdersEligibleForSettlement",
			ctx, settlementCourier.ID(), periodStart, periodEnd).
			Return([]*order.SubOrder{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateSettlementCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoEligibleShipments)
	settlementRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateSettlementCommandHandler_Handle_CourierNotFound(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()

	cmd, err := commands.NewCreateSettlementCommand(
		kernel.NewUUID(), courierID,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	courierRepo := new(MockAssignCourierRepository)
	orderRepo := new(MockSplitOrderRepository)
	settlementRepo := new(MockSettlementRepository)
	uow := new(MockSettlementUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("SettlementRepository").Return(settlementRepo).Once(),
		courierRepo.On("Get", ctx, courierID).
			Return(nil, errs.NewObjectNotFoundError("courier", courierID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateSettlementCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "GetSubOrdersEligibleForSettlement",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
