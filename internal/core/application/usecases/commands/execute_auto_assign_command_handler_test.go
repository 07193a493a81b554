package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExecuteAutoAssignCommandHandler_Handle_ReusesOpenRoute(t *testing.T) {
	ctx := t.Context()
	routeDate := time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC)
	defaultDate := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	osloOrder := testCodOrder(t, "Oslo")
	osloRoute := testRoute(t, "Oslo", routeDate)

	cmd, err := commands.NewExecuteAutoAssignCommand(defaultDate, nil)
	require.NoError(t, err)

	snapshotOrders := new(MockOrderRepository)
	snapshotUoW := new(MockUoW)
	mock.InOrder(
		snapshotUoW.On("Begin", ctx).Return(nil).Once(),
		snapshotUoW.On("OrderRepository").Return(snapshotOrders).Once(),
		snapshotOrders.On("GetAllUnassigned", ctx).Return([]*order.Order{osloOrder}, nil).Once(),
		snapshotUoW.On("Commit", ctx).Return(nil).Once(),
		snapshotUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	cityOrders := new(MockOrderRepository)
	cityRoutes := new(MockRouteRepository)
	cityUoW := new(MockUoW)
	mock.InOrder(
		cityUoW.On("Begin", ctx).Return(nil).Once(),
		cityUoW.On("RouteRepository").Return(cityRoutes).Once(),
		cityRoutes.On("GetAllOpenByCity", ctx, "oslo").Return([]*route.Route{osloRoute}, nil).Once(),
		cityUoW.On("OrderRepository").Return(cityOrders).Once(),
		cityOrders.On("Get", ctx, osloOrder.ID()).Return(osloOrder, nil).Once(),
		cityOrders.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		cityUoW.On("Commit", ctx).Return(nil).Once(),
		cityUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(snapshotUoW).Once()
	factory.On("Create").Return(cityUoW).Once()

	handler := commands.NewExecuteAutoAssignCommandHandler(factory)
	outcomes, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, "Oslo", outcomes[0].City)
	assert.Equal(t, osloRoute.ID().String(), outcomes[0].RouteID)
	assert.False(t, outcomes[0].RouteCreated)
	assert.Equal(t, 1, outcomes[0].AssignedCount)
	assert.Equal(t, 0, outcomes[0].SkippedCount)
	require.NoError(t, outcomes[0].Err)

	require.NotNil(t, osloOrder.RouteID())
	assert.True(t, osloOrder.RouteID().IsEqual(osloRoute.ID()))
	assert.True(t, osloOrder.DeliveryDate().Equal(routeDate))
}

func TestExecuteAutoAssignCommandHandler_Handle_CreatesRouteWithOverride(t *testing.T) {
	ctx := t.Context()
	defaultDate := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	overrideDate := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)

	bergenOrder := testCodOrder(t, "Bergen")

	// Override key matching is case-insensitive.
	cmd, err := commands.NewExecuteAutoAssignCommand(defaultDate, map[string]time.Time{"BERGEN": overrideDate})
	require.NoError(t, err)

	snapshotOrders := new(MockOrderRepository)
	snapshotUoW := new(MockUoW)
	mock.InOrder(
		snapshotUoW.On("Begin", ctx).Return(nil).Once(),
		snapshotUoW.On("OrderRepository").Return(snapshotOrders).Once(),
		snapshotOrders.On("GetAllUnassigned", ctx).Return([]*order.Order{bergenOrder}, nil).Once(),
		snapshotUoW.On("Commit", ctx).Return(nil).Once(),
		snapshotUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	cityOrders := new(MockOrderRepository)
	cityRoutes := new(MockRouteRepository)
	cityUoW := new(MockUoW)
	mock.InOrder(
		cityUoW.On("Begin", ctx).Return(nil).Once(),
		cityUoW.On("RouteRepository").Return(cityRoutes).Once(),
		cityRoutes.On("GetAllOpenByCity", ctx, "bergen").Return([]*route.Route{}, nil).Once(),
		cityRoutes.On("Add", ctx, mock.AnythingOfType("*route.Route")).Return(nil).Once(),
		cityUoW.On("OrderRepository").Return(cityOrders).Once(),
		cityOrders.On("Get", ctx, bergenOrder.ID()).Return(bergenOrder, nil).Once(),
		cityOrders.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		cityUoW.On("Commit", ctx).Return(nil).Once(),
		cityUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(snapshotUoW).Once()
	factory.On("Create").Return(cityUoW).Once()

	handler := commands.NewExecuteAutoAssignCommandHandler(factory)
	outcomes, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].RouteCreated)
	assert.Equal(t, 1, outcomes[0].AssignedCount)

	createdRoute := cityRoutes.Calls[1].Arguments[1].(*route.Route)
	assert.Equal(t, "bergen", createdRoute.City().Key())
	assert.True(t, createdRoute.DeliveryDate().Equal(overrideDate))
	require.NotNil(t, bergenOrder.RouteID())
	assert.True(t, bergenOrder.RouteID().IsEqual(createdRoute.ID()))
}

func TestExecuteAutoAssignCommandHandler_Handle_SkipsNewlyIneligible(t *testing.T) {
	ctx := t.Context()
	routeDate := time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC)
	defaultDate := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	snapshotCopy := testCodOrder(t, "Oslo")
	osloRoute := testRoute(t, "Oslo", routeDate)

	// Between snapshot and execution the order got cancelled.
	freshCopy := testCodOrder(t, "Oslo")
	require.NoError(t, freshCopy.RequestCancel("changed my mind"))

	cmd, err := commands.NewExecuteAutoAssignCommand(defaultDate, nil)
	require.NoError(t, err)

	snapshotOrders := new(MockOrderRepository)
	snapshotUoW := new(MockUoW)
	mock.InOrder(
		snapshotUoW.On("Begin", ctx).Return(nil).Once(),
		snapshotUoW.On("OrderRepository").Return(snapshotOrders).Once(),
		snapshotOrders.On("GetAllUnassigned", ctx).Return([]*order.Order{snapshotCopy}, nil).Once(),
		snapshotUoW.On("Commit", ctx).Return(nil).Once(),
		snapshotUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	cityOrders := new(MockOrderRepository)
	cityRoutes := new(MockRouteRepository)
	cityUoW := new(MockUoW)
	mock.InOrder(
		cityUoW.On("Begin", ctx).Return(nil).Once(),
		cityUoW.On("RouteRepository").Return(cityRoutes).Once(),
		cityRoutes.On("GetAllOpenByCity", ctx, "oslo").Return([]*route.Route{osloRoute}, nil).Once(),
		cityUoW.On("OrderRepository").Return(cityOrders).Once(),
		cityOrders.On("Get", ctx, snapshotCopy.ID()).Return(freshCopy, nil).Once(),
		cityUoW.On("Commit", ctx).Return(nil).Once(),
		cityUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(snapshotUoW).Once()
	factory.On("Create").Return(cityUoW).Once()

	handler := commands.NewExecuteAutoAssignCommandHandler(factory)
	outcomes, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, 0, outcomes[0].AssignedCount)
	assert.Equal(t, 1, outcomes[0].SkippedCount)
	cityOrders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExecuteAutoAssignCommandHandler_Handle_CityFailureIsIsolated(t *testing.T) {
	ctx := t.Context()
	routeDate := time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC)
	defaultDate := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	bergenOrder := testCodOrder(t, "Bergen")
	osloOrder := testCodOrder(t, "Oslo")
	osloRoute := testRoute(t, "Oslo", routeDate)

	cmd, err := commands.NewExecuteAutoAssignCommand(defaultDate, nil)
	require.NoError(t, err)

	snapshotOrders := new(MockOrderRepository)
	snapshotUoW := new(MockUoW)
	mock.InOrder(
		snapshotUoW.On("Begin", ctx).Return(nil).Once(),
		snapshotUoW.On("OrderRepository").Return(snapshotOrders).Once(),
		snapshotOrders.On("GetAllUnassigned", ctx).
			Return([]*order.Order{bergenOrder, osloOrder}, nil).
			Once(),
		snapshotUoW.On("Commit", ctx).Return(nil).Once(),
		snapshotUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	// Bergen (first by city key) fails on route lookup.
	bergenRoutes := new(MockRouteRepository)
	bergenUoW := new(MockUoW)
	mock.InOrder(
		bergenUoW.On("Begin", ctx).Return(nil).Once(),
		bergenUoW.On("RouteRepository").Return(bergenRoutes).Once(),
		bergenRoutes.On("GetAllOpenByCity", ctx, "bergen").
			Return(nil, errors.New("database error")).
			Once(),
		bergenUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	// Oslo proceeds normally.
	osloOrders := new(MockOrderRepository)
	osloRoutes := new(MockRouteRepository)
	osloUoW := new(MockUoW)
	mock.InOrder(
		osloUoW.On("Begin", ctx).Return(nil).Once(),
		osloUoW.On("RouteRepository").Return(osloRoutes).Once(),
		osloRoutes.On("GetAllOpenByCity", ctx, "oslo").Return([]*route.Route{osloRoute}, nil).Once(),
		osloUoW.On("OrderRepository").Return(osloOrders).Once(),
		osloOrders.On("Get", ctx, osloOrder.ID()).Return(osloOrder, nil).Once(),
		osloOrders.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		osloUoW.On("Commit", ctx).Return(nil).Once(),
		osloUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(snapshotUoW).Once()
	factory.On("Create").Return(bergenUoW).Once()
	factory.On("Create").Return(osloUoW).Once()

	handler := commands.NewExecuteAutoAssignCommandHandler(factory)
	outcomes, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.Equal(t, "Bergen", outcomes[0].City)
	require.Error(t, outcomes[0].Err)
	assert.Equal(t, 0, outcomes[0].AssignedCount)

	assert.Equal(t, "Oslo", outcomes[1].City)
	require.NoError(t, outcomes[1].Err)
	assert.Equal(t, 1, outcomes[1].AssignedCount)
	assert.True(t, osloOrder.RouteID().IsEqual(osloRoute.ID()))
}

func TestExecuteAutoAssignCommandHandler_Handle_NothingToAssign(t *testing.T) {
	ctx := t.Context()
	defaultDate := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewExecuteAutoAssignCommand(defaultDate, nil)
	require.NoError(t, err)

	snapshotOrders := new(MockOrderRepository)
	snapshotUoW := new(MockUoW)
	mock.InOrder(
		snapshotUoW.On("Begin", ctx).Return(nil).Once(),
		snapshotUoW.On("OrderRepository").Return(snapshotOrders).Once(),
		snapshotOrders.On("GetAllUnassigned", ctx).Return([]*order.Order{}, nil).Once(),
		snapshotUoW.On("Commit", ctx).Return(nil).Once(),
		snapshotUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(snapshotUoW).Once()

	handler := commands.NewExecuteAutoAssignCommandHandler(factory)
	outcomes, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, outcomes)
}
