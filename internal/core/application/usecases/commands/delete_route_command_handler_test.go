package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteRouteCommandHandler_Handle_EmptyRoute(t *testing.T) {
	ctx := t.Context()
	emptyRoute := testRoute(t, "Oslo", time.Now().Add(48*time.Hour))

	cmd, err := commands.NewDeleteRouteCommand(emptyRoute.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, emptyRoute.ID()).Return(emptyRoute, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("CountByRoute", ctx, emptyRoute.ID()).Return(0, nil).Once(),
		routeRepo.On("Delete", ctx, emptyRoute.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	routeRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteRouteCommandHandler_Handle_RouteNotEmpty(t *testing.T) {
	ctx := t.Context()
	busyRoute := testRoute(t, "Oslo", time.Now().Add(48*time.Hour))

	cmd, err := commands.NewDeleteRouteCommand(busyRoute.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, busyRoute.ID()).Return(busyRoute, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("CountByRoute", ctx, busyRoute.ID()).Return(3, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrRouteNotEmpty)
	assert.Contains(t, err.Error(), "attached orders: 3")
	routeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteRouteCommandHandler_Handle_RouteNotFound(t *testing.T) {
	ctx := t.Context()
	routeID := kernel.NewUUID()

	cmd, err := commands.NewDeleteRouteCommand(routeID)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, routeID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
