package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *mockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *mockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *mockOrderRepository) GetAllByRoute(ctx context.Context, routeID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *mockOrderRepository) CountByRoute(ctx context.Context, routeID kernel.UUID) (int, error) {
	args := m.Called(ctx, routeID)
	return args.Int(0), args.Error(1)
}

type mockRouteRepository struct {
	mock.Mock
}

func (m *mockRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *mockRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *mockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *mockRouteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRouteRepository) GetAllOpen(ctx context.Context) ([]*route.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.Route), args.Error(1)
}

func (m *mockRouteRepository) GetAllOpenByCity(ctx context.Context, cityKey string) ([]*route.Route, error) {
	args := m.Called(ctx, cityKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.Route), args.Error(1)
}

type mockUnitOfWork struct {
	mock.Mock
}

func (m *mockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *mockUnitOfWork) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type mockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *mockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

func mustCity(t *testing.T, name string) kernel.City {
	t.Helper()
	city, err := kernel.NewCity(name)
	require.NoError(t, err)
	return city
}

func pendingOrder(t *testing.T, cityName string) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), 1, 900, nil)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		mustCity(t, cityName),
		[]order.Item{item},
		order.CashOnDelivery,
		order.Unpaid,
		"",
		0,
	)
	require.NoError(t, err)
	return o
}

func openRoute(t *testing.T, cityName string, deliveryDate time.Time) *route.Route {
	t.Helper()
	r, err := route.NewRoute(kernel.NewUUID(), mustCity(t, cityName), deliveryDate)
	require.NoError(t, err)
	return r
}

func TestAnalyzeAutoAssignQueryHandler_Handle_SplitsNewAndExisting(t *testing.T) {
	ctx := t.Context()
	routeDate := time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC)
	defaultDate := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	osloRoute := openRoute(t, "Oslo", routeDate)
	unassigned := []*order.Order{
		pendingOrder(t, "Oslo"),
		pendingOrder(t, "Oslo"),
		pendingOrder(t, "Bergen"),
	}

	orderRepo := new(mockOrderRepository)
	routeRepo := new(mockRouteRepository)
	uow := new(mockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllUnassigned", ctx).Return(unassigned, nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetAllOpen", ctx).Return([]*route.Route{osloRoute}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(mockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	query, err := queries.NewAnalyzeAutoAssignQuery(defaultDate)
	require.NoError(t, err)

	handler := queries.NewAnalyzeAutoAssignQueryHandler(factory)
	plan, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, plan.NewRoutes, 1)
	assert.Equal(t, "Bergen", plan.NewRoutes[0].City)
	assert.Equal(t, 1, plan.NewRoutes[0].OrderCount)
	assert.True(t, plan.NewRoutes[0].SuggestedDate.Equal(defaultDate))

	require.Len(t, plan.ExistingRoutes, 1)
	assert.Equal(t, "Oslo", plan.ExistingRoutes[0].City)
	assert.Equal(t, osloRoute.ID().String(), plan.ExistingRoutes[0].RouteID)
	assert.Equal(t, 2, plan.ExistingRoutes[0].OrderCount)
	assert.True(t, plan.ExistingRoutes[0].SuggestedDate.Equal(routeDate))

	uow.AssertExpectations(t)
}

func TestAnalyzeAutoAssignQueryHandler_Handle_EmptyPlan(t *testing.T) {
	ctx := t.Context()
	defaultDate := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	orderRepo := new(mockOrderRepository)
	routeRepo := new(mockRouteRepository)
	uow := new(mockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllUnassigned", ctx).Return([]*order.Order{}, nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetAllOpen", ctx).Return([]*route.Route{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(mockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	query, err := queries.NewAnalyzeAutoAssignQuery(defaultDate)
	require.NoError(t, err)

	handler := queries.NewAnalyzeAutoAssignQueryHandler(factory)
	plan, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.True(t, plan.IsEmpty())
}

func TestAnalyzeAutoAssignQueryHandler_Handle_ReadFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	defaultDate := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	orderRepo := new(mockOrderRepository)
	uow := new(mockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllUnassigned", ctx).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(mockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	query, err := queries.NewAnalyzeAutoAssignQuery(defaultDate)
	require.NoError(t, err)

	handler := queries.NewAnalyzeAutoAssignQueryHandler(factory)
	_, err = handler.Handle(ctx, query)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	uow.AssertExpectations(t)
}

func TestAnalyzeAutoAssignQueryHandler_Handle_InvalidQuery(t *testing.T) {
	factory := new(mockUnitOfWorkFactory)
	handler := queries.NewAnalyzeAutoAssignQueryHandler(factory)

	_, err := handler.Handle(t.Context(), queries.AnalyzeAutoAssignQuery{})

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrAnalyzeAutoAssignQueryIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
