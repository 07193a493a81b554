package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/route"
)

// CreateRouteCommandHandler handles delivery-route creation. New routes
// start in pending status and immediately accept assignments.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route creation.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route creation command within a transaction.
func (h CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := route.NewRoute(cmd.RouteID(), cmd.City(), cmd.DeliveryDate())
	if err != nil {
		return err
	}

	if err = uow.RouteRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
