package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// DeleteRouteCommandHandler removes an empty delivery route. Deletion is
// rejected with RouteNotEmpty while any order still references the route;
// the admin must unassign or resolve those orders first.
type DeleteRouteCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteRouteCommandHandler creates a handler for route deletion.
func NewDeleteRouteCommandHandler(uowFactory UoWFactory) DeleteRouteCommandHandler {
	return DeleteRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion within a transaction. The emptiness check
// and the delete share the transaction, so no order can slip onto the
// route in between.
func (h DeleteRouteCommandHandler) Handle(ctx context.Context, cmd DeleteRouteCommand) error {
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

	routeRepo := uow.RouteRepository()
	aggregate, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	attached, err := uow.OrderRepository().CountByRoute(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if attached > 0 {
		return errs.NewRouteNotEmptyError(aggregate.ID().String(), attached)
	}

	if err = routeRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
