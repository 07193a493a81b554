package commands

import (
	"context"
)

// AssignOrderCommandHandler attaches an order to a delivery route. The
// route must still be open; an order already on a different route is
// rejected and must be unassigned explicitly first. The route's delivery
// date is stamped onto the order as its working delivery date.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignOrderCommandHandler creates a handler for manual order assignment.
func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment within a transaction. The order write
// goes through optimistic concurrency, so two concurrent assignments of
// the same order cannot both win.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	routeAggregate, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}
	if err = routeAggregate.EnsureAcceptsAssignments(); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderAggregate.AssignToRoute(routeAggregate.ID(), routeAggregate.DeliveryDate()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
