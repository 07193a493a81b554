package commands

import (
	"context"
)

// UnassignOrderCommandHandler detaches an order from its delivery route
// and clears its working delivery date.
type UnassignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUnassignOrderCommandHandler creates a handler for order unassignment.
func NewUnassignOrderCommandHandler(uowFactory OrderUoWFactory) UnassignOrderCommandHandler {
	return UnassignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unassignment within a transaction.
func (h UnassignOrderCommandHandler) Handle(ctx context.Context, cmd UnassignOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	aggregate.UnassignRoute()

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
