package commands

import (
	"context"
)

// RequestCancelCommandHandler handles customer cancellation requests.
// The destination status depends on route attachment: unrouted orders
// cancel immediately, routed orders wait for admin review.
type RequestCancelCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestCancelCommandHandler creates a handler for cancellation requests.
func NewRequestCancelCommandHandler(uowFactory OrderUoWFactory) RequestCancelCommandHandler {
	return RequestCancelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation request within a transaction.
func (h RequestCancelCommandHandler) Handle(ctx context.Context, cmd RequestCancelCommand) error {
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

	if err = aggregate.RequestCancel(cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
