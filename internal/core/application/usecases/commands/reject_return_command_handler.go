package commands

import (
	"context"
)

// RejectReturnCommandHandler denies a pending return request; the order
// goes back to delivered.
type RejectReturnCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectReturnCommandHandler creates a handler for return rejections.
func NewRejectReturnCommandHandler(uowFactory OrderUoWFactory) RejectReturnCommandHandler {
	return RejectReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection within a transaction.
func (h RejectReturnCommandHandler) Handle(ctx context.Context, cmd RejectReturnCommand) error {
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

	if err = aggregate.RejectReturn(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
