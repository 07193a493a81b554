package commands

import (
	"context"
)

// RejectCancelCommandHandler denies a pending cancellation request. The
// order returns to the operational status it held when the request was
// filed and stays on its delivery route.
type RejectCancelCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectCancelCommandHandler creates a handler for cancellation rejections.
func NewRejectCancelCommandHandler(uowFactory OrderUoWFactory) RejectCancelCommandHandler {
	return RejectCancelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection within a transaction.
func (h RejectCancelCommandHandler) Handle(ctx context.Context, cmd RejectCancelCommand) error {
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

	if err = aggregate.RejectCancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
