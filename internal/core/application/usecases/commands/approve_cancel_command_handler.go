package commands

import (
	"context"
)

// ApproveCancelCommandHandler finalizes a pending cancellation request.
// The cancelled order is also detached from its delivery route so the
// route can be emptied and eventually deleted.
type ApproveCancelCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApproveCancelCommandHandler creates a handler for cancellation approvals.
func NewApproveCancelCommandHandler(uowFactory OrderUoWFactory) ApproveCancelCommandHandler {
	return ApproveCancelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval within a transaction.
func (h ApproveCancelCommandHandler) Handle(ctx context.Context, cmd ApproveCancelCommand) error {
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

	if err = aggregate.ApproveCancel(); err != nil {
		return err
	}
	aggregate.UnassignRoute()

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
