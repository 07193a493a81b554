package commands

import (
	"context"
)

// ApproveReturnCommandHandler finalizes a pending return request, moving
// the order into its terminal returned status.
type ApproveReturnCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApproveReturnCommandHandler creates a handler for return approvals.
func NewApproveReturnCommandHandler(uowFactory OrderUoWFactory) ApproveReturnCommandHandler {
	return ApproveReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval within a transaction.
func (h ApproveReturnCommandHandler) Handle(ctx context.Context, cmd ApproveReturnCommand) error {
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

	if err = aggregate.ApproveReturn(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
