package commands

import (
	"context"
	"time"
)

// RequestReturnCommandHandler handles customer return requests. The
// window check compares the current time against the order's delivery
// date; the boundary is inclusive.
type RequestReturnCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewRequestReturnCommandHandler creates a handler for return requests.
func NewRequestReturnCommandHandler(uowFactory OrderUoWFactory) RequestReturnCommandHandler {
	return RequestReturnCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// NewRequestReturnCommandHandlerWithClock creates a handler with a fixed
// clock. Used by tests that exercise the window boundary.
func NewRequestReturnCommandHandlerWithClock(
	uowFactory OrderUoWFactory,
	now func() time.Time,
) RequestReturnCommandHandler {
	return RequestReturnCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the return request within a transaction.
func (h RequestReturnCommandHandler) Handle(ctx context.Context, cmd RequestReturnCommand) error {
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

	if err = aggregate.RequestReturn(cmd.Reason(), h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
