package commands

import (
	"context"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// RefundOrderCommandHandler orchestrates the refund of a cancelled or
// returned stripe order.
//
// Preconditions are checked before the gateway is called: the order must
// be paid by stripe and in a terminal status, and an order already
// refunded fails fast with AlreadyRefunded without touching the gateway.
// A gateway failure surfaces as RefundFailed and leaves no state behind,
// so the operation is safe to retry.
type RefundOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
}

// NewRefundOrderCommandHandler creates a handler for refund orchestration.
func NewRefundOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the refund. The payment status only flips to refunded
// after the gateway confirmed. Two concurrent refunds can both reach the
// gateway, but the version check on the order write makes the loser's
// commit fail with Conflict.
func (h RefundOrderCommandHandler) Handle(ctx context.Context, cmd RefundOrderCommand) error {
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

	if err = aggregate.RefundEligibility(); err != nil {
		return err
	}

	if err = h.gateway.Refund(ctx, aggregate.PaymentReference(), aggregate.Total()); err != nil {
		return errs.NewRefundFailedError(aggregate.ID().String(), err)
	}

	if err = aggregate.MarkRefunded(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
