package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRejectCancelCommandIsNotConstructed = errors.New(
	"RejectCancelCommand must be created via NewRejectCancelCommand constructor",
)

// RejectCancelCommand represents an admin decision to deny a pending
// cancellation request, reverting the order to its pre-request status.
type RejectCancelCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectCancelCommand creates a rejection of the given order's pending
// cancellation request.
func NewRejectCancelCommand(orderID kernel.UUID) (RejectCancelCommand, error) {
	cmd := RejectCancelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RejectCancelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectCancelCommand) Validate() error {
	return c.guard.Validate(ErrRejectCancelCommandIsNotConstructed)
}

// OrderID returns the order whose cancellation is denied.
func (c RejectCancelCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RejectCancelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
