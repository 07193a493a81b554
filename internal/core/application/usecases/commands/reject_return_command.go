package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRejectReturnCommandIsNotConstructed = errors.New(
	"RejectReturnCommand must be created via NewRejectReturnCommand constructor",
)

// RejectReturnCommand represents an admin decision to deny a pending
// return request, reverting the order to delivered.
type RejectReturnCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectReturnCommand creates a rejection of the given order's pending
// return request.
func NewRejectReturnCommand(orderID kernel.UUID) (RejectReturnCommand, error) {
	cmd := RejectReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RejectReturnCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectReturnCommand) Validate() error {
	return c.guard.Validate(ErrRejectReturnCommandIsNotConstructed)
}

// OrderID returns the order whose return is denied.
func (c RejectReturnCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RejectReturnCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
