package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrApproveCancelCommandIsNotConstructed = errors.New(
	"ApproveCancelCommand must be created via NewApproveCancelCommand constructor",
)

// ApproveCancelCommand represents an admin decision to approve a pending
// cancellation request.
type ApproveCancelCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveCancelCommand creates an approval for the given order's
// pending cancellation request.
func NewApproveCancelCommand(orderID kernel.UUID) (ApproveCancelCommand, error) {
	cmd := ApproveCancelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ApproveCancelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveCancelCommand) Validate() error {
	return c.guard.Validate(ErrApproveCancelCommandIsNotConstructed)
}

// OrderID returns the order whose cancellation is approved.
func (c ApproveCancelCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ApproveCancelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
