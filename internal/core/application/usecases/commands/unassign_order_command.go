package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUnassignOrderCommandIsNotConstructed = errors.New(
	"UnassignOrderCommand must be created via NewUnassignOrderCommand constructor",
)

// UnassignOrderCommand represents a request to detach an order from its
// delivery route. Unassigning an unrouted order succeeds as a no-op.
type UnassignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnassignOrderCommand creates an unassignment for the given order.
func NewUnassignOrderCommand(orderID kernel.UUID) (UnassignOrderCommand, error) {
	cmd := UnassignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UnassignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignOrderCommand) Validate() error {
	return c.guard.Validate(ErrUnassignOrderCommandIsNotConstructed)
}

// OrderID returns the order to detach.
func (c UnassignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *UnassignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
