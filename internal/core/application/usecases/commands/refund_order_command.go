package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRefundOrderCommandIsNotConstructed = errors.New(
	"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
)

// RefundOrderCommand represents an admin request to refund a cancelled or
// returned stripe order through the payment gateway.
type RefundOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRefundOrderCommand creates a refund request for the given order.
func NewRefundOrderCommand(orderID kernel.UUID) (RefundOrderCommand, error) {
	cmd := RefundOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RefundOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

// OrderID returns the order to refund.
func (c RefundOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RefundOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
