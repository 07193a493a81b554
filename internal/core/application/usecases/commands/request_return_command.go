package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRequestReturnCommandIsNotConstructed = errors.New(
	"RequestReturnCommand must be created via NewRequestReturnCommand constructor",
)

// RequestReturnCommand represents a customer's request to return a
// delivered order. The request must arrive within the return window
// measured from the delivery date.
type RequestReturnCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewRequestReturnCommand creates a return request for the given order.
// The reason is optional free text recorded on first request.
func NewRequestReturnCommand(orderID kernel.UUID, reason string) (RequestReturnCommand, error) {
	cmd := RequestReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RequestReturnCommand{}, err
	}
	cmd.reason = reason

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestReturnCommand) Validate() error {
	return c.guard.Validate(ErrRequestReturnCommandIsNotConstructed)
}

// OrderID returns the order to return.
func (c RequestReturnCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the customer's return reason.
func (c RequestReturnCommand) Reason() string {
	return c.reason
}

func (c *RequestReturnCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
