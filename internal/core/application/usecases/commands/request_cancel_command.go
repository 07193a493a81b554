package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRequestCancelCommandIsNotConstructed = errors.New(
	"RequestCancelCommand must be created via NewRequestCancelCommand constructor",
)

// RequestCancelCommand represents a customer's request to cancel an order.
// If no delivery route is attached yet the order is cancelled directly;
// otherwise the request is queued for admin review.
type RequestCancelCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewRequestCancelCommand creates a cancellation request for the given
// order. The reason is optional free text recorded on first request.
func NewRequestCancelCommand(orderID kernel.UUID, reason string) (RequestCancelCommand, error) {
	cmd := RequestCancelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RequestCancelCommand{}, err
	}
	cmd.reason = reason

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCancelCommand) Validate() error {
	return c.guard.Validate(ErrRequestCancelCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c RequestCancelCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the customer's cancellation reason.
func (c RequestCancelCommand) Reason() string {
	return c.reason
}

func (c *RequestCancelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
