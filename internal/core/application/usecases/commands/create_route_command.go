package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateRouteCommandIsNotConstructed = errors.New(
		"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
	)
	ErrDeliveryDateIsRequired = errors.New("delivery date is required")
)

// CreateRouteCommand represents an admin request to open a new delivery
// route for a city on a target date.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID      kernel.UUID
	city         kernel.City
	deliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to register a new delivery
// route. The city name is normalized by the kernel; blank names and zero
// dates are rejected.
func NewCreateRouteCommand(routeID kernel.UUID, city string, deliveryDate time.Time) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setCity(city),
		cmd.setDeliveryDate(deliveryDate),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// RouteID returns the unique identifier for the new route.
func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// City returns the route's normalized city.
func (c CreateRouteCommand) City() kernel.City {
	return c.city
}

// DeliveryDate returns the route's target delivery date.
func (c CreateRouteCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

func (c *CreateRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *CreateRouteCommand) setCity(name string) error {
	city, err := kernel.NewCity(name)
	if err != nil {
		return err
	}

	c.city = city
	return nil
}

func (c *CreateRouteCommand) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return ErrDeliveryDateIsRequired
	}

	c.deliveryDate = deliveryDate
	return nil
}
