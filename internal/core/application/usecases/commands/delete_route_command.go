package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteRouteCommandIsNotConstructed = errors.New(
	"DeleteRouteCommand must be created via NewDeleteRouteCommand constructor",
)

// DeleteRouteCommand represents an admin request to remove a delivery
// route. Only empty routes may be deleted.
type DeleteRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRouteCommand creates a deletion request for the given route.
func NewDeleteRouteCommand(routeID kernel.UUID) (DeleteRouteCommand, error) {
	cmd := DeleteRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRouteID(routeID); err != nil {
		return DeleteRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRouteCommandIsNotConstructed)
}

// RouteID returns the route to delete.
func (c DeleteRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c *DeleteRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}
