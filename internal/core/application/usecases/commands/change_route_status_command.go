package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/pkg/guard"
)

var ErrChangeRouteStatusCommandIsNotConstructed = errors.New(
	"ChangeRouteStatusCommand must be created via NewChangeRouteStatusCommand constructor",
)

// ChangeRouteStatusCommand represents an admin request to move a route
// forward along its progression. Moving a route to delivered also
// delivers its attached orders.
type ChangeRouteStatusCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	target  route.Status

	guard guard.ConstructorGuard
}

// NewChangeRouteStatusCommand creates a status change for the given route.
func NewChangeRouteStatusCommand(routeID kernel.UUID, target route.Status) (ChangeRouteStatusCommand, error) {
	cmd := ChangeRouteStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeRouteStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeRouteStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeRouteStatusCommandIsNotConstructed)
}

// RouteID returns the route to progress.
func (c ChangeRouteStatusCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Target returns the requested route status.
func (c ChangeRouteStatusCommand) Target() route.Status {
	return c.target
}

func (c *ChangeRouteStatusCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *ChangeRouteStatusCommand) setTarget(target route.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
