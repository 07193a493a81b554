package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrExecuteAutoAssignCommandIsNotConstructed = errors.New(
	"ExecuteAutoAssignCommand must be created via NewExecuteAutoAssignCommand constructor",
)

// ExecuteAutoAssignCommand represents an approved auto-assignment run.
// DefaultDate is the delivery date for routes created by the run;
// dateOverrides replaces it per city (overrides only apply to cities that
// get a new route, existing routes keep their own date).
type ExecuteAutoAssignCommand struct { //nolint:recvcheck //using for validation
	defaultDate   time.Time
	dateOverrides map[string]time.Time

	guard guard.ConstructorGuard
}

// NewExecuteAutoAssignCommand creates an auto-assignment run. Override
// keys are city names; they are normalized to the city match key so
// "OSLO" and "Oslo" address the same group.
func NewExecuteAutoAssignCommand(
	defaultDate time.Time,
	dateOverrides map[string]time.Time,
) (ExecuteAutoAssignCommand, error) {
	cmd := ExecuteAutoAssignCommand{
		guard: guard.NewConstructorGuard(),
	}

	if defaultDate.IsZero() {
		return ExecuteAutoAssignCommand{}, ErrDeliveryDateIsRequired
	}
	cmd.defaultDate = defaultDate

	cmd.dateOverrides = make(map[string]time.Time, len(dateOverrides))
	for name, date := range dateOverrides {
		city, err := kernel.NewCity(name)
		if err != nil {
			return ExecuteAutoAssignCommand{}, err
		}
		if date.IsZero() {
			return ExecuteAutoAssignCommand{}, ErrDeliveryDateIsRequired
		}
		cmd.dateOverrides[city.Key()] = date
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExecuteAutoAssignCommand) Validate() error {
	return c.guard.Validate(ErrExecuteAutoAssignCommandIsNotConstructed)
}

// DefaultDate returns the delivery date used for new routes without a
// city override.
func (c ExecuteAutoAssignCommand) DefaultDate() time.Time {
	return c.defaultDate
}

// DateFor returns the delivery date to use for a new route in the city
// with the given match key.
func (c ExecuteAutoAssignCommand) DateFor(cityKey string) time.Time {
	if date, ok := c.dateOverrides[cityKey]; ok {
		return date
	}
	return c.defaultDate
}
