package route

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrRouteIsNotConstructed is returned when a Route instance was not
// created through NewRoute or RestoreRoute.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute constructor")

// Route is the aggregate root for a delivery run: a city plus a target
// date grouping orders for a single trip. The route owns its own status;
// order membership is a derived relation held on each order's route
// reference, never duplicated here.
//
// Route follows these invariants:
//   - Status moves strictly forward (pending -> processing -> shipped ->
//     delivered).
//   - A shipped or delivered route no longer accepts assignments.
//   - A route may only be deleted once no orders reference it; that rule
//     is enforced by the delete operation, which can see the orders.
type Route struct {
	id           kernel.UUID
	city         kernel.City
	deliveryDate time.Time
	status       Status

	// version supports optimistic concurrency control in the repository.
	version int

	isConstructed bool
}

// NewRoute creates a new Route in pending status for the given city and
// delivery date.
func NewRoute(id kernel.UUID, city kernel.City, deliveryDate time.Time) (*Route, error) {
	r := &Route{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setCity(city),
		r.setDeliveryDate(deliveryDate),
	); err != nil {
		return nil, err
	}

	r.version = 1
	return r, nil
}

// RestoreRoute reconstructs a Route from persistence.
func RestoreRoute(
	id kernel.UUID,
	city kernel.City,
	deliveryDate time.Time,
	status Status,
	version int,
) (*Route, error) {
	if err := errors.Join(
		id.Validate(),
		city.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if deliveryDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("deliveryDate")
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("route version")
	}

	return &Route{
		id:            id,
		city:          city,
		deliveryDate:  deliveryDate,
		status:        status,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Route instance was properly constructed.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// IsEqual compares two routes by their unique identifiers.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// City returns the route's city.
func (r *Route) City() kernel.City {
	return r.city
}

// DeliveryDate returns the route's target delivery date.
func (r *Route) DeliveryDate() time.Time {
	return r.deliveryDate
}

// Status returns the route's current status.
func (r *Route) Status() Status {
	return r.status
}

// Version returns the optimistic-concurrency version of the aggregate.
func (r *Route) Version() int {
	return r.version
}

// IsOpen reports whether the route still accepts order assignments.
func (r *Route) IsOpen() bool {
	return r.status.IsOpen()
}

// EnsureAcceptsAssignments returns RouteClosed when the route has moved
// to shipped or delivered and can no longer take orders.
func (r *Route) EnsureAcceptsAssignments() error {
	if !r.IsOpen() {
		return errs.NewRouteClosedError(r.id.String(), r.status.String())
	}
	return nil
}

// ChangeStatus moves the route forward along its progression. The caller
// owning the surrounding transaction is responsible for fanning the
// delivered status out to the attached orders.
func (r *Route) ChangeStatus(target Status) error {
	newStatus, err := r.status.ChangeTo(target)
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// setID validates and sets the route's unique identifier.
func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setCity validates and sets the route's city.
func (r *Route) setCity(city kernel.City) error {
	if err := city.Validate(); err != nil {
		return err
	}
	r.city = city
	return nil
}

// setDeliveryDate validates and sets the route's delivery date.
func (r *Route) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	r.deliveryDate = deliveryDate
	return nil
}
