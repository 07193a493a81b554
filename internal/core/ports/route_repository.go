// Package ports defines repository and gateway interfaces for the
// fulfillment domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for delivery-route
// aggregates.
type RouteRepository interface {
	// Add persists a new route aggregate to storage.
	// The route must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route aggregate using
	// optimistic concurrency; a lost race surfaces as a Conflict error.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route aggregate by its unique identifier, or
	// ObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// Delete removes a route from storage. The caller must have verified
	// that no orders reference the route.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllOpen retrieves all routes still accepting assignments
	// (pending or processing).
	GetAllOpen(ctx context.Context) ([]*route.Route, error)

	// GetAllOpenByCity retrieves the open routes for the given city match
	// key, ordered by delivery date then ID so selection among several
	// candidates is deterministic.
	GetAllOpenByCity(ctx context.Context, cityKey string) ([]*route.Route, error)
}
