package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and route assignment.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using
	// optimistic concurrency: the write succeeds only if the stored
	// version still matches the aggregate's loaded version. A lost race
	// surfaces as a Conflict error; the caller reloads and retries.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and route
	// assignment, or ObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnassigned retrieves all orders with no route attached whose
	// status still permits assignment. Used by the auto-assignment
	// planner and the unassigned-orders listing.
	GetAllUnassigned(ctx context.Context) ([]*order.Order, error)

	// GetAllByRoute retrieves every order attached to the given route.
	// Used when a route status change fans out to its orders.
	GetAllByRoute(ctx context.Context, routeID kernel.UUID) ([]*order.Order, error)

	// CountByRoute returns how many orders reference the given route.
	// Used to guard route deletion.
	CountByRoute(ctx context.Context, routeID kernel.UUID) (int, error)
}
