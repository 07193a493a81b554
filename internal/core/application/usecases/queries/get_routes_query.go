package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetRoutesQueryIsNotConstructed = errors.New(
		"GetRoutesQuery must be created via NewGetRoutesQuery constructor",
	)
)

// GetRoutesQuery retrieves all delivery routes with their attached order
// counts for the dispatcher overview.
//
// Example:
//
//	query := NewGetRoutesQuery()
//	handler := NewGetRoutesQueryHandler(db)
//
//	routes, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get routes: %w", err)
//	}
//
//	for _, r := range routes {
//	    fmt.Printf("Route %s (%s): %d orders\n", r.ID, r.City, r.OrderCount)
//	}
type GetRoutesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRoutesQuery creates a query to retrieve all routes.
func NewGetRoutesQuery() GetRoutesQuery {
	return GetRoutesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRoutesQueryIsNotConstructed if validation fails.
func (q GetRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesQueryIsNotConstructed)
}

// GetRoutesQueryResponse represents a route in the read model, including
// how many orders are currently attached to it.
type GetRoutesQueryResponse struct {
	ID           kernel.UUID
	City         string
	DeliveryDate time.Time
	Status       route.Status
	OrderCount   int
}
