// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
		"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
	)
)

// GetUnassignedOrdersQuery retrieves all orders awaiting route assignment.
// Returns assignable orders without a route for dispatcher review and
// as input for planning an auto-assignment run.
//
// Example:
//
//	query := NewGetUnassignedOrdersQuery()
//	handler := NewGetUnassignedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unassigned orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders awaiting assignment\n", len(orders))
type GetUnassignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates a query to retrieve unassigned orders.
// This is a parameterless query that fetches all routable orders without a route.
func NewGetUnassignedOrdersQuery() GetUnassignedOrdersQuery {
	return GetUnassignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnassignedOrdersQueryIsNotConstructed if validation fails.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

// GetUnassignedOrdersQueryResponse represents an order awaiting assignment.
// Contains the data a dispatcher needs to judge the pending workload per city.
type GetUnassignedOrdersQueryResponse struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	City      string
	Status    order.Status
	Total     int64
	ItemCount int
}
