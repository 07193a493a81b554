package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnassignedOrdersQueryHandler retrieves unassigned orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetUnassignedOrdersQueryHandler(db)
//	query := NewGetUnassignedOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get unassigned orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d unassigned orders\n", len(orders))
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for unassigned order queries.
// Requires a GORM database connection for query execution.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unassigned orders.
// Returns assignable orders without a route, with their item counts;
// only cancelled, returned, and delivered orders are excluded.
// Results are sorted by order ID for consistent output.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]GetUnassignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnassignedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.user_id,
			o.city_name,
			o.status,
			o.total,
			COUNT(i.id)
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.route_id IS NULL AND o.status NOT IN (?, ?, ?)
		GROUP BY o.id, o.user_id, o.city_name, o.status, o.total
		ORDER BY o.id
	`, order.Cancelled, order.Returned, order.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUnassignedOrdersQueryResponse
		var id, userID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&userID,
			&orderResp.City,
			&status,
			&orderResp.Total,
			&orderResp.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.UserID = ownerID

		orderResp.Status = order.Status(status)
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
