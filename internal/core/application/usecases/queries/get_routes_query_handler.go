package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRoutesQueryHandler retrieves route information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetRoutesQueryHandler creates a handler for route listing queries.
// Requires a GORM database connection for query execution.
func NewGetRoutesQueryHandler(db *gorm.DB) GetRoutesQueryHandler {
	return GetRoutesQueryHandler{db: db}
}

// Handle executes the query to retrieve all routes with their order counts.
// Returns routes sorted by delivery date, with ties broken by route ID.
func (h GetRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetRoutesQuery,
) ([]GetRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	routes := make([]GetRoutesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.city_name,
			r.delivery_date,
			r.status,
			COUNT(o.id)
		FROM routes r
		LEFT JOIN orders o ON o.route_id = r.id
		GROUP BY r.id, r.city_name, r.delivery_date, r.status
		ORDER BY r.delivery_date, r.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var routeResp GetRoutesQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&routeResp.City,
			&routeResp.DeliveryDate,
			&status,
			&routeResp.OrderCount,
		)
		if err != nil {
			return nil, err
		}

		routeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		routeResp.ID = routeID

		routeResp.Status = route.Status(status)
		routes = append(routes, routeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
