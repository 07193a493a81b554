package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, including its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database using optimistic locking.
// The row is only written when its stored version matches the version the
// aggregate was loaded with; a lost race returns a ConflictError and the
// caller is expected to reload and retry.
//
// Items are write-once at order creation and are not touched here.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Explicit column map so cleared fields (route_id, delivery_date)
	// are written even when nil; Updates on a struct skips zero values.
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":              dto.Status,
			"previous_status":     dto.PreviousStatus,
			"payment_status":      dto.PaymentStatus,
			"route_id":            dto.RouteID,
			"delivery_date":       dto.DeliveryDate,
			"cancellation_reason": dto.CancellationReason,
			"return_reason":       dto.ReturnReason,
			"version":             dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUnassigned retrieves all assignable orders without a route,
// ordered by ID for deterministic processing. The status filter mirrors
// Order.IsAssignable: anything not cancelled, returned, or delivered is
// a candidate, including orders with a pending cancel or return request.
func (r *GormOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("route_id IS NULL AND status NOT IN ?", nonAssignableStatuses()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllByRoute retrieves all orders attached to the given route,
// ordered by ID.
func (r *GormOrderRepository) GetAllByRoute(ctx context.Context, routeID kernel.UUID) ([]*order.Order, error) {
	if err := routeID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("route_id = ?", routeID.Bytes()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// CountByRoute returns how many orders are attached to the given route.
func (r *GormOrderRepository) CountByRoute(ctx context.Context, routeID kernel.UUID) (int, error) {
	if err := routeID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("route_id = ?", routeID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

func nonAssignableStatuses() []int {
	return []int{int(order.Cancelled), int(order.Returned), int(order.Delivered)}
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
