package routerepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route to the database.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
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

// Update saves an existing route to the database using optimistic locking.
// A version mismatch returns a ConflictError.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RouteDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"delivery_date": dto.DeliveryDate,
			"status":        dto.Status,
			"version":       dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("route", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a route by ID.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a route from the database. Emptiness is checked by the
// use case before deletion.
func (r *GormRouteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RouteDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("route", id.String())
	}

	return nil
}

// GetAllOpen retrieves all routes still accepting assignments, ordered by
// delivery date with ties broken by ID.
func (r *GormRouteRepository) GetAllOpen(ctx context.Context) ([]*route.Route, error) {
	var dtos []RouteDTO
	err := r.db.WithContext(ctx).
		Where("status IN ?", openStatuses()).
		Order("delivery_date").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllOpenByCity retrieves open routes for one city, ordered by delivery
// date with ties broken by ID.
func (r *GormRouteRepository) GetAllOpenByCity(ctx context.Context, cityKey string) ([]*route.Route, error) {
	if cityKey == "" {
		return nil, errs.NewValueIsRequiredError("cityKey")
	}

	var dtos []RouteDTO
	err := r.db.WithContext(ctx).
		Where("city_key = ? AND status IN ?", cityKey, openStatuses()).
		Order("delivery_date").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func openStatuses() []int {
	return []int{int(route.Pending), int(route.Processing)}
}

func toDomainAll(dtos []RouteDTO) ([]*route.Route, error) {
	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		rt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}

	return routes, nil
}
