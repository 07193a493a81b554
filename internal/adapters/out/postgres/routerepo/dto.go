// Package routerepo provides data transfer objects and mapping functions for route persistence.
// This package implements the repository pattern for the route domain aggregate, handling
// the conversion between domain entities and database representations.
package routerepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route aggregates.
// The city key is stored alongside the display name so open routes can be
// looked up case-insensitively without touching the domain normalization.
type RouteDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CityName     string
	CityKey      string `gorm:"index"`
	DeliveryDate time.Time
	Status       int `gorm:"index"`
	Version      int
}

// TableName specifies the database table name for route entities.
// Overrides GORM's default naming convention to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

// fromDomain converts a route domain aggregate to its database representation.
func fromDomain(aggregate *route.Route) RouteDTO {
	return RouteDTO{
		ID:           aggregate.ID().Bytes(),
		CityName:     aggregate.City().Name(),
		CityKey:      aggregate.City().Key(),
		DeliveryDate: aggregate.DeliveryDate(),
		Status:       int(aggregate.Status()),
		Version:      aggregate.Version(),
	}
}

// toDomain converts a database DTO to a route domain aggregate using RestoreRoute.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	city, err := kernel.NewCity(dto.CityName)
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(id, city, dto.DeliveryDate, route.Status(dto.Status), dto.Version)
}
