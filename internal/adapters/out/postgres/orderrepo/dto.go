// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and route assignment.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID `gorm:"type:uuid;index"`
	CityName           string
	CityKey            string    `gorm:"index"`
	Items              []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal           int64
	Discount           int64
	Total              int64
	Status             int `gorm:"index"`
	PreviousStatus     int
	PaymentMethod      int
	PaymentStatus      int
	PaymentReference   string
	RouteID            *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryDate       *time.Time
	CancellationReason string
	ReturnReason       string
	Version            int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a single order line in the database.
// Customizations are stored as a JSON array in a single column.
type ItemDTO struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	ProductID      uuid.UUID `gorm:"type:uuid"`
	Quantity       int
	UnitPrice      int64
	Customizations []string `gorm:"serializer:json"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional route assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var routeID *uuid.UUID
	if id := aggregate.RouteID(); id != nil {
		raw := id.Bytes()
		routeID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:        aggregate.ID().Bytes(),
			ProductID:      item.ProductID().Bytes(),
			Quantity:       item.Quantity(),
			UnitPrice:      item.UnitPrice(),
			Customizations: item.Customizations(),
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		UserID:             aggregate.UserID().Bytes(),
		CityName:           aggregate.City().Name(),
		CityKey:            aggregate.City().Key(),
		Items:              items,
		Subtotal:           aggregate.Subtotal(),
		Discount:           aggregate.Discount(),
		Total:              aggregate.Total(),
		Status:             int(aggregate.Status()),
		PreviousStatus:     int(aggregate.PreviousStatus()),
		PaymentMethod:      int(aggregate.PaymentMethod()),
		PaymentStatus:      int(aggregate.PaymentStatus()),
		PaymentReference:   aggregate.PaymentReference(),
		RouteID:            routeID,
		DeliveryDate:       aggregate.DeliveryDate(),
		CancellationReason: aggregate.CancellationReason(),
		ReturnReason:       aggregate.ReturnReason(),
		Version:            aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including payment state and route
// assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	city, err := kernel.NewCity(dto.CityName)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Quantity, itemDTO.UnitPrice, itemDTO.Customizations)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var routeID *kernel.UUID
	if dto.RouteID != nil {
		rID, routeErr := kernel.UUIDFromBytes((*dto.RouteID)[:])
		if routeErr != nil {
			return nil, routeErr
		}

		routeID = &rID
	}

	return order.RestoreOrder(
		id,
		userID,
		city,
		items,
		dto.Subtotal,
		dto.Discount,
		dto.Total,
		order.Status(dto.Status),
		order.Status(dto.PreviousStatus),
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		dto.PaymentReference,
		routeID,
		dto.DeliveryDate,
		dto.CancellationReason,
		dto.ReturnReason,
		dto.Version,
	)
}
