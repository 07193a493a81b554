package order

import (
	"errors"
	"fmt"
	"slices"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable line of an order: a product reference, a quantity,
// the unit price captured at checkout, and the customizations the customer
// selected. Items are fixed after order creation; pricing is never
// recomputed by this system.
//
// Prices are carried in minor currency units (cents).
type Item struct {
	productID      kernel.UUID
	quantity       int
	unitPrice      int64
	customizations []string
	guard          guard.ConstructorGuard
}

// NewItem creates a validated order line.
//
// Quantity must be at least 1 and the unit price must not be negative.
// The customizations slice is copied so later mutation of the argument
// cannot affect the item.
func NewItem(productID kernel.UUID, quantity int, unitPrice int64, customizations []string) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%d is negative", unitPrice))
	}

	return Item{
		productID:      productID,
		quantity:       quantity,
		unitPrice:      unitPrice,
		customizations: slices.Clone(customizations),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity (always >= 1).
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price in minor currency units.
func (i Item) UnitPrice() int64 {
	return i.unitPrice
}

// Customizations returns a copy of the selected customizations.
func (i Item) Customizations() []string {
	return slices.Clone(i.customizations)
}

// Total returns quantity times unit price in minor currency units.
func (i Item) Total() int64 {
	return int64(i.quantity) * i.unitPrice
}
