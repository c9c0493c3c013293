// Package product provides the Product aggregate for the export catalog.
package product

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/pkg/errs"
	"exportpro/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry with pricing and on-hand inventory.
type Product struct {
	id        kernel.UUID
	name      string
	category  string
	unitPrice decimal.Decimal
	unitCost  decimal.Decimal
	inventory float64
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewProduct creates a catalog entry. Name and category are required, prices
// must be non-negative and inventory cannot go below zero.
func NewProduct(
	id kernel.UUID,
	name, category string,
	unitPrice, unitCost decimal.Decimal,
	inventory float64,
	createdAt time.Time,
) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}
	if category == "" {
		return nil, errs.NewValueIsRequiredError("product category")
	}
	if unitPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidError("unit price")
	}
	if unitCost.IsNegative() {
		return nil, errs.NewValueIsInvalidError("unit cost")
	}
	if inventory < 0 {
		return nil, errs.NewValueIsInvalidError("inventory")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}

	return &Product{
		id:        id,
		name:      name,
		category:  category,
		unitPrice: unitPrice,
		unitCost:  unitCost,
		inventory: inventory,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the product was created through the constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Category returns the catalog category.
func (p *Product) Category() string {
	return p.category
}

// UnitPrice returns the selling price per unit.
func (p *Product) UnitPrice() decimal.Decimal {
	return p.unitPrice
}

// UnitCost returns the sourcing cost per unit.
func (p *Product) UnitCost() decimal.Decimal {
	return p.unitCost
}

// Inventory returns the available quantity.
func (p *Product) Inventory() float64 {
	return p.inventory
}

// CreatedAt returns the catalog entry timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// IsAvailable reports whether any inventory remains.
func (p *Product) IsAvailable() bool {
	return p.inventory > 0
}

// Reserve withdraws quantity from inventory after a completed order.
func (p *Product) Reserve(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	if quantity > p.inventory {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, p.inventory)
	}
	p.inventory -= quantity
	return nil
}
