package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired     = errors.New("product name is required")
	ErrProductCategoryIsRequired = errors.New("product category is required")
)

// CreateProductCommand represents a request to add a product to the export
// catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	category  string
	unitPrice decimal.Decimal
	unitCost  decimal.Decimal
	inventory float64

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
// Price and inventory bounds are enforced by the domain constructor.
func NewCreateProductCommand(
	productID kernel.UUID,
	name, category string,
	unitPrice, unitCost decimal.Decimal,
	inventory float64,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		unitPrice: unitPrice,
		unitCost:  unitCost,
		inventory: inventory,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
		productCommand.setCategory(category),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Category returns the catalog category.
func (c CreateProductCommand) Category() string {
	return c.category
}

// UnitPrice returns the selling price per unit.
func (c CreateProductCommand) UnitPrice() decimal.Decimal {
	return c.unitPrice
}

// UnitCost returns the sourcing cost per unit.
func (c CreateProductCommand) UnitCost() decimal.Decimal {
	return c.unitCost
}

// Inventory returns the initial available quantity.
func (c CreateProductCommand) Inventory() float64 {
	return c.inventory
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setCategory(category string) error {
	if category == "" {
		return ErrProductCategoryIsRequired
	}

	c.category = category
	return nil
}
