// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence.
package productrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting catalog
// products.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Category  string          `gorm:"index"`
	UnitPrice decimal.Decimal `gorm:"type:numeric"`
	UnitCost  decimal.Decimal `gorm:"type:numeric"`
	Inventory float64
	CreatedAt time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Category:  aggregate.Category(),
		UnitPrice: aggregate.UnitPrice(),
		UnitCost:  aggregate.UnitCost(),
		Inventory: aggregate.Inventory(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a product aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.NewProduct(
		id, dto.Name, dto.Category, dto.UnitPrice, dto.UnitCost, dto.Inventory, dto.CreatedAt,
	)
}
