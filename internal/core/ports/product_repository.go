package ports

import (
	"context"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product to the catalog.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product, including inventory
	// withdrawals after completed orders.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves products with available inventory, optionally
	// filtered by category. An empty category means no filter.
	GetAll(ctx context.Context, category string) ([]*product.Product, error)
}
