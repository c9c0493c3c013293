package ports

import (
	"context"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/supplier"
)

// SupplierRepository defines the persistence contract for supplier aggregates.
type SupplierRepository interface {
	// Add persists a new supplier aggregate to storage.
	Add(ctx context.Context, aggregate *supplier.Supplier) error

	// Update persists changes to an existing supplier aggregate.
	Update(ctx context.Context, aggregate *supplier.Supplier) error

	// Get retrieves a supplier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error)

	// GetAll retrieves suppliers ordered by reliability score descending,
	// optionally filtered by supplier type. An empty type means no filter.
	GetAll(ctx context.Context, kind string) ([]*supplier.Supplier, error)
}
