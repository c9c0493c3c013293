package ports

import (
	"context"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage. Fails when another
	// order already holds the same order number.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves orders newest first, optionally filtered by their
	// current status. An empty status means no filter.
	GetAll(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllInStatus retrieves every order whose current status matches.
	// Used by the documentation sweep to find orders awaiting documents.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// LatestNumber returns the highest order number on record, or nil when
	// no parseable number exists yet.
	LatestNumber(ctx context.Context) (*order.Number, error)

	// AppendStatus records a status change on an order without rewriting
	// the rest of the aggregate.
	AppendStatus(ctx context.Context, id kernel.UUID, change order.StatusChange) error
}
