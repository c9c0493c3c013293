package ports

import (
	"context"

	"exportpro/internal/core/domain/model/order"
)

// WebsiteGateway publishes order lifecycle events to the public storefront.
// Failures are reported to the caller but never abort the originating
// operation.
type WebsiteGateway interface {
	// NotifyOrderCreated announces a freshly persisted order.
	NotifyOrderCreated(ctx context.Context, aggregate *order.Order) error

	// NotifyInventoryChange announces inventory withdrawals after an order
	// completes.
	NotifyInventoryChange(ctx context.Context, aggregate *order.Order) error
}
