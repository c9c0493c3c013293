package website

import (
	"context"

	"exportpro/internal/core/domain/model/order"
	"exportpro/internal/core/ports"
)

var _ ports.WebsiteGateway = NoopGateway{}

// NoopGateway is used when no broker is configured. Storefront sync is
// silently skipped.
type NoopGateway struct{}

func (NoopGateway) NotifyOrderCreated(ctx context.Context, aggregate *order.Order) error {
	return nil
}

func (NoopGateway) NotifyInventoryChange(ctx context.Context, aggregate *order.Order) error {
	return nil
}
