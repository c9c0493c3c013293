package ports

import (
	"context"
	"time"

	"exportpro/internal/core/domain/model/intel"
)

// IntelRepository defines the read contract for market intelligence records.
// Records are written by an external collection pipeline; this side only
// consumes the freshest snapshot per product.
type IntelRepository interface {
	// Latest returns the most recent record for a product, or nil when the
	// product has never been observed.
	Latest(ctx context.Context, productID string) (*intel.Record, error)

	// LatestFor returns the most recent record per product for the given
	// IDs. Products without records are absent from the map.
	LatestFor(ctx context.Context, productIDs []string) (map[string]*intel.Record, error)

	// Arbitrage returns records carrying an arbitrage note observed since
	// the given instant, newest first.
	Arbitrage(ctx context.Context, since time.Time) ([]*intel.Record, error)
}
