package intelrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"exportpro/internal/core/domain/model/intel"
)

// GormIntelRepository implements IntelRepository using GORM.
type GormIntelRepository struct {
	db *gorm.DB
}

// NewGormIntelRepository creates a new GORM intelligence repository.
func NewGormIntelRepository(db *gorm.DB) *GormIntelRepository {
	return &GormIntelRepository{db: db}
}

// Latest returns the most recent record for a product, or nil when the
// product has never been observed.
func (r *GormIntelRepository) Latest(ctx context.Context, productID string) (*intel.Record, error) {
	var dto IntelDTO
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("observed_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// LatestFor returns the most recent record per product for the given IDs.
func (r *GormIntelRepository) LatestFor(ctx context.Context, productIDs []string) (map[string]*intel.Record, error) {
	records := make(map[string]*intel.Record, len(productIDs))
	for _, productID := range productIDs {
		record, err := r.Latest(ctx, productID)
		if err != nil {
			return nil, err
		}
		if record != nil {
			records[productID] = record
		}
	}
	return records, nil
}

// Arbitrage returns records carrying an arbitrage note observed since the
// given instant, newest first.
func (r *GormIntelRepository) Arbitrage(ctx context.Context, since time.Time) ([]*intel.Record, error) {
	var dtos []IntelDTO
	err := r.db.WithContext(ctx).
		Where("arbitrage <> '' AND observed_at >= ?", since).
		Order("observed_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*intel.Record, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, toDomain(dto))
	}
	return records, nil
}

// Add appends an observation. Exposed for the collection pipeline's writer
// and for seeding test fixtures.
func (r *GormIntelRepository) Add(ctx context.Context, record *intel.Record) error {
	dto := fromRecord(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}
