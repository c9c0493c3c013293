package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/order"
	"exportpro/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its lines and history. The unique index on the
// order number rejects concurrent intake that raced to the same number.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its lines and history.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves orders newest first. A non-empty status filters on the
// current status.
func (r *GormOrderRepository) GetAll(ctx context.Context, status order.Status) ([]*order.Order, error) {
	db := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("created_at DESC")
	if status != "" {
		db = db.Where("status = ?", string(status))
	}

	var dtos []OrderDTO
	if err := db.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllInStatus retrieves every order whose current status matches.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return r.GetAll(ctx, status)
}

// LatestNumber returns the number of the most recently created order, or nil
// when there are no orders or the latest number does not parse.
func (r *GormOrderRepository) LatestNumber(ctx context.Context) (*order.Number, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Select("order_number").
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	number, err := order.ParseNumber(dto.OrderNumber)
	if err != nil {
		// numbering restarts when the latest number is unreadable
		return nil, nil
	}
	return &number, nil
}

// AppendStatus records a status change without rewriting the aggregate.
func (r *GormOrderRepository) AppendStatus(ctx context.Context, id kernel.UUID, change order.StatusChange) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := change.Status().Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var position int64
	if err := db.Model(&OrderStatusDTO{}).Where("order_id = ?", id.Bytes()).Count(&position).Error; err != nil {
		return err
	}

	entry := OrderStatusDTO{
		OrderID:    id.Bytes(),
		Position:   int(position),
		Status:     string(change.Status()),
		Note:       change.Note(),
		OccurredAt: change.Timestamp(),
	}
	if err := db.Create(&entry).Error; err != nil {
		return err
	}

	result := db.Model(&OrderDTO{}).Where("id = ?", id.Bytes()).
		Update("status", string(change.Status()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
