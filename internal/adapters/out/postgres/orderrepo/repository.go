package orderrepo

import (
	"context"
	"errors"

	"orderflow/internal/adapters/out/crypto"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	codec   *crypto.Codec
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker, codec *crypto.Codec) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
		codec:   codec,
	}
}

// Add saves a new order to the database at version 1.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate, r.codec)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderNo(), aggregate)
	return nil
}

// Update saves an updated order using compare-and-swap on the version the
// aggregate was loaded at. Zero affected rows means another writer committed
// in between (or the order is gone) and surfaces as VersionIsInvalidError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate, r.codec)
	if err != nil {
		return err
	}
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_no = ? AND version = ?", dto.OrderNo, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("order version", nil)
	}

	r.tracker.TrackAggregate(aggregate.OrderNo(), aggregate)
	return nil
}

// Get retrieves an order by its identifier.
func (r *GormOrderRepository) Get(ctx context.Context, orderNo kernel.UUID) (*order.Order, error) {
	if err := orderNo.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_no = ?", orderNo.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderNo.String())
		}
		return nil, err
	}

	return toDomain(dto, r.codec)
}

// Delete removes an order. The terminal-status guard is the caller's duty;
// the repository only reports whether a row was removed.
func (r *GormOrderRepository) Delete(ctx context.Context, orderNo kernel.UUID) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "order_no = ?", orderNo.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderNo.String())
	}

	return nil
}

// GetAllIncomplete retrieves every order that has not reached a terminal status.
func (r *GormOrderRepository) GetAllIncomplete(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status NOT IN ?", []int{int(order.Complete), int(order.Canceled)}).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetStalledPending retrieves Pending orders still missing a payment
// authorization, the sign that their workflow steps were lost.
func (r *GormOrderRepository) GetStalledPending(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND payment_authorization = ''", int(order.Pending)).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormOrderRepository) toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto, r.codec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
