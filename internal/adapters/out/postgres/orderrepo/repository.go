package orderrepo

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Updates use optimistic locking on the aggregate version: a write against a
// stale version affects zero rows and surfaces as a VersionIsInvalidError,
// serializing concurrent writers per order without database locks.
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

// Add saves a new order and its creation history to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.insertHistory(ctx, dto.History); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
// The order row and any new history rows are written together, so a status
// change can never be observed without its history entry. The write is
// version-checked; a concurrent writer that got there first causes a
// VersionIsInvalidError and the caller retries from a fresh load.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := dto.Version
	dto.Version = expected + 1

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError(aggregate.ID().String())
	}

	if err := r.insertHistory(ctx, dto.History); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its full status history.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	if err := r.loadHistory(ctx, &dto); err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAllLive retrieves all orders outside the terminal statuses, plus
// terminal orders whose equipment loan is still out. A completed or
// cancelled order keeps its loan clock running until the equipment comes
// back or the penalty is charged, so the sweep must keep seeing it.
func (r *GormOrderRepository) GetAllLive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status NOT IN ? OR equipment_status IN ?",
			[]int{
				int(order.Completed), int(order.Cancelled), int(order.LateEquipment),
			},
			[]int{
				int(order.EquipmentDelivered), int(order.EquipmentLate),
			}).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		if err = r.loadHistory(ctx, &dto); err != nil {
			return nil, err
		}

		o, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// insertHistory writes history rows, skipping those already present.
// The (order_id, seq) key makes the insert idempotent, so re-persisting an
// aggregate never duplicates its trail.
func (r *GormOrderRepository) insertHistory(ctx context.Context, rows []StatusHistoryDTO) error {
	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *GormOrderRepository) loadHistory(ctx context.Context, dto *OrderDTO) error {
	return r.db.WithContext(ctx).
		Order("seq").
		Find(&dto.History, "order_id = ?", dto.ID).Error
}
