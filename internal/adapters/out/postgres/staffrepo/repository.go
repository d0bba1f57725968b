package staffrepo

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/staff"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements StaffRepository using GORM.
type GormStaffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB, tracker aggregateTracker) *GormStaffRepository {
	return &GormStaffRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new staff member to the database.
func (r *GormStaffRepository) Add(ctx context.Context, member *staff.Staff) error {
	if err := member.Validate(); err != nil {
		return err
	}

	dto := fromDomain(member)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(member.ID(), member)
	return nil
}

// Get retrieves a staff member by ID.
func (r *GormStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
