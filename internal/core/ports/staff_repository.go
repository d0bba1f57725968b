package ports

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for staff members.
type StaffRepository interface {
	// Add persists a new staff member to storage.
	Add(ctx context.Context, member *staff.Staff) error

	// Get retrieves a staff member by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)
}
