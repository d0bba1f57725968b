// Package staff provides the Staff aggregate: the kitchen and delivery
// employees who act on orders. The fulfillment core only needs their
// identity and display name; scheduling, roles, and time-off live in the
// back office outside this service.
package staff

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
)

// ErrStaffIsNotConstructed is returned when a Staff instance was not created
// through the NewStaff or RestoreStaff factory methods.
var ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff constructor")

// ErrNameIsRequired is returned when a staff member is created without a name.
var ErrNameIsRequired = errors.New("staff name is required")

// Staff represents an employee who takes transitions on orders. Orders
// reference staff by ID: the member who first moves an order out of pending
// becomes its assignee.
type Staff struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewStaff creates a new staff member with validation.
func NewStaff(id kernel.UUID, name string) (*Staff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Staff{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreStaff reconstructs a staff member from persistence.
func RestoreStaff(id kernel.UUID, name string) (*Staff, error) {
	return NewStaff(id, name)
}

// Validate ensures the Staff instance was properly constructed.
func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}
	return nil
}

// IsEqual compares two staff members by their unique identifiers.
func (s *Staff) IsEqual(other *Staff) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the staff member's unique identifier.
func (s *Staff) ID() kernel.UUID {
	return s.id
}

// Name returns the staff member's display name.
func (s *Staff) Name() string {
	return s.name
}
