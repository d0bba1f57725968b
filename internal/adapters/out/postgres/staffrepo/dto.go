// Package staffrepo provides data transfer objects and mapping functions for
// staff persistence.
package staffrepo

import (
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffDTO represents the database structure for persisting staff members.
type StaffDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for staff entities.
func (StaffDTO) TableName() string {
	return "staff"
}

// fromDomain converts a staff domain entity to its database representation.
func fromDomain(member *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:   member.ID().Bytes(),
		Name: member.Name(),
	}
}

// toDomain converts a database DTO to a staff domain entity.
func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaff(id, dto.Name)
}
