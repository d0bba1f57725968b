// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and staff assignment. Monetary components
// are stored unrounded; only the total carries the rounded customer-facing
// amount.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	MenuID          uuid.UUID `gorm:"type:uuid"`
	Headcount       int
	Street          string
	City            string
	DeliveryAt      time.Time `gorm:"index"`
	SpecialRequests string
	CookingRequired bool
	Pricing         PricingDTO   `gorm:"embedded;embeddedPrefix:price_"`
	Status          int          `gorm:"index"`
	Priority        int
	AssignedStaffID *uuid.UUID   `gorm:"type:uuid;index"`
	Equipment       EquipmentDTO `gorm:"embedded;embeddedPrefix:equipment_"`
	Version         int

	// History rows are written and read explicitly by the repository so
	// they always share the aggregate's transaction.
	History []StatusHistoryDTO `gorm:"-"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// PricingDTO represents the embedded price breakdown within the order table.
type PricingDTO struct {
	Subtotal    decimal.Decimal `gorm:"type:numeric"`
	Discount    decimal.Decimal `gorm:"type:numeric"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric"`
	Total       decimal.Decimal `gorm:"type:numeric"`
}

// EquipmentDTO represents the embedded equipment loan within the order table.
type EquipmentDTO struct {
	Status      int
	DeliveredAt *time.Time
	DueAt       *time.Time
	ReturnedAt  *time.Time
	Penalty     decimal.Decimal `gorm:"type:numeric"`
}

// StatusHistoryDTO represents one row of an order's status trail.
// Rows are keyed by order and sequence number; the sequence preserves the
// exact transition order even when timestamps collide.
type StatusHistoryDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq     int       `gorm:"primaryKey"`
	Status  int
	At      time.Time
	ActorID *uuid.UUID `gorm:"type:uuid"`
	Notes   string
}

// TableName specifies the database table name for history entries.
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var staffID *uuid.UUID
	if id := aggregate.AssignedStaff(); id != nil {
		raw := id.Bytes()
		staffID = &raw
	}

	equipment := aggregate.Equipment()
	history := aggregate.History()
	historyDTOs := make([]StatusHistoryDTO, 0, len(history))
	for i, entry := range history {
		var actorID *uuid.UUID
		if actor := entry.Actor(); actor != nil {
			raw := actor.Bytes()
			actorID = &raw
		}

		historyDTOs = append(historyDTOs, StatusHistoryDTO{
			OrderID: aggregate.ID().Bytes(),
			Seq:     i + 1,
			Status:  int(entry.Status()),
			At:      entry.At(),
			ActorID: actorID,
			Notes:   entry.Notes(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		MenuID:          aggregate.MenuID().Bytes(),
		Headcount:       aggregate.Headcount(),
		Street:          aggregate.Address().Street(),
		City:            aggregate.Address().City(),
		DeliveryAt:      aggregate.DeliveryAt(),
		SpecialRequests: aggregate.SpecialRequests(),
		CookingRequired: aggregate.CookingRequired(),
		Pricing: PricingDTO{
			Subtotal:    aggregate.Pricing().Subtotal().Decimal(),
			Discount:    aggregate.Pricing().Discount().Decimal(),
			DeliveryFee: aggregate.Pricing().DeliveryFee().Decimal(),
			Total:       aggregate.Pricing().Total().Decimal(),
		},
		Status:          int(aggregate.Status()),
		Priority:        int(aggregate.Priority()),
		AssignedStaffID: staffID,
		Equipment: EquipmentDTO{
			Status:      int(equipment.Status()),
			DeliveredAt: equipment.DeliveredAt(),
			DueAt:       equipment.DueAt(),
			ReturnedAt:  equipment.ReturnedAt(),
			Penalty:     equipment.Penalty().Decimal(),
		},
		Version: aggregate.Version(),
		History: historyDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the equipment loan and
// status history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return nil, err
	}

	var staffID *kernel.UUID
	if dto.AssignedStaffID != nil {
		sID, staffErr := kernel.UUIDFromBytes((*dto.AssignedStaffID)[:])
		if staffErr != nil {
			return nil, staffErr
		}
		staffID = &sID
	}

	address, err := order.NewAddress(dto.Street, dto.City)
	if err != nil {
		return nil, err
	}

	pricing, err := order.NewPricing(
		kernel.NewMoney(dto.Pricing.Subtotal),
		kernel.NewMoney(dto.Pricing.Discount),
		kernel.NewMoney(dto.Pricing.DeliveryFee),
		kernel.NewMoney(dto.Pricing.Total),
	)
	if err != nil {
		return nil, err
	}

	equipment, err := order.RestoreEquipmentLoan(
		order.EquipmentStatus(dto.Equipment.Status),
		dto.Equipment.DeliveredAt,
		dto.Equipment.DueAt,
		dto.Equipment.ReturnedAt,
		kernel.NewMoney(dto.Equipment.Penalty),
	)
	if err != nil {
		return nil, err
	}

	history := make([]order.StatusHistoryEntry, 0, len(dto.History))
	for _, row := range dto.History {
		var actor *kernel.UUID
		if row.ActorID != nil {
			aID, actorErr := kernel.UUIDFromBytes((*row.ActorID)[:])
			if actorErr != nil {
				return nil, actorErr
			}
			actor = &aID
		}

		entry, entryErr := order.RestoreStatusHistoryEntry(
			order.Status(row.Status), row.At, actor, row.Notes,
		)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(
		id, customerID, menuID,
		dto.Headcount, address, dto.DeliveryAt,
		dto.SpecialRequests, dto.CookingRequired,
		pricing,
		order.Status(dto.Status), order.Priority(dto.Priority),
		staffID, equipment, history,
		dto.Version,
	)
}
