package queries

import (
	"context"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetKanbanBoardQueryHandler reads live orders with direct SQL and projects
// them through the kanban projector. Terminal orders never reach the board.
type GetKanbanBoardQueryHandler struct {
	db        *gorm.DB
	projector services.KanbanProjector
}

// NewGetKanbanBoardQueryHandler creates a handler for kanban board queries.
// Requires a GORM database connection for query execution.
func NewGetKanbanBoardQueryHandler(
	db *gorm.DB,
	projector services.KanbanProjector,
) GetKanbanBoardQueryHandler {
	return GetKanbanBoardQueryHandler{db: db, projector: projector}
}

// Handle executes the query and returns the projected board.
// Orders already arrive filtered to non-terminal statuses; sorting and
// grouping happen in the projector so the ordering policy lives in one
// place.
func (h GetKanbanBoardQueryHandler) Handle(
	ctx context.Context,
	query GetKanbanBoardQuery,
) (services.KanbanBoard, error) {
	if err := query.Validate(); err != nil {
		return services.KanbanBoard{}, err
	}

	items := make([]services.KanbanItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			priority,
			delivery_at,
			headcount,
			price_total,
			equipment_status,
			assigned_staff_id
		FROM orders
		WHERE status NOT IN (?, ?, ?)
		ORDER BY id
	`, order.Completed, order.Cancelled, order.LateEquipment).Rows()
	if err != nil {
		return services.KanbanBoard{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item services.KanbanItem
		var id, customerID uuid.UUID
		var status, priority int
		var deliveryAt time.Time
		var total string
		var equipmentStatus int
		var staffID uuid.NullUUID

		err = rows.Scan(
			&id,
			&customerID,
			&status,
			&priority,
			&deliveryAt,
			&item.Headcount,
			&total,
			&equipmentStatus,
			&staffID,
		)
		if err != nil {
			return services.KanbanBoard{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return services.KanbanBoard{}, idErr
		}
		item.ID = orderID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return services.KanbanBoard{}, idErr
		}
		item.CustomerID = custID

		item.Status = order.Status(status)
		if err = item.Status.Validate(); err != nil {
			return services.KanbanBoard{}, err
		}

		item.Priority = order.Priority(priority)
		if err = item.Priority.Validate(); err != nil {
			return services.KanbanBoard{}, err
		}

		item.DeliveryAt = deliveryAt

		totalMoney, moneyErr := kernel.MoneyFromString(total)
		if moneyErr != nil {
			return services.KanbanBoard{}, moneyErr
		}
		item.Total = totalMoney

		item.EquipmentStatus = order.EquipmentStatus(equipmentStatus)

		if staffID.Valid {
			assigned, idErr := kernel.UUIDFromBytes(staffID.UUID[:])
			if idErr != nil {
				return services.KanbanBoard{}, idErr
			}
			item.AssignedStaffID = &assigned
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return services.KanbanBoard{}, err
	}

	return h.projector.Project(items, query.AssignedTo()), nil
}
