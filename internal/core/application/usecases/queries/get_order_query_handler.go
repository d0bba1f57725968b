package queries

import (
	"context"
	"database/sql"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order and its status history with
// direct SQL.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the order does not exist. History
// rows come back in insertion order, oldest first.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.History, err = h.readHistory(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse
	var id, customerID, menuID uuid.UUID
	var deliveryAt time.Time
	var status, priority, equipmentStatus int
	var subtotal, discount, deliveryFee, total, penalty string
	var staffID uuid.NullUUID
	var dueAt sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			menu_id,
			headcount,
			street,
			city,
			delivery_at,
			special_requests,
			cooking_required,
			status,
			priority,
			assigned_staff_id,
			price_subtotal,
			price_discount,
			price_delivery_fee,
			price_total,
			equipment_status,
			equipment_due_at,
			equipment_penalty
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&id,
		&customerID,
		&menuID,
		&resp.Headcount,
		&resp.Street,
		&resp.City,
		&deliveryAt,
		&resp.SpecialRequests,
		&resp.CookingRequired,
		&status,
		&priority,
		&staffID,
		&subtotal,
		&discount,
		&deliveryFee,
		&total,
		&equipmentStatus,
		&dueAt,
		&penalty,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", orderID.String())
		}
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.MenuID, err = kernel.UUIDFromBytes(menuID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if staffID.Valid {
		assigned, idErr := kernel.UUIDFromBytes(staffID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.AssignedStaffID = &assigned
	}

	resp.DeliveryAt = deliveryAt
	resp.Status = order.Status(status)
	if err = resp.Status.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Priority = order.Priority(priority)
	if err = resp.Priority.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.Subtotal, err = kernel.MoneyFromString(subtotal); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Discount, err = kernel.MoneyFromString(discount); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.DeliveryFee, err = kernel.MoneyFromString(deliveryFee); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Total, err = kernel.MoneyFromString(total); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.EquipmentPenalty, err = kernel.MoneyFromString(penalty); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.EquipmentStatus = order.EquipmentStatus(equipmentStatus)
	if dueAt.Valid {
		due := dueAt.Time
		resp.EquipmentDueAt = &due
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryHistoryEntry, error) {
	entries := make([]GetOrderQueryHistoryEntry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			at,
			actor_id,
			notes
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY seq
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOrderQueryHistoryEntry
		var status int
		var actorID uuid.NullUUID

		if err = rows.Scan(&status, &entry.At, &actorID, &entry.Notes); err != nil {
			return nil, err
		}

		entry.Status = order.Status(status)
		if err = entry.Status.Validate(); err != nil {
			return nil, err
		}

		if actorID.Valid {
			actor, idErr := kernel.UUIDFromBytes(actorID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			entry.Actor = &actor
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
