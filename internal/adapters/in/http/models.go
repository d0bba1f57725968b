package http

import (
	"time"

	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/services"
)

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is returned when a resource was created.
type Created struct {
	ID string `json:"id"`
}

// NewOrder is the request body for placing a catering order. Monetary
// amounts travel as decimal strings to avoid float rounding on the wire.
type NewOrder struct {
	CustomerID      string    `json:"customer_id"`
	MenuID          string    `json:"menu_id"`
	Headcount       int       `json:"headcount"`
	MinPersons      int       `json:"min_persons"`
	PricePerPerson  string    `json:"price_per_person"`
	Street          string    `json:"street"`
	City            string    `json:"city"`
	DeliveryAt      time.Time `json:"delivery_at"`
	SpecialRequests string    `json:"special_requests"`
	CookingRequired bool      `json:"cooking_required"`
}

// OrderAction is the request body for advance and equipment-return actions.
type OrderAction struct {
	ActorID string `json:"actor_id"`
}

// CancelOrder is the request body for cancelling an order.
type CancelOrder struct {
	ActorID string `json:"actor_id"`
	Reason  string `json:"reason"`
}

// NewStaff is the request body for registering a staff member.
type NewStaff struct {
	Name string `json:"name"`
}

// Order is the full read model of one order.
type Order struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	MenuID          string    `json:"menu_id"`
	Headcount       int       `json:"headcount"`
	Street          string    `json:"street"`
	City            string    `json:"city"`
	DeliveryAt      time.Time `json:"delivery_at"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	CookingRequired bool      `json:"cooking_required"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	AssignedStaffID *string   `json:"assigned_staff_id,omitempty"`

	Subtotal    string `json:"subtotal"`
	Discount    string `json:"discount"`
	DeliveryFee string `json:"delivery_fee"`
	Total       string `json:"total"`

	EquipmentStatus  string         `json:"equipment_status"`
	EquipmentDueAt   *time.Time     `json:"equipment_due_at,omitempty"`
	EquipmentPenalty string         `json:"equipment_penalty"`
	History          []HistoryEntry `json:"history"`
}

// HistoryEntry is one row of an order's status trail.
type HistoryEntry struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
	Actor  *string   `json:"actor,omitempty"`
	Notes  string    `json:"notes,omitempty"`
}

// Board is the fulfillment kanban board.
type Board struct {
	Columns []BoardColumn `json:"columns"`
}

// BoardColumn is one fixed workflow column of the board.
type BoardColumn struct {
	Status string      `json:"status"`
	Count  int         `json:"count"`
	Items  []BoardItem `json:"items"`
}

// BoardItem is one order card on the board.
type BoardItem struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	Priority        string    `json:"priority"`
	DeliveryAt      time.Time `json:"delivery_at"`
	Headcount       int       `json:"headcount"`
	Total           string    `json:"total"`
	EquipmentStatus string    `json:"equipment_status"`
	AssignedStaffID *string   `json:"assigned_staff_id,omitempty"`
}

func orderFromQueryResponse(resp queries.GetOrderQueryResponse) Order {
	result := Order{
		ID:              resp.ID.String(),
		CustomerID:      resp.CustomerID.String(),
		MenuID:          resp.MenuID.String(),
		Headcount:       resp.Headcount,
		Street:          resp.Street,
		City:            resp.City,
		DeliveryAt:      resp.DeliveryAt,
		SpecialRequests: resp.SpecialRequests,
		CookingRequired: resp.CookingRequired,
		Status:          resp.Status.String(),
		Priority:        resp.Priority.String(),

		Subtotal:    resp.Subtotal.String(),
		Discount:    resp.Discount.String(),
		DeliveryFee: resp.DeliveryFee.String(),
		Total:       resp.Total.String(),

		EquipmentStatus:  resp.EquipmentStatus.String(),
		EquipmentDueAt:   resp.EquipmentDueAt,
		EquipmentPenalty: resp.EquipmentPenalty.String(),
		History:          make([]HistoryEntry, len(resp.History)),
	}

	if resp.AssignedStaffID != nil {
		staffID := resp.AssignedStaffID.String()
		result.AssignedStaffID = &staffID
	}

	for i, entry := range resp.History {
		result.History[i] = HistoryEntry{
			Status: entry.Status.String(),
			At:     entry.At,
			Notes:  entry.Notes,
		}
		if entry.Actor != nil {
			actor := entry.Actor.String()
			result.History[i].Actor = &actor
		}
	}

	return result
}

func boardFromProjection(board services.KanbanBoard) Board {
	result := Board{
		Columns: make([]BoardColumn, len(board.Columns)),
	}

	for i, column := range board.Columns {
		items := make([]BoardItem, len(column.Items))
		for j, item := range column.Items {
			items[j] = BoardItem{
				ID:              item.ID.String(),
				CustomerID:      item.CustomerID.String(),
				Priority:        item.Priority.String(),
				DeliveryAt:      item.DeliveryAt,
				Headcount:       item.Headcount,
				Total:           item.Total.String(),
				EquipmentStatus: item.EquipmentStatus.String(),
			}
			if item.AssignedStaffID != nil {
				staffID := item.AssignedStaffID.String()
				items[j].AssignedStaffID = &staffID
			}
		}

		result.Columns[i] = BoardColumn{
			Status: column.Status.String(),
			Count:  column.Count(),
			Items:  items,
		}
	}

	return result
}
