package services

import (
	"sort"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
)

// KanbanItem is the read-model row the board is built from: the slice of an
// order the operational dashboard needs. Items are built either from domain
// aggregates (NewKanbanItem) or straight from query rows.
type KanbanItem struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	Status          order.Status
	Priority        order.Priority
	DeliveryAt      time.Time
	Headcount       int
	Total           kernel.Money
	EquipmentStatus order.EquipmentStatus
	AssignedStaffID *kernel.UUID
}

// NewKanbanItem projects an order aggregate onto a board item.
func NewKanbanItem(o *order.Order) KanbanItem {
	return KanbanItem{
		ID:              o.ID(),
		CustomerID:      o.CustomerID(),
		Status:          o.Status(),
		Priority:        o.Priority(),
		DeliveryAt:      o.DeliveryAt(),
		Headcount:       o.Headcount(),
		Total:           o.Pricing().Total(),
		EquipmentStatus: o.Equipment().Status(),
		AssignedStaffID: o.AssignedStaff(),
	}
}

// KanbanColumn is one board column: a workflow status and the live orders
// currently in it, most urgent first.
type KanbanColumn struct {
	Status order.Status
	Items  []KanbanItem
}

// Count returns the number of orders in the column.
func (c KanbanColumn) Count() int {
	return len(c.Items)
}

// KanbanBoard is the projected operational board: one fixed column per
// workflow status, in canonical order, empty columns included.
type KanbanBoard struct {
	Columns []KanbanColumn
}

// KanbanProjector derives the operational board from live orders.
//
// The projection is read-only and deterministic: grouping by current status
// into fixed columns, ordering within a column by priority tier (urgent
// first) with ascending delivery time as the tie-break, and an optional
// filter to a single staff member's assignments.
type KanbanProjector struct{}

// NewKanbanProjector creates a kanban projector.
func NewKanbanProjector() KanbanProjector {
	return KanbanProjector{}
}

// Project builds the board from the given items.
//
// Items in terminal statuses are dropped. When assignedTo is not nil, only
// items assigned to that staff member are kept ("my orders").
func (KanbanProjector) Project(items []KanbanItem, assignedTo *kernel.UUID) KanbanBoard {
	grouped := make(map[order.Status][]KanbanItem)
	for _, item := range items {
		if item.Status.IsTerminal() {
			continue
		}
		if assignedTo != nil {
			if item.AssignedStaffID == nil || !item.AssignedStaffID.IsEqual(*assignedTo) {
				continue
			}
		}
		grouped[item.Status] = append(grouped[item.Status], item)
	}

	statuses := order.WorkflowStatuses()
	columns := make([]KanbanColumn, 0, len(statuses))
	for _, status := range statuses {
		column := KanbanColumn{Status: status, Items: grouped[status]}
		sort.SliceStable(column.Items, func(i, j int) bool {
			if column.Items[i].Priority != column.Items[j].Priority {
				return column.Items[i].Priority < column.Items[j].Priority
			}
			return column.Items[i].DeliveryAt.Before(column.Items[j].DeliveryAt)
		})
		columns = append(columns, column)
	}

	return KanbanBoard{Columns: columns}
}
