// Package queries contains read-only operations over the order store.
// Query handlers bypass the aggregate layer and read with direct SQL for
// performance, per the CQRS split; results are plain read models.
package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrGetKanbanBoardQueryIsNotConstructed = errors.New(
	"GetKanbanBoardQuery must be created via NewGetKanbanBoardQuery constructor",
)

// GetKanbanBoardQuery retrieves the operational kanban board: all live
// orders grouped into workflow columns, most urgent first.
//
// Example:
//
//	query, _ := NewGetKanbanBoardQuery(nil) // whole board
//	handler := NewGetKanbanBoardQueryHandler(db, projector)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get board: %w", err)
//	}
//	for _, column := range board.Columns {
//	    fmt.Printf("%s: %d orders\n", column.Status, column.Count())
//	}
type GetKanbanBoardQuery struct {
	assignedTo *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetKanbanBoardQuery creates a query for the kanban board.
// Pass a staff identifier to restrict the board to that member's
// assignments, or nil for the whole board.
func NewGetKanbanBoardQuery(assignedTo *kernel.UUID) (GetKanbanBoardQuery, error) {
	if assignedTo != nil {
		if err := assignedTo.Validate(); err != nil {
			return GetKanbanBoardQuery{}, err
		}
	}

	return GetKanbanBoardQuery{
		assignedTo: assignedTo,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetKanbanBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetKanbanBoardQueryIsNotConstructed)
}

// AssignedTo returns the staff filter, or nil for the whole board.
func (q GetKanbanBoardQuery) AssignedTo() *kernel.UUID {
	return q.assignedTo
}
