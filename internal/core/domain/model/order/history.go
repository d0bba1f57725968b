package order

import (
	"time"

	"catering/internal/core/domain/model/kernel"
)

// StatusHistoryEntry records one workflow transition of an order, including
// the creation entry. The history is append-only: entries are never edited
// or removed, and their timestamps never decrease.
type StatusHistoryEntry struct {
	status Status
	at     time.Time
	actor  *kernel.UUID
	notes  string
}

// NewStatusHistoryEntry creates a history entry for a transition taken now.
// actor is nil for system-initiated transitions (creation, sweep).
func NewStatusHistoryEntry(status Status, at time.Time, actor *kernel.UUID, notes string) StatusHistoryEntry {
	return StatusHistoryEntry{
		status: status,
		at:     at,
		actor:  actor,
		notes:  notes,
	}
}

// RestoreStatusHistoryEntry reconstructs a history entry from persistence.
func RestoreStatusHistoryEntry(
	status Status,
	at time.Time,
	actor *kernel.UUID,
	notes string,
) (StatusHistoryEntry, error) {
	if err := status.Validate(); err != nil {
		return StatusHistoryEntry{}, err
	}

	return StatusHistoryEntry{
		status: status,
		at:     at,
		actor:  actor,
		notes:  notes,
	}, nil
}

// Status returns the status the order entered with this transition.
func (e StatusHistoryEntry) Status() Status {
	return e.status
}

// At returns when the transition was taken.
func (e StatusHistoryEntry) At() time.Time {
	return e.at
}

// Actor returns who took the transition, nil for system transitions.
func (e StatusHistoryEntry) Actor() *kernel.UUID {
	return e.actor
}

// Notes returns the free-text annotation of the transition, e.g. a
// cancellation reason or the cooking-skip marker. Empty for most entries.
func (e StatusHistoryEntry) Notes() string {
	return e.notes
}
