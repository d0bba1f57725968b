// Package ports defines the contracts between the catering core and
// infrastructure: repositories, the unit of work, and outbound collaborators
// such as geocoding and notification. Adapters implement these interfaces,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Updates are version-checked: a stale aggregate is rejected with a
	// version error instead of overwriting a concurrent change.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its full status history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllLive retrieves all orders that are not in a terminal status,
	// together with terminal orders whose equipment loan is still out.
	// Used by the background sweep to refresh priorities and to flag
	// overdue equipment loans, which can fire after the workflow has
	// already finished.
	GetAllLive(ctx context.Context) ([]*order.Order, error)
}
