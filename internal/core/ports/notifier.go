package ports

import (
	"context"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
)

// OrderChange describes a single order status change to interested
// consumers (customer notifications, kitchen displays).
type OrderChange struct {
	OrderID  kernel.UUID
	Status   order.Status
	Priority order.Priority
	At       time.Time
	Notes    string
}

// Notifier publishes order changes to the outside world.
//
// Publishing is best effort: command handlers commit the transaction first
// and log a failed publish instead of failing the request.
type Notifier interface {
	PublishOrderChange(ctx context.Context, change OrderChange) error
}
