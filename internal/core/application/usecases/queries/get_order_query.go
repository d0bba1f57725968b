package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its pricing breakdown, equipment
// loan, and full status history.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full read model of one order.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	MenuID          kernel.UUID
	Headcount       int
	Street          string
	City            string
	DeliveryAt      time.Time
	SpecialRequests string
	CookingRequired bool
	Status          order.Status
	Priority        order.Priority
	AssignedStaffID *kernel.UUID

	Subtotal    kernel.Money
	Discount    kernel.Money
	DeliveryFee kernel.Money
	Total       kernel.Money

	EquipmentStatus  order.EquipmentStatus
	EquipmentDueAt   *time.Time
	EquipmentPenalty kernel.Money
	History          []GetOrderQueryHistoryEntry
}

// GetOrderQueryHistoryEntry is one row of the order's status trail.
type GetOrderQueryHistoryEntry struct {
	Status order.Status
	At     time.Time
	Actor  *kernel.UUID
	Notes  string
}
