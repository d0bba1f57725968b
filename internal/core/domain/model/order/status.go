package order

import (
	"errors"
	"fmt"

	"catering/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a workflow transition is requested
// on an order whose current status does not allow it, most commonly an
// advance or cancel on a terminal status.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the fulfillment stage of a catering order.
// It implements a state machine with a single canonical forward path:
//
//	pending -> confirmed -> initiated -> prep_ingredients -> assembly
//	        -> cooking -> packaging -> delivery -> delivered -> completed
//
// The cooking step is skipped for orders whose menu requires no cooking.
// Two terminal side exits are reachable from any non-terminal state:
// cancelled (explicit staff or customer action) and late_equipment
// (forced by the equipment loan lifecycle).
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Confirmed indicates the order has been accepted by staff.
	Confirmed

	// Initiated indicates production work on the order has started.
	Initiated

	// PrepIngredients indicates ingredients are being prepared.
	PrepIngredients

	// Assembly indicates dishes are being assembled.
	Assembly

	// Cooking indicates dishes are being cooked.
	// Skipped entirely when the menu requires no cooking.
	Cooking

	// Packaging indicates the order is being packaged for transport.
	Packaging

	// Delivery indicates the order is on its way to the customer.
	Delivery

	// Delivered indicates the order has reached the customer.
	// Entering this status starts the equipment loan clock when
	// serving equipment was lent with the order.
	Delivered

	// Completed indicates the order is fully settled. Terminal.
	Completed

	// Cancelled indicates the order was cancelled by staff or customer.
	// Reachable from any non-terminal status. Terminal.
	Cancelled

	// LateEquipment indicates loaned equipment was never returned and the
	// contractual penalty was charged. Forced by the equipment lifecycle
	// regardless of the current workflow stage. Terminal.
	LateEquipment
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "unknown",
		Pending:         "pending",
		Confirmed:       "confirmed",
		Initiated:       "initiated",
		PrepIngredients: "prep_ingredients",
		Assembly:        "assembly",
		Cooking:         "cooking",
		Packaging:       "packaging",
		Delivery:        "delivery",
		Delivered:       "delivered",
		Completed:       "completed",
		Cancelled:       "cancelled",
		LateEquipment:   "late_equipment",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "pending",
		Confirmed:       "confirmed",
		Initiated:       "initiated",
		PrepIngredients: "prep_ingredients",
		Assembly:        "assembly",
		Cooking:         "cooking",
		Packaging:       "packaging",
		Delivery:        "delivery",
		Delivered:       "delivered",
		Completed:       "completed",
		Cancelled:       "cancelled",
		LateEquipment:   "late_equipment",
	}
}

// WorkflowStatuses returns the non-terminal statuses in canonical forward
// order. These are the fixed kanban columns of the fulfillment board.
func WorkflowStatuses() []Status {
	return []Status{
		Pending,
		Confirmed,
		Initiated,
		PrepIngredients,
		Assembly,
		Cooking,
		Packaging,
		Delivery,
		Delivered,
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire label of the status, e.g. "prep_ingredients".
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == LateEquipment
}

// Next computes the successor status along the canonical workflow.
//
// The only non-linear rule is the cooking skip: advancing from Assembly
// with cookingRequired false lands on Packaging directly.
//
// Returns ErrInvalidTransition (wrapped) when called on a terminal status
// or on an invalid value.
func (s Status) Next(cookingRequired bool) (Status, error) {
	switch s {
	case Pending:
		return Confirmed, nil
	case Confirmed:
		return Initiated, nil
	case Initiated:
		return PrepIngredients, nil
	case PrepIngredients:
		return Assembly, nil
	case Assembly:
		if !cookingRequired {
			return Packaging, nil
		}
		return Cooking, nil
	case Cooking:
		return Packaging, nil
	case Packaging:
		return Delivery, nil
	case Delivery:
		return Delivered, nil
	case Delivered:
		return Completed, nil
	case Completed, Cancelled, LateEquipment:
		return Unknown, fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, s)
	default:
		return Unknown, fmt.Errorf("%w: %s is not a valid status", ErrInvalidTransition, s)
	}
}

// CancelTransition computes the transition to Cancelled.
// Allowed from any non-terminal status.
func (s Status) CancelTransition() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, s)
	}
	return Cancelled, nil
}
