package order

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// Equipment loan policy. These constants are the single source of truth for
// the loan rules; call sites must not restate the literals.
const (
	// EquipmentThreshold is the headcount at which serving equipment
	// (chafing dishes, trays) is lent with the order.
	EquipmentThreshold = 20

	// EquipmentReturnWindow is how long the customer has to return the
	// equipment after the order is delivered.
	EquipmentReturnWindow = 48 * time.Hour

	// EquipmentLateGrace is the extra time between the loan being flagged
	// late and the contractual penalty being charged. The loan turns late
	// at the due date and is charged one full day later.
	EquipmentLateGrace = 24 * time.Hour
)

// EquipmentPenalty returns the contractual penalty charged when loaned
// equipment is not returned in time.
func EquipmentPenalty() kernel.Money {
	return kernel.MoneyFromFloat(600)
}

var (
	// ErrEquipmentNotApplicable is returned when an equipment operation is
	// requested on an order that has no equipment loan.
	ErrEquipmentNotApplicable = errors.New("order has no equipment loan")

	// ErrEquipmentAlreadyCharged is returned when a return is attempted
	// after the penalty has been charged.
	ErrEquipmentAlreadyCharged = errors.New("equipment penalty already charged")

	// ErrEquipmentNotOnLoan is returned when a return is attempted while
	// the equipment has not been handed over yet or was already returned.
	ErrEquipmentNotOnLoan = errors.New("equipment is not on loan")
)

// EquipmentStatus represents the state of the equipment loan attached to an order.
//
// State transitions:
//
//	not_applicable                      (permanent, headcount below threshold)
//	pending -> delivered -> returned    (happy path)
//	           delivered -> late -> charged
//	                        late -> returned
//
// returned and charged are terminal for the loan.
type EquipmentStatus int

const (
	// EquipmentUnknown represents an invalid or undefined loan status.
	EquipmentUnknown EquipmentStatus = iota

	// EquipmentNotApplicable means the order never required equipment.
	EquipmentNotApplicable

	// EquipmentPending means equipment will be lent when the order is delivered.
	EquipmentPending

	// EquipmentDelivered means equipment is with the customer and the
	// return clock is running.
	EquipmentDelivered

	// EquipmentReturned means equipment came back in time. Terminal.
	EquipmentReturned

	// EquipmentLate means the return window has passed.
	EquipmentLate

	// EquipmentCharged means the penalty was charged. Terminal.
	EquipmentCharged
)

func getEquipmentStatusStrings() map[EquipmentStatus]string {
	return map[EquipmentStatus]string{
		EquipmentUnknown:       "unknown",
		EquipmentNotApplicable: "not_applicable",
		EquipmentPending:       "pending",
		EquipmentDelivered:     "delivered",
		EquipmentReturned:      "returned",
		EquipmentLate:          "late",
		EquipmentCharged:       "charged",
	}
}

// Validate checks if the EquipmentStatus value is one of the defined states.
func (s EquipmentStatus) Validate() error {
	if s < EquipmentNotApplicable || s > EquipmentCharged {
		return errs.NewValueIsInvalidErrorWithCause(
			"equipment status is invalid",
			fmt.Errorf("%d is not a valid equipment status", s),
		)
	}
	return nil
}

// String returns the wire label of the loan status, e.g. "not_applicable".
func (s EquipmentStatus) String() string {
	if str, ok := getEquipmentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// EquipmentLoan is the loan sub-record of an Order. It tracks whether serving
// equipment was lent with the order, when it was handed over, when it is due
// back, and the penalty charged when it never came back.
//
// The loan is mutated exclusively through the owning Order's transitions and
// the periodic overdue check; it carries no behavior of its own that call
// sites can reach directly.
type EquipmentLoan struct {
	status      EquipmentStatus
	deliveredAt *time.Time
	dueAt       *time.Time
	returnedAt  *time.Time
	penalty     kernel.Money
}

// NewEquipmentLoan creates the loan sub-record for a new order.
// Orders below the headcount threshold get a permanent not_applicable loan.
func NewEquipmentLoan(required bool) EquipmentLoan {
	if !required {
		return EquipmentLoan{status: EquipmentNotApplicable}
	}
	return EquipmentLoan{status: EquipmentPending}
}

// RestoreEquipmentLoan reconstructs a loan from persistence.
func RestoreEquipmentLoan(
	status EquipmentStatus,
	deliveredAt, dueAt, returnedAt *time.Time,
	penalty kernel.Money,
) (EquipmentLoan, error) {
	if err := status.Validate(); err != nil {
		return EquipmentLoan{}, err
	}
	if err := penalty.Validate(); err != nil {
		return EquipmentLoan{}, err
	}

	return EquipmentLoan{
		status:      status,
		deliveredAt: deliveredAt,
		dueAt:       dueAt,
		returnedAt:  returnedAt,
		penalty:     penalty,
	}, nil
}

// Status returns the current loan state.
func (l EquipmentLoan) Status() EquipmentStatus {
	return l.status
}

// DeliveredAt returns when the equipment was handed over, nil before delivery.
func (l EquipmentLoan) DeliveredAt() *time.Time {
	return l.deliveredAt
}

// DueAt returns the return deadline, nil before delivery.
func (l EquipmentLoan) DueAt() *time.Time {
	return l.dueAt
}

// ReturnedAt returns when the equipment came back, nil if it has not.
func (l EquipmentLoan) ReturnedAt() *time.Time {
	return l.returnedAt
}

// Penalty returns the charged penalty amount, zero unless the loan is charged.
func (l EquipmentLoan) Penalty() kernel.Money {
	return l.penalty
}

// isRequired reports whether the order carries an equipment loan at all.
func (l EquipmentLoan) isRequired() bool {
	return l.status != EquipmentNotApplicable
}

// markDelivered starts the return clock. The due date is the delivery moment
// plus the return window.
func (l *EquipmentLoan) markDelivered(now time.Time) {
	due := now.Add(EquipmentReturnWindow)
	l.status = EquipmentDelivered
	l.deliveredAt = &now
	l.dueAt = &due
}

// markReturned completes the loan. Valid only while the equipment is with the
// customer (delivered or late); returning clears any pending penalty.
func (l *EquipmentLoan) markReturned(now time.Time) error {
	switch l.status {
	case EquipmentNotApplicable:
		return ErrEquipmentNotApplicable
	case EquipmentCharged:
		return ErrEquipmentAlreadyCharged
	case EquipmentDelivered, EquipmentLate:
		l.status = EquipmentReturned
		l.returnedAt = &now
		l.penalty = kernel.ZeroMoney()
		return nil
	default:
		return ErrEquipmentNotOnLoan
	}
}

// checkOverdue re-evaluates the loan against the wall clock. Level-triggered:
// a delayed sweep still classifies the loan correctly from timestamps alone.
// Returns whether the loan turned late and whether the penalty was charged.
func (l *EquipmentLoan) checkOverdue(now time.Time) (becameLate, becameCharged bool) {
	if l.status == EquipmentDelivered && l.dueAt != nil && now.After(*l.dueAt) {
		l.status = EquipmentLate
		becameLate = true
	}

	if l.status == EquipmentLate && l.dueAt != nil && now.After(l.dueAt.Add(EquipmentLateGrace)) {
		l.status = EquipmentCharged
		l.penalty = EquipmentPenalty()
		becameCharged = true
	}

	return becameLate, becameCharged
}
