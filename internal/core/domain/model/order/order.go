package order

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a catering order and is the aggregate root of the
// fulfillment workflow. It carries the customer's fulfillment inputs, the
// price breakdown computed at creation, the workflow status with its
// append-only history, the urgency tier, and the equipment loan sub-record.
//
// Order follows these invariants:
//   - Must have valid order, customer, and menu identifiers
//   - Headcount meets the menu minimum, checked at creation
//   - Status transitions follow the canonical workflow; the status field and
//     its history entry change as one unit
//   - History timestamps are monotonically non-decreasing, and the entry
//     count equals the number of transitions taken including creation
//   - cookingRequired is copied from the menu at creation and never changes
//   - Can only be created through NewOrder or RestoreOrder
//
// All mutation goes through Advance, Cancel, ReturnEquipment, RefreshPriority
// and CheckEquipmentOverdue. Orders are never deleted; cancellation is a
// terminal status, not a deletion.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	menuID     kernel.UUID

	headcount       int
	address         Address
	deliveryAt      time.Time
	specialRequests string
	cookingRequired bool

	pricing Pricing

	status          Status
	priority        Priority
	assignedStaffID *kernel.UUID
	equipment       EquipmentLoan
	history         []StatusHistoryEntry

	// version supports optimistic concurrency control in the repository:
	// two writers racing on the same order cannot both win.
	version int

	isConstructed bool
}

// NewOrder creates a new Order in pending status with validation.
//
// Parameters:
//   - id, customerID, menuID: aggregate and reference identifiers
//   - headcount: number of persons, must be at least minHeadcount
//   - minHeadcount: the menu's minimum persons, used only for validation
//   - address: validated delivery address
//   - deliveryAt: delivery date and time, required
//   - specialRequests: free text, not interpreted by the core
//   - cookingRequired: copied from the menu, immutable afterwards
//   - pricing: breakdown computed by the pricing engine
//   - now: creation time, recorded in the first history entry
//   - creationNotes: annotation for the creation entry, e.g. the geocoding
//     fallback note; empty for the normal path
//
// The equipment loan is created as pending when the headcount reaches
// EquipmentThreshold, not_applicable otherwise. The priority tier is derived
// from the delivery date as seen from now.
func NewOrder(
	id, customerID, menuID kernel.UUID,
	headcount, minHeadcount int,
	address Address,
	deliveryAt time.Time,
	specialRequests string,
	cookingRequired bool,
	pricing Pricing,
	now time.Time,
	creationNotes string,
) (*Order, error) {
	o := &Order{
		specialRequests: specialRequests,
		cookingRequired: cookingRequired,
		pricing:         pricing,
		status:          Pending,
		version:         1,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setMenuID(menuID),
		o.setHeadcount(headcount, minHeadcount),
		o.setAddress(address),
		o.setDeliveryAt(deliveryAt),
	); err != nil {
		return nil, err
	}

	o.priority = PriorityFor(deliveryAt, now)
	o.equipment = NewEquipmentLoan(headcount >= EquipmentThreshold)
	o.history = []StatusHistoryEntry{NewStatusHistoryEntry(Pending, now, nil, creationNotes)}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running
// creation-time validation against the menu. Workflow state is validated so
// corrupt rows cannot produce an order in an unrepresentable state.
func RestoreOrder(
	id, customerID, menuID kernel.UUID,
	headcount int,
	address Address,
	deliveryAt time.Time,
	specialRequests string,
	cookingRequired bool,
	pricing Pricing,
	status Status,
	priority Priority,
	assignedStaffID *kernel.UUID,
	equipment EquipmentLoan,
	history []StatusHistoryEntry,
	version int,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		menuID.Validate(),
		address.Validate(),
		status.Validate(),
		priority.Validate(),
	); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, errs.NewValueIsRequiredError("status history")
	}
	if assignedStaffID != nil {
		if err := assignedStaffID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		menuID:          menuID,
		headcount:       headcount,
		address:         address,
		deliveryAt:      deliveryAt,
		specialRequests: specialRequests,
		cookingRequired: cookingRequired,
		pricing:         pricing,
		status:          status,
		priority:        priority,
		assignedStaffID: assignedStaffID,
		equipment:       equipment,
		history:         history,
		version:         version,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// MenuID returns the ordered menu's identifier.
func (o *Order) MenuID() kernel.UUID {
	return o.menuID
}

// Headcount returns the number of persons the order serves.
func (o *Order) Headcount() int {
	return o.headcount
}

// Address returns the delivery destination.
func (o *Order) Address() Address {
	return o.address
}

// DeliveryAt returns the delivery date and time.
func (o *Order) DeliveryAt() time.Time {
	return o.deliveryAt
}

// SpecialRequests returns the customer's free-text requests and allergies.
func (o *Order) SpecialRequests() string {
	return o.specialRequests
}

// CookingRequired reports whether the menu needs the cooking stage.
func (o *Order) CookingRequired() bool {
	return o.cookingRequired
}

// Pricing returns the price breakdown computed at creation.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// Priority returns the current urgency tier.
func (o *Order) Priority() Priority {
	return o.priority
}

// AssignedStaff returns the staff member who first took the order out of
// pending, nil while the order is still unassigned.
func (o *Order) AssignedStaff() *kernel.UUID {
	return o.assignedStaffID
}

// Equipment returns the equipment loan sub-record.
func (o *Order) Equipment() EquipmentLoan {
	return o.equipment
}

// History returns a copy of the append-only status history, oldest first.
func (o *Order) History() []StatusHistoryEntry {
	history := make([]StatusHistoryEntry, len(o.history))
	copy(history, o.history)
	return history
}

// Version returns the optimistic concurrency version.
func (o *Order) Version() int {
	return o.version
}

// Advance moves the order to the next status in the canonical workflow.
//
// Business rules:
//   - Fails with ErrInvalidTransition on a terminal status
//   - The cooking stage is skipped for menus with cookingRequired false;
//     the skip is recorded as a note on the history entry
//   - The acting staff member is assigned on the first transition out of pending
//   - Entering delivered starts the equipment loan clock when the order
//     carries an equipment loan
//
// The status change and its history entry are applied together; callers must
// persist the whole aggregate atomically.
func (o *Order) Advance(actor kernel.UUID, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	next, err := o.status.Next(o.cookingRequired)
	if err != nil {
		return err
	}

	notes := ""
	if o.status == Assembly && !o.cookingRequired {
		notes = "cooking not required, skipped"
	}

	if o.status == Pending {
		assigned := actor
		o.assignedStaffID = &assigned
	}

	o.status = next
	o.appendHistory(next, now, &actor, notes)

	if next == Delivered && o.equipment.isRequired() {
		o.equipment.markDelivered(now)
	}

	return nil
}

// Cancel moves the order to the cancelled terminal status.
// Allowed from any non-terminal status; the reason is recorded as notes on
// the history entry.
func (o *Order) Cancel(actor kernel.UUID, reason string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	next, err := o.status.CancelTransition()
	if err != nil {
		return err
	}

	o.status = next
	o.appendHistory(next, now, &actor, reason)
	return nil
}

// ReturnEquipment records the return of loaned equipment.
//
// Valid only while the equipment is with the customer (delivered or late).
// Returns ErrEquipmentNotApplicable for orders without a loan,
// ErrEquipmentAlreadyCharged after the penalty was charged, and
// ErrEquipmentNotOnLoan before hand-over or after a completed return.
func (o *Order) ReturnEquipment(actor kernel.UUID, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	return o.equipment.markReturned(now)
}

// RefreshPriority recomputes the urgency tier as seen from now.
// Returns true when the tier changed. Orders that are delivered or terminal
// keep their last tier; priority is cosmetic there.
func (o *Order) RefreshPriority(now time.Time) bool {
	if o.status == Delivered || o.status.IsTerminal() {
		return false
	}

	priority := PriorityFor(o.deliveryAt, now)
	if priority == o.priority {
		return false
	}

	o.priority = priority
	return true
}

// CheckEquipmentOverdue re-evaluates the equipment loan against the wall
// clock. When the loan passes the charge point the penalty is applied and
// the order is force-transitioned to late_equipment regardless of its
// current workflow stage; this is the only path by which the equipment
// lifecycle mutates the order status.
//
// Returns true when the loan state changed.
func (o *Order) CheckEquipmentOverdue(now time.Time) bool {
	becameLate, becameCharged := o.equipment.checkOverdue(now)

	if becameCharged && o.status != LateEquipment {
		o.status = LateEquipment
		o.appendHistory(LateEquipment, now, nil, fmt.Sprintf(
			"equipment overdue, penalty of %s charged", o.equipment.Penalty(),
		))
	}

	return becameLate || becameCharged
}

// appendHistory appends a history entry, clamping the timestamp so the
// history stays monotonically non-decreasing even if the caller's clock
// reads slightly behind the previous entry.
func (o *Order) appendHistory(status Status, at time.Time, actor *kernel.UUID, notes string) {
	if last := len(o.history) - 1; last >= 0 && at.Before(o.history[last].At()) {
		at = o.history[last].At()
	}
	o.history = append(o.history, NewStatusHistoryEntry(status, at, actor, notes))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setMenuID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.menuID = id
	return nil
}

func (o *Order) setHeadcount(headcount, minHeadcount int) error {
	if minHeadcount < 1 {
		minHeadcount = 1
	}
	if headcount < minHeadcount {
		return errs.NewValueIsInvalidErrorWithCause(
			"headcount",
			fmt.Errorf("%d is below the menu minimum of %d", headcount, minHeadcount),
		)
	}
	o.headcount = headcount
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setDeliveryAt(deliveryAt time.Time) error {
	if deliveryAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveryAt")
	}
	o.deliveryAt = deliveryAt
	return nil
}
