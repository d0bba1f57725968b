// Package order provides domain entities and business logic for catering order
// fulfillment. It implements the Order aggregate root with workflow state
// transitions, urgency classification, and the equipment loan lifecycle.
//
// The package includes:
//   - Order: The aggregate root carrying fulfillment inputs, pricing outputs,
//     workflow state, and an append-only status history
//   - Status: A state machine enforcing the canonical production workflow
//   - Priority: An urgency tier derived from the delivery date
//   - EquipmentLoan: The loan sub-record for serving equipment lent with
//     large orders, including overdue detection and the contractual penalty
//   - StatusHistoryEntry: One recorded workflow transition
//
// Key business rules:
//   - The workflow is strictly linear: pending -> confirmed -> initiated ->
//     prep_ingredients -> assembly -> cooking -> packaging -> delivery ->
//     delivered -> completed, with cancelled and late_equipment as terminal
//     side exits
//   - The cooking stage is skipped for menus that need no cooking; this and
//     the forced late_equipment transition are the only non-linear branches
//   - Equipment is loaned when the headcount reaches EquipmentThreshold and
//     must come back within EquipmentReturnWindow of delivery
//   - The status field and its history entry always change as one unit
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
