package order

import (
	"fmt"
	"math"
	"time"

	"catering/internal/pkg/errs"
)

// Priority represents the urgency tier of an order, derived from how close
// the delivery date is. Lower values sort first: Urgent orders come before
// High, High before Medium, Medium before Low.
//
// Priority is a pure function of (deliveryAt, now) and is recomputed by the
// periodic sweep as time advances; it is never a hand-maintained fact.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityUrgent means delivery is due today or overdue.
	PriorityUrgent

	// PriorityHigh means delivery is due tomorrow.
	PriorityHigh

	// PriorityMedium means delivery is due in two to four days.
	PriorityMedium

	// PriorityLow means delivery is more than four days away.
	PriorityLow
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "unknown",
		PriorityUrgent:  "urgent",
		PriorityHigh:    "high",
		PriorityMedium:  "medium",
		PriorityLow:     "low",
	}
}

// PriorityFor computes the urgency tier for a delivery moment as seen from now.
//
// The tier is based on whole days remaining, floor((deliveryAt - now) / 24h):
// zero or fewer days is Urgent, exactly one day is High, two to four days is
// Medium, anything further out is Low.
func PriorityFor(deliveryAt, now time.Time) Priority {
	daysUntil := int(math.Floor(deliveryAt.Sub(now).Hours() / 24))

	switch {
	case daysUntil <= 0:
		return PriorityUrgent
	case daysUntil == 1:
		return PriorityHigh
	case daysUntil <= 4:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Validate checks if the Priority value is one of the defined tiers.
func (p Priority) Validate() error {
	if p < PriorityUrgent || p > PriorityLow {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the wire label of the priority, e.g. "urgent".
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}
