package commands

import (
	"errors"
	"time"

	"catering/internal/pkg/guard"
)

var (
	ErrSweepOrdersCommandIsNotConstructed = errors.New(
		"SweepOrdersCommand must be created via NewSweepOrdersCommand constructor",
	)
	ErrSweepTimeIsRequired = errors.New("sweep time is required")
)

// SweepOrdersCommand represents a periodic pass over all live orders to
// re-evaluate time-derived state: priority tiers and overdue equipment
// loans. Carries the wall-clock instant the sweep evaluates against, so a
// delayed tick still behaves correctly.
type SweepOrdersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewSweepOrdersCommand creates a command for one sweep pass at the given
// instant.
func NewSweepOrdersCommand(now time.Time) (SweepOrdersCommand, error) {
	sweepCommand := SweepOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if now.IsZero() {
		return SweepOrdersCommand{}, ErrSweepTimeIsRequired
	}
	sweepCommand.now = now

	return sweepCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSweepOrdersCommandIsNotConstructed)
}

// Now returns the instant the sweep evaluates against.
func (c SweepOrdersCommand) Now() time.Time {
	return c.now
}
