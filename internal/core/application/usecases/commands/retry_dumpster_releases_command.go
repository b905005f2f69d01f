package commands

import (
	"errors"

	"arkdumpster/internal/pkg/guard"
)

var (
	ErrRetryDumpsterReleasesCommandIsNotConstructed = errors.New(
		"RetryDumpsterReleasesCommand must be created via NewRetryDumpsterReleasesCommand constructor",
	)

	// ErrNoPendingReleases indicates the release queue is empty. This is the
	// expected steady state, not a failure.
	ErrNoPendingReleases = errors.New("no pending dumpster releases found")
)

// RetryDumpsterReleasesCommand drains the pending-release queue: every task
// is a dumpster free that failed after an order completion and must be
// retried until it lands.
type RetryDumpsterReleasesCommand struct {
	guard guard.ConstructorGuard
}

// NewRetryDumpsterReleasesCommand creates a command to retry pending
// releases.
func NewRetryDumpsterReleasesCommand() RetryDumpsterReleasesCommand {
	return RetryDumpsterReleasesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RetryDumpsterReleasesCommand) Validate() error {
	return c.guard.Validate(ErrRetryDumpsterReleasesCommandIsNotConstructed)
}
