package commands

import (
	"errors"

	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/guard"
)

var (
	ErrReleaseDumpsterCommandIsNotConstructed = errors.New(
		"ReleaseDumpsterCommand must be created via NewReleaseDumpsterCommand constructor",
	)
)

// ReleaseDumpsterCommand represents manually returning a dumpster to the
// available pool.
type ReleaseDumpsterCommand struct { //nolint:recvcheck //using for validation
	dumpsterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseDumpsterCommand creates a command to free a dumpster.
func NewReleaseDumpsterCommand(dumpsterID kernel.UUID) (ReleaseDumpsterCommand, error) {
	cmd := ReleaseDumpsterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDumpsterID(dumpsterID); err != nil {
		return ReleaseDumpsterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseDumpsterCommand) Validate() error {
	return c.guard.Validate(ErrReleaseDumpsterCommandIsNotConstructed)
}

// DumpsterID returns the dumpster to free.
func (c ReleaseDumpsterCommand) DumpsterID() kernel.UUID {
	return c.dumpsterID
}

func (c *ReleaseDumpsterCommand) setDumpsterID(dumpsterID kernel.UUID) error {
	if err := dumpsterID.Validate(); err != nil {
		return err
	}
	c.dumpsterID = dumpsterID
	return nil
}
