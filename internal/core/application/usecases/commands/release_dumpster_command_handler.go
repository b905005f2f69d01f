package commands

import (
	"context"
)

// ReleaseDumpsterCommandHandler frees a dumpster back to the available pool.
// The underlying free is idempotent: releasing an already-available dumpster
// succeeds without touching the row.
type ReleaseDumpsterCommandHandler struct {
	uowFactory DumpsterUoWFactory
}

// NewReleaseDumpsterCommandHandler creates a handler for manual dumpster
// release.
func NewReleaseDumpsterCommandHandler(uowFactory DumpsterUoWFactory) ReleaseDumpsterCommandHandler {
	return ReleaseDumpsterCommandHandler{uowFactory: uowFactory}
}

// Handle frees the dumpster.
func (h ReleaseDumpsterCommandHandler) Handle(ctx context.Context, cmd ReleaseDumpsterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DumpsterRepository().Free(ctx, cmd.DumpsterID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
