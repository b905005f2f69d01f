package commands_test

import (
	"errors"
	"testing"
	"time"

	"arkdumpster/internal/core/application/usecases/commands"
	"arkdumpster/internal/core/domain/model/dumpster"
	"arkdumpster/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createReleaseTask(t *testing.T) dumpster.ReleaseTask {
	t.Helper()
	task, err := dumpster.NewReleaseTask(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return task
}

func TestRetryDumpsterReleasesCommandHandler_Handle_EmptyQueue(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRetryDumpsterReleasesCommand()

	queue := new(MockReleaseQueue)
	uow := new(MockLifecycleUoW)
	mock.InOrder(
		uow.On("ReleaseQueue").Return(queue).Once(),
		queue.On("Pending", mock.Anything, mock.AnythingOfType("int")).
			Return([]dumpster.ReleaseTask{}, nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRetryDumpsterReleasesCommandHandler(factory, newTestLogger())
	err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrNoPendingReleases)
	factory.AssertExpectations(t)
}

func TestRetryDumpsterReleasesCommandHandler_Handle_FreesAndCompletes(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRetryDumpsterReleasesCommand()
	task := createReleaseTask(t)

	queue := new(MockReleaseQueue)
	dumpsterRepo := new(MockDumpsterRepository)
	uow := new(MockLifecycleUoW)
	mock.InOrder(
		uow.On("ReleaseQueue").Return(queue).Once(),
		queue.On("Pending", mock.Anything, mock.AnythingOfType("int")).
			Return([]dumpster.ReleaseTask{task}, nil).Once(),
		uow.On("DumpsterRepository").Return(dumpsterRepo).Once(),
		dumpsterRepo.On("Free", mock.Anything, task.DumpsterID).Return(nil).Once(),
		uow.On("ReleaseQueue").Return(queue).Once(),
		queue.On("Complete", mock.Anything, task.ID).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRetryDumpsterReleasesCommandHandler(factory, newTestLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	queue.AssertExpectations(t)
	dumpsterRepo.AssertExpectations(t)
}

func TestRetryDumpsterReleasesCommandHandler_Handle_FailureRecordsAttempt(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRetryDumpsterReleasesCommand()
	failing := createReleaseTask(t)
	succeeding := createReleaseTask(t)

	queue := new(MockReleaseQueue)
	dumpsterRepo := new(MockDumpsterRepository)
	uow := new(MockLifecycleUoW)
	mock.InOrder(
		uow.On("ReleaseQueue").Return(queue).Once(),
		queue.On("Pending", mock.Anything, mock.AnythingOfType("int")).
			Return([]dumpster.ReleaseTask{failing, succeeding}, nil).Once(),
		uow.On("DumpsterRepository").Return(dumpsterRepo).Once(),
		dumpsterRepo.On("Free", mock.Anything, failing.DumpsterID).
			Return(errors.New("connection reset")).Once(),
		uow.On("ReleaseQueue").Return(queue).Once(),
		queue.On("RecordAttempt", mock.Anything, failing.ID).Return(nil).Once(),
		// one bad task never blocks the rest of the batch
		uow.On("DumpsterRepository").Return(dumpsterRepo).Once(),
		dumpsterRepo.On("Free", mock.Anything, succeeding.DumpsterID).Return(nil).Once(),
		uow.On("ReleaseQueue").Return(queue).Once(),
		queue.On("Complete", mock.Anything, succeeding.ID).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRetryDumpsterReleasesCommandHandler(factory, newTestLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	queue.AssertExpectations(t)
	dumpsterRepo.AssertExpectations(t)
}

func TestRetryDumpsterReleasesCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockLifecycleUoWFactory)

	h := commands.NewRetryDumpsterReleasesCommandHandler(factory, newTestLogger())
	err := h.Handle(ctx, commands.RetryDumpsterReleasesCommand{}) // not constructed properly

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
