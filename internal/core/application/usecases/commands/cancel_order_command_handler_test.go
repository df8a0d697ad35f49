package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/services"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCancelOrderCommandHandler_Handle_WithinWindow(t *testing.T) {
	// Arrange
	ctx := t.Context()
	o := newTestOrder(t, 1000)

	cmd, err := commands.NewCancelOrderCommand(o.ID())
	require.NoError(t, err)

	mockRegistry := new(MockOrderRegistry)
	mockBroadcaster := new(MockBroadcaster)

	activeSnapshot := []*order.Order{}
	mock.InOrder(
		mockRegistry.On("FindAnyPartition", o.ID()).
			Return(o, order.PartitionActive, nil).Once(),
		mockRegistry.On("RemoveEverywhere", o.ID()).Once(),
		mockRegistry.On("Snapshot", order.PartitionActive).Return(activeSnapshot).Once(),
		mockBroadcaster.On("Broadcast", ports.EventOrderUpdate, activeSnapshot).Once(),
	)

	policy := services.NewCancellationPolicy(services.DefaultCancellationWindow)
	handler := commands.NewCancelOrderCommandHandler(mockRegistry, mockBroadcaster, policy, discardLogger())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockRegistry.AssertExpectations(t)
	mockBroadcaster.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_OutsideWindowStillRemoves(t *testing.T) {
	// Arrange: an order older than the window is still removed; the UI hides
	// the cancel button but the board never rejects the command.
	ctx := t.Context()
	id, err := kernel.NewOrderID(1001)
	require.NoError(t, err)

	stale, err := order.NewOrder(id, testPayload(), time.Now().Add(-10*time.Minute))
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(id)
	require.NoError(t, err)

	mockRegistry := new(MockOrderRegistry)
	mockBroadcaster := new(MockBroadcaster)

	activeSnapshot := []*order.Order{}
	mock.InOrder(
		mockRegistry.On("FindAnyPartition", id).
			Return(stale, order.PartitionActive, nil).Once(),
		mockRegistry.On("RemoveEverywhere", id).Once(),
		mockRegistry.On("Snapshot", order.PartitionActive).Return(activeSnapshot).Once(),
		mockBroadcaster.On("Broadcast", ports.EventOrderUpdate, activeSnapshot).Once(),
	)

	policy := services.NewCancellationPolicy(services.DefaultCancellationWindow)
	handler := commands.NewCancelOrderCommandHandler(mockRegistry, mockBroadcaster, policy, discardLogger())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockRegistry.AssertExpectations(t)
	mockBroadcaster.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_UnknownOrderIsSilentNoOp(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id, err := kernel.NewOrderID(9999)
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(id)
	require.NoError(t, err)

	mockRegistry := new(MockOrderRegistry)
	mockBroadcaster := new(MockBroadcaster)

	mockRegistry.On("FindAnyPartition", id).
		Return(nil, order.Partition(0), errs.NewObjectNotFoundError("orderId", id)).Once()

	policy := services.NewCancellationPolicy(services.DefaultCancellationWindow)
	handler := commands.NewCancelOrderCommandHandler(mockRegistry, mockBroadcaster, policy, discardLogger())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockRegistry.AssertExpectations(t)
	mockRegistry.AssertNotCalled(t, "RemoveEverywhere", mock.Anything)
	mockBroadcaster.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
}
