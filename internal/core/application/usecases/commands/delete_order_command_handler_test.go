package commands_test

import (
	"testing"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_RemovesFromHeldPartition(t *testing.T) {
	// Arrange: a completed order is removed and the completed snapshot is
	// rebroadcast so every display drops the row.
	ctx := t.Context()
	o := newTestOrder(t, 1000)

	cmd, err := commands.NewDeleteOrderCommand(o.ID())
	require.NoError(t, err)

	mockRegistry := new(MockOrderRegistry)
	mockBroadcaster := new(MockBroadcaster)

	completedSnapshot := []*order.Order{}
	mock.InOrder(
		mockRegistry.On("FindAnyPartition", o.ID()).
			Return(o, order.PartitionCompleted, nil).Once(),
		mockRegistry.On("RemoveEverywhere", o.ID()).Once(),
		mockRegistry.On("Snapshot", order.PartitionCompleted).Return(completedSnapshot).Once(),
		mockBroadcaster.On("Broadcast", ports.EventCompletedOrders, completedSnapshot).Once(),
	)

	handler := commands.NewDeleteOrderCommandHandler(mockRegistry, mockBroadcaster)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockRegistry.AssertExpectations(t)
	mockBroadcaster.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_ArchivedOrderHasNoSnapshotEvent(t *testing.T) {
	// Arrange: the archive has no snapshot event, so the removal is silent.
	ctx := t.Context()
	o := newTestOrder(t, 1001)

	cmd, err := commands.NewDeleteOrderCommand(o.ID())
	require.NoError(t, err)

	mockRegistry := new(MockOrderRegistry)
	mockBroadcaster := new(MockBroadcaster)

	mock.InOrder(
		mockRegistry.On("FindAnyPartition", o.ID()).
			Return(o, order.PartitionArchived, nil).Once(),
		mockRegistry.On("RemoveEverywhere", o.ID()).Once(),
	)

	handler := commands.NewDeleteOrderCommandHandler(mockRegistry, mockBroadcaster)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockRegistry.AssertExpectations(t)
	mockBroadcaster.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
}

func TestDeleteOrderCommandHandler_Handle_UnknownOrderIsSilentNoOp(t *testing.T) {
	// Arrange: deleting twice behaves the same as deleting once.
	ctx := t.Context()
	id, err := kernel.NewOrderID(9999)
	require.NoError(t, err)

	cmd, err := commands.NewDeleteOrderCommand(id)
	require.NoError(t, err)

	mockRegistry := new(MockOrderRegistry)
	mockBroadcaster := new(MockBroadcaster)

	mockRegistry.On("FindAnyPartition", id).
		Return(nil, order.Partition(0), errs.NewObjectNotFoundError("orderId", id)).Once()

	handler := commands.NewDeleteOrderCommandHandler(mockRegistry, mockBroadcaster)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockRegistry.AssertExpectations(t)
	mockRegistry.AssertNotCalled(t, "RemoveEverywhere", mock.Anything)
	mockBroadcaster.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
}
