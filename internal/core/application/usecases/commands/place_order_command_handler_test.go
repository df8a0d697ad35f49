package commands_test

import (
	"errors"
	"testing"
	"time"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPayload() order.Payload {
	return order.Payload{
		CustomerName:  "Ahmed",
		CustomerPhone: "0551234567",
		CarModel:      "Camry",
		CarColor:      "White",
		Branch:        "Main",
		Items: []order.LineItem{
			{Name: "Latte", Price: 14, Quantity: 2},
		},
		TotalPrice: 28,
	}
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(testPayload())
	require.NoError(t, err)

	mockRegistry := new(MockOrderRegistry)
	mockBroadcaster := new(MockBroadcaster)
	mockOrigin := new(MockSession)

	activeSnapshot := []*order.Order{}
	var insertedOrder *order.Order

	// Set up expectations in order
	mock.InOrder(
		mockRegistry.On("NextOrderNumber").Return(int64(1000)).Once(),
		mockRegistry.On("InsertActive", mock.MatchedBy(func(o *order.Order) bool {
			insertedOrder = o
			return true
		})).Return(nil).Once(),
		mockOrigin.On("Send", ports.EventOrderConfirmed, "ORD-1000").Return(nil).Once(),
		mockRegistry.On("Snapshot", order.PartitionActive).Return(activeSnapshot).Once(),
		mockBroadcaster.On("Broadcast", ports.EventOrderUpdate, activeSnapshot).Once(),
	)

	handler := commands.NewPlaceOrderCommandHandler(mockRegistry, mockBroadcaster)

	// Act
	created, err := handler.Handle(ctx, cmd, mockOrigin)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Same(t, insertedOrder, created)
	assert.Equal(t, "ORD-1000", created.ID().String())
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, testPayload(), created.Payload())
	mockRegistry.AssertExpectations(t)
	mockBroadcaster.AssertExpectations(t)
	mockOrigin.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.PlaceOrderCommand // zero value command

	mockRegistry := new(MockOrderRegistry)
	mockBroadcaster := new(MockBroadcaster)
	mockOrigin := new(MockSession)
	handler := commands.NewPlaceOrderCommandHandler(mockRegistry, mockBroadcaster)

	// Act
	created, err := handler.Handle(ctx, invalidCmd, mockOrigin)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	assert.Nil(t, created)
	mockRegistry.AssertExpectations(t)
	mockBroadcaster.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_DeadOriginDoesNotPreventFanout(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(testPayload())
	require.NoError(t, err)

	mockRegistry := new(MockOrderRegistry)
	mockBroadcaster := new(MockBroadcaster)
	mockOrigin := new(MockSession)

	activeSnapshot := []*order.Order{}

	mock.InOrder(
		mockRegistry.On("NextOrderNumber").Return(int64(1001)).Once(),
		mockRegistry.On("InsertActive", mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		mockOrigin.On("Send", ports.EventOrderConfirmed, "ORD-1001").
			Return(errors.New("session closed")).Once(),
		mockRegistry.On("Snapshot", order.PartitionActive).Return(activeSnapshot).Once(),
		mockBroadcaster.On("Broadcast", ports.EventOrderUpdate, activeSnapshot).Once(),
	)

	handler := commands.NewPlaceOrderCommandHandler(mockRegistry, mockBroadcaster)

	// Act
	created, err := handler.Handle(ctx, cmd, mockOrigin)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, created)
	mockRegistry.AssertExpectations(t)
	mockBroadcaster.AssertExpectations(t)
	mockOrigin.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_InsertError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(testPayload())
	require.NoError(t, err)

	expectedError := errors.New("insert failed")
	mockRegistry := new(MockOrderRegistry)
	mockBroadcaster := new(MockBroadcaster)
	mockOrigin := new(MockSession)

	mock.InOrder(
		mockRegistry.On("NextOrderNumber").Return(int64(1002)).Once(),
		mockRegistry.On("InsertActive", mock.AnythingOfType("*order.Order")).
			Return(expectedError).Once(),
	)

	handler := commands.NewPlaceOrderCommandHandler(mockRegistry, mockBroadcaster)

	// Act
	created, err := handler.Handle(ctx, cmd, mockOrigin)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	assert.Nil(t, created)
	mockRegistry.AssertExpectations(t)
	mockBroadcaster.AssertExpectations(t)
	mockOrigin.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_TimestampsAreStamped(t *testing.T) {
	// Arrange
	ctx := t.Context()
	before := time.Now()

	cmd, err := commands.NewPlaceOrderCommand(testPayload())
	require.NoError(t, err)

	mockRegistry := new(MockOrderRegistry)
	mockBroadcaster := new(MockBroadcaster)
	mockOrigin := new(MockSession)

	var captured *order.Order
	mock.InOrder(
		mockRegistry.On("NextOrderNumber").Return(int64(1003)).Once(),
		mockRegistry.On("InsertActive", mock.MatchedBy(func(o *order.Order) bool {
			captured = o
			return true
		})).Return(nil).Once(),
		mockOrigin.On("Send", ports.EventOrderConfirmed, mock.Anything).Return(nil).Once(),
		mockRegistry.On("Snapshot", order.PartitionActive).Return([]*order.Order{}).Once(),
		mockBroadcaster.On("Broadcast", ports.EventOrderUpdate, mock.Anything).Once(),
	)

	handler := commands.NewPlaceOrderCommandHandler(mockRegistry, mockBroadcaster)

	// Act
	_, err = handler.Handle(ctx, cmd, mockOrigin)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, captured)
	after := time.Now()
	assert.False(t, captured.CreatedAt().Before(before.Round(0)))
	assert.False(t, captured.CreatedAt().After(after))
	assert.LessOrEqual(t, captured.Age(after), after.Sub(before))

	id, err := kernel.NewOrderID(1003)
	require.NoError(t, err)
	assert.True(t, captured.ID().IsEqual(id))
}
