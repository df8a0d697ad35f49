package commands

import (
	"context"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
)

// PlaceOrderCommandHandler creates new orders on the board. It allocates the
// order number, stamps the timestamps, inserts the order into the active
// partition, confirms to the originating session, and fans the updated active
// snapshot out to everyone.
type PlaceOrderCommandHandler struct {
	registry    ports.OrderRegistry
	broadcaster ports.Broadcaster
}

// NewPlaceOrderCommandHandler creates a handler for order creation.
func NewPlaceOrderCommandHandler(registry ports.OrderRegistry, broadcaster ports.Broadcaster) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		registry:    registry,
		broadcaster: broadcaster,
	}
}

// Handle processes a creation request from origin. The confirmation goes to
// origin only, before the global broadcast, so the customer's spinner stops
// as soon as the order exists.
func (h *PlaceOrderCommandHandler) Handle(_ context.Context, cmd PlaceOrderCommand, origin ports.Session) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id, err := kernel.NewOrderID(h.registry.NextOrderNumber())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(id, cmd.Payload(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = h.registry.InsertActive(o); err != nil {
		return nil, err
	}

	// A dead originating session must not prevent the fanout.
	_ = origin.Send(ports.EventOrderConfirmed, o.ID().String())

	h.broadcaster.Broadcast(ports.EventOrderUpdate, h.registry.Snapshot(order.PartitionActive))
	return o, nil
}
