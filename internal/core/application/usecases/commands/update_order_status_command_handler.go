package commands

import (
	"context"
	"errors"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies the transition table to one order.
//
// Transitions originate from the active partition only: an order already in a
// terminal partition is left alone. Unknown ids are silent no-ops. After a
// successful transition the handler broadcasts the full snapshots of every
// partition it touched, plus a single-order status notification so the owning
// session can match its order by id.
type UpdateOrderStatusCommandHandler struct {
	registry    ports.OrderRegistry
	broadcaster ports.Broadcaster
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(registry ports.OrderRegistry, broadcaster ports.Broadcaster) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		registry:    registry,
		broadcaster: broadcaster,
	}
}

// Handle applies the transition and fans out the result.
func (h *UpdateOrderStatusCommandHandler) Handle(_ context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, from, err := h.registry.FindAnyPartition(cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}
	if from != order.PartitionActive {
		// Terminal orders don't transition again.
		return nil
	}

	target, err := cmd.Status().TargetPartition()
	if err != nil {
		return err
	}

	if target == order.PartitionActive {
		if err = o.ChangeStatus(cmd.Status()); err != nil {
			return err
		}
	} else if err = h.registry.MoveTo(cmd.OrderID(), from, target); err != nil {
		return err
	}

	h.broadcaster.Broadcast(ports.EventOrderUpdate, h.registry.Snapshot(order.PartitionActive))
	if event, ok := partitionEvent(target); ok && target != order.PartitionActive {
		h.broadcaster.Broadcast(event, h.registry.Snapshot(target))
	}
	h.broadcaster.Broadcast(ports.EventOrderStatusUpdate, o)
	return nil
}

// partitionEvent names the snapshot event of a partition. The archived
// partition has none: it is a cashier-only housekeeping view and is never
// pushed proactively.
func partitionEvent(p order.Partition) (string, bool) {
	switch p {
	case order.PartitionActive:
		return ports.EventOrderUpdate, true
	case order.PartitionCompleted:
		return ports.EventCompletedOrders, true
	case order.PartitionUndelivered:
		return ports.EventUndeliveredOrders, true
	default:
		return "", false
	}
}
