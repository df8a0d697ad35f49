package commands

import (
	"context"
	"errors"

	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes orders unconditionally. Deleting an
// unknown id is a silent no-op without a broadcast; deleting twice has the
// same observable effect as deleting once.
type DeleteOrderCommandHandler struct {
	registry    ports.OrderRegistry
	broadcaster ports.Broadcaster
}

// NewDeleteOrderCommandHandler creates a handler for deletion commands.
func NewDeleteOrderCommandHandler(registry ports.OrderRegistry, broadcaster ports.Broadcaster) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		registry:    registry,
		broadcaster: broadcaster,
	}
}

// Handle removes the order from all partitions and rebroadcasts the snapshot
// of the partition that held it.
func (h *DeleteOrderCommandHandler) Handle(_ context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, held, err := h.registry.FindAnyPartition(cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	h.registry.RemoveEverywhere(cmd.OrderID())

	if event, ok := partitionEvent(held); ok {
		h.broadcaster.Broadcast(event, h.registry.Snapshot(held))
	}
	return nil
}
