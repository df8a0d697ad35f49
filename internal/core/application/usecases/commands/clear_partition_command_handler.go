package commands

import (
	"context"

	"orderboard/internal/core/ports"
)

// ClearPartitionCommandHandler empties a history partition and pushes the
// now-empty snapshot so every display drops the stale rows at once.
type ClearPartitionCommandHandler struct {
	registry    ports.OrderRegistry
	broadcaster ports.Broadcaster
}

// NewClearPartitionCommandHandler creates a handler for clear commands.
func NewClearPartitionCommandHandler(
	registry ports.OrderRegistry,
	broadcaster ports.Broadcaster,
) ClearPartitionCommandHandler {
	return ClearPartitionCommandHandler{registry: registry, broadcaster: broadcaster}
}

func (h *ClearPartitionCommandHandler) Handle(_ context.Context, cmd ClearPartitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.registry.Clear(cmd.Partition())

	// The empty snapshot is the signal; clients replace their list wholesale.
	if event, ok := partitionEvent(cmd.Partition()); ok {
		h.broadcaster.Broadcast(event, h.registry.Snapshot(cmd.Partition()))
	}
	return nil
}
