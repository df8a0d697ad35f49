package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"orderboard/internal/core/domain/services"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

// CancelOrderCommandHandler removes a customer-cancelled order from the
// board. The cancellation window is not enforced server-side: the UI withholds
// the cancel button once the window elapses, and the board keeps accepting the
// command so already-deployed clients never see a new failure mode.
// Out-of-window cancels are logged so abuse stays visible.
type CancelOrderCommandHandler struct {
	registry    ports.OrderRegistry
	broadcaster ports.Broadcaster
	policy      services.CancellationPolicy
	logger      *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for cancellation commands.
func NewCancelOrderCommandHandler(
	registry ports.OrderRegistry,
	broadcaster ports.Broadcaster,
	policy services.CancellationPolicy,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		registry:    registry,
		broadcaster: broadcaster,
		policy:      policy,
		logger:      logger.With("component", "cancel_order_handler"),
	}
}

// Handle removes the order from all partitions, like deletion, and
// rebroadcasts the snapshot of the partition that held it. Unknown ids are
// silent no-ops, so cancelling twice is safe.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, held, err := h.registry.FindAnyPartition(cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if !h.policy.WithinWindow(o, time.Now()) {
		h.logger.WarnContext(ctx, "Cancel received outside the cancellation window",
			"orderId", cmd.OrderID().String(),
			"age", o.Age(time.Now()).String(),
			"window", h.policy.Window().String())
	}

	h.registry.RemoveEverywhere(cmd.OrderID())

	if event, ok := partitionEvent(held); ok {
		h.broadcaster.Broadcast(event, h.registry.Snapshot(held))
	}
	return nil
}
