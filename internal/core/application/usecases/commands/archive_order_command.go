package commands

import (
	"context"
	"errors"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/guard"
)

var ErrArchiveOrderCommandIsNotConstructed = errors.New(
	"ArchiveOrderCommand must be created via NewArchiveOrderCommand constructor",
)

// ArchiveOrderCommand hides an order from the main cashier list. It is a
// convenience alias for the archived transition of the transition table.
type ArchiveOrderCommand struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewArchiveOrderCommand creates an archive command for orderID.
func NewArchiveOrderCommand(orderID kernel.OrderID) (ArchiveOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ArchiveOrderCommand{}, err
	}

	return ArchiveOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrArchiveOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to archive.
func (c ArchiveOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ArchiveOrderCommandHandler delegates to the status transition handler with
// the archived target status.
type ArchiveOrderCommandHandler struct {
	updateStatus UpdateOrderStatusCommandHandler
}

// NewArchiveOrderCommandHandler creates a handler for archive commands.
func NewArchiveOrderCommandHandler(updateStatus UpdateOrderStatusCommandHandler) ArchiveOrderCommandHandler {
	return ArchiveOrderCommandHandler{updateStatus: updateStatus}
}

// Handle archives the order, with the same no-op and fanout semantics as any
// other transition.
func (h *ArchiveOrderCommandHandler) Handle(ctx context.Context, cmd ArchiveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	updateCmd, err := NewUpdateOrderStatusCommand(cmd.OrderID(), order.Archived)
	if err != nil {
		return err
	}

	return h.updateStatus.Handle(ctx, updateCmd)
}
