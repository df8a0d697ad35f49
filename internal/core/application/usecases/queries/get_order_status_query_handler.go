package queries

import (
	"context"
	"errors"

	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

// GetOrderStatusQueryHandler answers recovery requests from reconnecting
// customers. It scans the partitions in priority order and replies to the
// asking session only. An unknown id gets no reply at all; the client's
// timeout is the signal that the order is gone.
type GetOrderStatusQueryHandler struct {
	registry ports.OrderRegistry
}

// NewGetOrderStatusQueryHandler creates a handler for recovery queries.
func NewGetOrderStatusQueryHandler(registry ports.OrderRegistry) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{registry: registry}
}

// Handle looks the order up and sends its current state to origin.
func (h GetOrderStatusQueryHandler) Handle(_ context.Context, query GetOrderStatusQuery, origin ports.Session) error {
	if err := query.Validate(); err != nil {
		return err
	}

	o, _, err := h.registry.FindAnyPartition(query.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	return origin.Send(ports.EventOrderStatusUpdate, o)
}
