package queries

import (
	"context"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
)

// GetPartitionOrdersQueryHandler serves partition snapshots from the
// in-memory registry.
type GetPartitionOrdersQueryHandler struct {
	registry ports.OrderRegistry
}

// NewGetPartitionOrdersQueryHandler creates a handler for snapshot queries.
func NewGetPartitionOrdersQueryHandler(registry ports.OrderRegistry) GetPartitionOrdersQueryHandler {
	return GetPartitionOrdersQueryHandler{registry: registry}
}

// Handle returns the partition's orders in insertion order.
func (h GetPartitionOrdersQueryHandler) Handle(_ context.Context, query GetPartitionOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.registry.Snapshot(query.Partition()), nil
}
