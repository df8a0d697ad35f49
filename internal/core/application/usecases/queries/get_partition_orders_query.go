package queries

import (
	"errors"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/guard"
)

var ErrGetPartitionOrdersQueryIsNotConstructed = errors.New(
	"GetPartitionOrdersQuery must be created via NewGetPartitionOrdersQuery constructor",
)

// GetPartitionOrdersQuery reads one partition's current snapshot. The gateway
// issues it three times on connect to seed a fresh session with the active,
// completed and undelivered lists.
type GetPartitionOrdersQuery struct {
	partition order.Partition

	guard guard.ConstructorGuard
}

// NewGetPartitionOrdersQuery creates a snapshot query for the partition.
func NewGetPartitionOrdersQuery(partition order.Partition) (GetPartitionOrdersQuery, error) {
	if err := partition.Validate(); err != nil {
		return GetPartitionOrdersQuery{}, err
	}

	return GetPartitionOrdersQuery{
		partition: partition,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartitionOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartitionOrdersQueryIsNotConstructed)
}

// Partition returns the partition being read.
func (q GetPartitionOrdersQuery) Partition() order.Partition {
	return q.partition
}
