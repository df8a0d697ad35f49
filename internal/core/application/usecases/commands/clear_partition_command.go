package commands

import (
	"errors"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var ErrClearPartitionCommandIsNotConstructed = errors.New(
	"ClearPartitionCommand must be created via NewClearPartitionCommand constructor",
)

// ClearPartitionCommand empties one of the terminal history partitions.
// Only the completed and undelivered partitions can be cleared; active orders
// are never bulk-discarded and the archive is kept as a permanent record.
type ClearPartitionCommand struct {
	partition order.Partition

	guard guard.ConstructorGuard
}

// NewClearPartitionCommand creates a command to clear the given partition.
func NewClearPartitionCommand(partition order.Partition) (ClearPartitionCommand, error) {
	if partition != order.PartitionCompleted && partition != order.PartitionUndelivered {
		return ClearPartitionCommand{}, errs.NewValueIsInvalidError("partition")
	}

	return ClearPartitionCommand{
		partition: partition,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearPartitionCommand) Validate() error {
	return c.guard.Validate(ErrClearPartitionCommandIsNotConstructed)
}

// Partition returns the partition to empty.
func (c ClearPartitionCommand) Partition() order.Partition {
	return c.partition
}
