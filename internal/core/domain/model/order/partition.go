package order

import (
	"fmt"

	"orderboard/internal/pkg/errs"
)

// Partition identifies one of the four disjoint order collections held by the
// registry. An order id lives in at most one partition at any instant.
type Partition int

const (
	// PartitionActive holds orders still being worked (pending/preparing/ready).
	PartitionActive Partition = iota

	// PartitionArchived holds orders hidden from the main cashier list.
	PartitionArchived

	// PartitionCompleted holds orders handed over to the customer.
	PartitionCompleted

	// PartitionUndelivered holds orders the customer never picked up.
	PartitionUndelivered
)

// ScanOrder is the fixed priority in which partitions are searched for an id.
// Active orders are the most likely to be queried and must win ties if an id
// ever ended up in more than one partition.
func ScanOrder() []Partition {
	return []Partition{PartitionActive, PartitionArchived, PartitionCompleted, PartitionUndelivered}
}

func partitionStrings() map[Partition]string {
	return map[Partition]string{
		PartitionActive:      "active",
		PartitionArchived:    "archived",
		PartitionCompleted:   "completed",
		PartitionUndelivered: "undelivered",
	}
}

// Validate checks that the partition is one of the four defined collections.
func (p Partition) Validate() error {
	if _, ok := partitionStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"partition", fmt.Errorf("%d is not a valid partition", p))
	}
	return nil
}

// String returns the partition name. Implements fmt.Stringer.
func (p Partition) String() string {
	if str, ok := partitionStrings()[p]; ok {
		return str
	}
	return "unknown"
}
