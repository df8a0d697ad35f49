// Package ports defines the contracts between the application core and its
// adapters: the in-memory order registry, the broadcast fanout, and the
// relational repositories of the admin subsystem.
package ports

import (
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
)

// OrderRegistry is the authoritative in-memory store of live orders. It holds
// four disjoint partitions (active, archived, completed, undelivered) plus the
// monotonic order-number counter.
//
// The registry performs no locking of its own: callers serialize every
// mutating and reading access through the gateway dispatcher, which handles
// one inbound event to completion at a time. The registry is mutated
// exclusively by the lifecycle command handlers and read by the recovery and
// snapshot queries.
type OrderRegistry interface {
	// NextOrderNumber returns the current counter value and increments it.
	// Numbers are strictly increasing for the lifetime of the process and
	// start at a fixed base, so order numbers are never reused.
	NextOrderNumber() int64

	// InsertActive adds an order to the active partition. The caller always
	// generates a fresh id from the counter, which keeps the id unique
	// across all partitions.
	InsertActive(o *order.Order) error

	// FindAnyPartition scans the partitions in the fixed priority order
	// active, archived, completed, undelivered and returns the first match
	// together with its owning partition. Returns an
	// errs.ObjectNotFoundError when the id is in no partition.
	FindAnyPartition(id kernel.OrderID) (*order.Order, order.Partition, error)

	// MoveTo removes the order from `from` and inserts it into `target`,
	// updating its status to match the target partition. Returns an
	// errs.ObjectNotFoundError when the id is absent from `from`; the
	// partitions are left untouched in that case.
	MoveTo(id kernel.OrderID, from, target order.Partition) error

	// RemoveEverywhere deletes the id from all four partitions
	// unconditionally. Removing an absent id is a no-op.
	RemoveEverywhere(id kernel.OrderID)

	// Clear empties a partition entirely.
	Clear(p order.Partition)

	// Snapshot returns the orders currently in a partition, insertion order
	// preserved. The returned slice is a copy; the orders are shared.
	Snapshot(p order.Partition) []*order.Order
}
