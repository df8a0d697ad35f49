// Package memory provides the in-memory order registry backing the live
// board. Nothing here survives a process restart; durability is an explicit
// non-goal of the board.
package memory

import (
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

// DefaultCounterBase is the order number handed out first after process
// start. Restarting the process restarts the counter at this base, which can
// repeat order numbers across restarts; accepted, since no order outlives the
// process either.
const DefaultCounterBase = 1000

// Registry is the authoritative store of live orders: four disjoint,
// insertion-ordered partitions plus the monotonic order-number counter.
//
// Registry does no locking. Every access is serialized by the gateway
// dispatcher, which runs one inbound event to completion at a time, so no
// handler ever observes a partial mutation.
type Registry struct {
	counter    int64
	partitions map[order.Partition][]*order.Order
}

var _ ports.OrderRegistry = (*Registry)(nil)

// NewRegistry creates an empty registry counting from counterBase. A
// non-positive base falls back to DefaultCounterBase.
func NewRegistry(counterBase int64) *Registry {
	if counterBase <= 0 {
		counterBase = DefaultCounterBase
	}

	partitions := make(map[order.Partition][]*order.Order, len(order.ScanOrder()))
	for _, p := range order.ScanOrder() {
		partitions[p] = nil
	}

	return &Registry{
		counter:    counterBase,
		partitions: partitions,
	}
}

// NextOrderNumber returns the current counter value and increments it.
func (r *Registry) NextOrderNumber() int64 {
	n := r.counter
	r.counter++
	return n
}

// InsertActive adds an order to the active partition. The caller generates
// fresh ids from the counter, so the id cannot already exist elsewhere.
func (r *Registry) InsertActive(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	r.partitions[order.PartitionActive] = append(r.partitions[order.PartitionActive], o)
	return nil
}

// FindAnyPartition scans active, archived, completed, undelivered in that
// order and returns the first order carrying id.
func (r *Registry) FindAnyPartition(id kernel.OrderID) (*order.Order, order.Partition, error) {
	for _, p := range order.ScanOrder() {
		if i := r.indexOf(p, id); i >= 0 {
			return r.partitions[p][i], p, nil
		}
	}
	return nil, order.PartitionActive, errs.NewObjectNotFoundError("orderId", id.String())
}

// MoveTo removes the order from one partition and appends it to another,
// updating its status to the target partition's status. The remove and the
// insert happen within one call under the dispatcher's serialization, so no
// client ever observes the order in two partitions or in none.
func (r *Registry) MoveTo(id kernel.OrderID, from, target order.Partition) error {
	i := r.indexOf(from, id)
	if i < 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}

	o := r.partitions[from][i]
	if status, ok := partitionStatus(target); ok {
		if err := o.ChangeStatus(status); err != nil {
			return err
		}
	}

	r.partitions[from] = append(r.partitions[from][:i], r.partitions[from][i+1:]...)
	r.partitions[target] = append(r.partitions[target], o)
	return nil
}

// RemoveEverywhere deletes the id from all four partitions. Safe to call for
// ids that are long gone.
func (r *Registry) RemoveEverywhere(id kernel.OrderID) {
	for _, p := range order.ScanOrder() {
		if i := r.indexOf(p, id); i >= 0 {
			r.partitions[p] = append(r.partitions[p][:i], r.partitions[p][i+1:]...)
		}
	}
}

// Clear empties a partition.
func (r *Registry) Clear(p order.Partition) {
	r.partitions[p] = nil
}

// Snapshot returns a copy of a partition's order list, insertion order
// preserved. The orders themselves are shared, not copied.
func (r *Registry) Snapshot(p order.Partition) []*order.Order {
	snapshot := make([]*order.Order, len(r.partitions[p]))
	copy(snapshot, r.partitions[p])
	return snapshot
}

func (r *Registry) indexOf(p order.Partition, id kernel.OrderID) int {
	for i, o := range r.partitions[p] {
		if o.ID().IsEqual(id) {
			return i
		}
	}
	return -1
}

// partitionStatus maps a completion-outcome partition to the status an order
// acquires on entering it. Archival is a visibility action, not an outcome:
// moving into the archived partition keeps the order's current status, as does
// moving within active.
func partitionStatus(p order.Partition) (order.Status, bool) {
	switch p {
	case order.PartitionCompleted:
		return order.Completed, true
	case order.PartitionUndelivered:
		return order.Undelivered, true
	default:
		return order.Unknown, false
	}
}
