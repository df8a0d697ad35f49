package memory_test

import (
	"testing"
	"time"

	"orderboard/internal/adapters/out/memory"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrder(t *testing.T, r *memory.Registry) *order.Order {
	t.Helper()

	id, err := kernel.NewOrderID(r.NextOrderNumber())
	require.NoError(t, err)

	o, err := order.NewOrder(id, order.Payload{CustomerName: "Huda"}, time.Now())
	require.NoError(t, err)
	require.NoError(t, r.InsertActive(o))
	return o
}

func TestRegistry_NextOrderNumber(t *testing.T) {
	t.Run("starts at the configured base and increases strictly", func(t *testing.T) {
		r := memory.NewRegistry(1000)

		assert.Equal(t, int64(1000), r.NextOrderNumber())
		assert.Equal(t, int64(1001), r.NextOrderNumber())
		assert.Equal(t, int64(1002), r.NextOrderNumber())
	})

	t.Run("non-positive base falls back to default", func(t *testing.T) {
		r := memory.NewRegistry(0)
		assert.Equal(t, int64(memory.DefaultCounterBase), r.NextOrderNumber())
	})
}

func TestRegistry_InsertActive(t *testing.T) {
	r := memory.NewRegistry(1000)

	a := placeOrder(t, r)
	b := placeOrder(t, r)

	t.Run("keeps insertion order in the active snapshot", func(t *testing.T) {
		snapshot := r.Snapshot(order.PartitionActive)
		require.Len(t, snapshot, 2)
		assert.True(t, snapshot[0].IsEqual(a))
		assert.True(t, snapshot[1].IsEqual(b))
	})

	t.Run("rejects unconstructed orders", func(t *testing.T) {
		require.Error(t, r.InsertActive(&order.Order{}))
	})
}

func TestRegistry_FindAnyPartition(t *testing.T) {
	r := memory.NewRegistry(1000)
	a := placeOrder(t, r)

	t.Run("finds active orders", func(t *testing.T) {
		found, p, err := r.FindAnyPartition(a.ID())
		require.NoError(t, err)
		assert.Equal(t, order.PartitionActive, p)
		assert.True(t, found.IsEqual(a))
	})

	t.Run("finds orders after a partition move", func(t *testing.T) {
		require.NoError(t, r.MoveTo(a.ID(), order.PartitionActive, order.PartitionCompleted))

		found, p, err := r.FindAnyPartition(a.ID())
		require.NoError(t, err)
		assert.Equal(t, order.PartitionCompleted, p)
		assert.Equal(t, order.Completed, found.Status())
	})

	t.Run("unknown id yields ObjectNotFound", func(t *testing.T) {
		missing, _ := kernel.NewOrderID(9999)

		_, _, err := r.FindAnyPartition(missing)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestRegistry_MoveTo(t *testing.T) {
	r := memory.NewRegistry(1000)
	a := placeOrder(t, r)
	b := placeOrder(t, r)

	t.Run("moves order and updates status", func(t *testing.T) {
		require.NoError(t, r.MoveTo(a.ID(), order.PartitionActive, order.PartitionUndelivered))

		assert.Len(t, r.Snapshot(order.PartitionActive), 1)
		undelivered := r.Snapshot(order.PartitionUndelivered)
		require.Len(t, undelivered, 1)
		assert.True(t, undelivered[0].IsEqual(a))
		assert.Equal(t, order.Undelivered, undelivered[0].Status())
	})

	t.Run("archival keeps the pre-archive status", func(t *testing.T) {
		require.NoError(t, b.ChangeStatus(order.Ready))
		require.NoError(t, r.MoveTo(b.ID(), order.PartitionActive, order.PartitionArchived))

		archived := r.Snapshot(order.PartitionArchived)
		require.Len(t, archived, 1)
		assert.Equal(t, order.Ready, archived[0].Status())
	})

	t.Run("missing id is reported and leaves partitions untouched", func(t *testing.T) {
		missing, _ := kernel.NewOrderID(9999)

		err := r.MoveTo(missing, order.PartitionActive, order.PartitionCompleted)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Empty(t, r.Snapshot(order.PartitionActive))
		assert.Len(t, r.Snapshot(order.PartitionUndelivered), 1)
		assert.Len(t, r.Snapshot(order.PartitionArchived), 1)
	})

	t.Run("id never appears in two partitions", func(t *testing.T) {
		for _, o := range []*order.Order{a, b} {
			owners := 0
			for _, p := range order.ScanOrder() {
				for _, held := range r.Snapshot(p) {
					if held.IsEqual(o) {
						owners++
					}
				}
			}
			assert.Equal(t, 1, owners, "order %s", o.ID())
		}
	})
}

func TestRegistry_RemoveEverywhere(t *testing.T) {
	r := memory.NewRegistry(1000)
	a := placeOrder(t, r)
	b := placeOrder(t, r)
	require.NoError(t, r.MoveTo(b.ID(), order.PartitionActive, order.PartitionCompleted))

	r.RemoveEverywhere(a.ID())
	r.RemoveEverywhere(b.ID())

	for _, p := range order.ScanOrder() {
		assert.Empty(t, r.Snapshot(p), "partition %s", p)
	}

	t.Run("removal is idempotent", func(t *testing.T) {
		r.RemoveEverywhere(a.ID()) // second call, already gone
		assert.Empty(t, r.Snapshot(order.PartitionActive))
	})
}

func TestRegistry_Clear(t *testing.T) {
	r := memory.NewRegistry(1000)
	a := placeOrder(t, r)
	placeOrder(t, r)
	require.NoError(t, r.MoveTo(a.ID(), order.PartitionActive, order.PartitionCompleted))

	r.Clear(order.PartitionCompleted)

	assert.Empty(t, r.Snapshot(order.PartitionCompleted))
	assert.Len(t, r.Snapshot(order.PartitionActive), 1)
}

func TestRegistry_SnapshotIsACopy(t *testing.T) {
	r := memory.NewRegistry(1000)
	placeOrder(t, r)

	snapshot := r.Snapshot(order.PartitionActive)
	snapshot[0] = nil

	assert.NotNil(t, r.Snapshot(order.PartitionActive)[0])
}
