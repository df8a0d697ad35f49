package order_test

import (
	"encoding/json"
	"testing"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_WireValues(t *testing.T) {
	cases := map[order.Status]string{
		order.Pending:     "pending",
		order.Preparing:   "preparing",
		order.Ready:       "ready",
		order.Completed:   "completed",
		order.Undelivered: "undelivered",
		order.Archived:    "archived",
	}

	for status, wire := range cases {
		assert.Equal(t, wire, status.String())

		parsed, err := order.StatusFromString(wire)
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}
}

func TestStatusFromString_Invalid(t *testing.T) {
	for _, raw := range []string{"", "unknown", "PENDING", "done"} {
		_, err := order.StatusFromString(raw)
		require.Error(t, err, "input %q", raw)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("defined statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Preparing, order.Ready,
			order.Completed, order.Undelivered, order.Archived,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown and out-of-range fail", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(99)} {
			require.Error(t, s.Validate())
		}
	})
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, order.Pending.IsActive())
	assert.True(t, order.Preparing.IsActive())
	assert.True(t, order.Ready.IsActive())
	assert.False(t, order.Completed.IsActive())
	assert.False(t, order.Undelivered.IsActive())
	assert.False(t, order.Archived.IsActive())
}

func TestStatus_TargetPartition(t *testing.T) {
	cases := map[order.Status]order.Partition{
		order.Pending:     order.PartitionActive,
		order.Preparing:   order.PartitionActive,
		order.Ready:       order.PartitionActive,
		order.Completed:   order.PartitionCompleted,
		order.Undelivered: order.PartitionUndelivered,
		order.Archived:    order.PartitionArchived,
	}

	for status, want := range cases {
		got, err := status.TargetPartition()
		require.NoError(t, err)
		assert.Equal(t, want, got, "status %s", status)
	}

	_, err := order.Unknown.TargetPartition()
	require.Error(t, err)
}

func TestStatus_JSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(order.Ready)
	require.NoError(t, err)
	assert.Equal(t, `"ready"`, string(raw))

	var parsed order.Status
	require.NoError(t, json.Unmarshal([]byte(`"undelivered"`), &parsed))
	assert.Equal(t, order.Undelivered, parsed)

	require.Error(t, json.Unmarshal([]byte(`"nope"`), &parsed))
}

func TestPartition_ScanOrder(t *testing.T) {
	// The recovery query depends on this exact priority.
	assert.Equal(t, []order.Partition{
		order.PartitionActive,
		order.PartitionArchived,
		order.PartitionCompleted,
		order.PartitionUndelivered,
	}, order.ScanOrder())
}

func TestPartition_Validate(t *testing.T) {
	for _, p := range order.ScanOrder() {
		require.NoError(t, p.Validate())
	}
	require.Error(t, order.Partition(42).Validate())
}
