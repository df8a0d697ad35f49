package order

import (
	"encoding/json"
	"fmt"

	"orderboard/internal/pkg/errs"
)

// Status represents the lifecycle state of an order on the board.
//
// State transitions:
//
//	pending ──> preparing ──> ready ──┬──> completed
//	   │            │           │     ├──> undelivered
//	   └────────────┴───────────┘     └──> archived
//	 (any in-place move between the three active statuses is allowed)
//
// The three terminal statuses double as partition moves: an order marked
// completed, undelivered or archived leaves the active partition and lands in
// the partition of the same name.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// The zero value helps catch uninitialized Status fields.
	Unknown Status = iota

	// Pending is the initial status assigned at creation.
	Pending

	// Preparing indicates the kitchen has picked the order up.
	Preparing

	// Ready indicates the order is waiting for pickup at the curb.
	Ready

	// Completed indicates the order was handed over. Partition move.
	Completed

	// Undelivered indicates the customer never showed up. Partition move.
	Undelivered

	// Archived hides the order from the main cashier list without recording
	// a completion outcome. Partition move.
	Archived
)

// statusStrings maps statuses to their wire representation. The wire values
// are the ones the browser clients already speak, so they must not change.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Pending:     "pending",
		Preparing:   "preparing",
		Ready:       "ready",
		Completed:   "completed",
		Undelivered: "undelivered",
		Archived:    "archived",
	}
}

func validStatusStrings() map[string]Status {
	return map[string]Status{
		"pending":     Pending,
		"preparing":   Preparing,
		"ready":       Ready,
		"completed":   Completed,
		"undelivered": Undelivered,
		"archived":    Archived,
	}
}

// StatusFromString parses a wire status value.
// Returns an error for anything outside the six known statuses.
func StatusFromString(s string) (Status, error) {
	status, ok := validStatusStrings()[s]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%q is not a valid status", s))
	}
	return status, nil
}

// Validate checks that the status is one of the six defined values.
func (s Status) Validate() error {
	if s < Pending || s > Archived {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the status keeps the order in the active partition.
func (s Status) IsActive() bool {
	return s == Pending || s == Preparing || s == Ready
}

// TargetPartition returns the partition an order carrying this status belongs
// to. Active statuses map to PartitionActive; the terminal statuses map to
// their namesake partitions.
func (s Status) TargetPartition() (Partition, error) {
	switch {
	case s.IsActive():
		return PartitionActive, nil
	case s == Completed:
		return PartitionCompleted, nil
	case s == Undelivered:
		return PartitionUndelivered, nil
	case s == Archived:
		return PartitionArchived, nil
	default:
		return PartitionActive, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d has no partition", s))
	}
}

// MarshalJSON emits the wire string form so snapshots serialize the values the
// clients expect.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses the wire string form.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	status, err := StatusFromString(raw)
	if err != nil {
		return err
	}

	*s = status
	return nil
}
