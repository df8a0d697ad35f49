package order

import (
	"errors"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the unit of work on the board. It is created once by the lifecycle
// controller, mutated in place for status changes within the active partition,
// and moved between partitions for the terminal statuses.
//
// Order maintains these invariants:
//   - id and orderNumber are assigned once at creation and never change
//   - status is always one of the six defined values
//   - createdAt is the wall-clock creation time, for display
//   - orderTime is the monotonic creation instant, for the cancellation
//     window, so wall-clock adjustments cannot widen or shrink the window
type Order struct {
	id          kernel.OrderID
	orderNumber int64
	status      Status
	createdAt   time.Time
	orderTime   time.Time
	payload     Payload

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order stamped at now. The payload is stored
// as supplied without validation.
//
// now should come straight from time.Now: createdAt keeps only its wall-clock
// reading while orderTime keeps the monotonic reading.
func NewOrder(id kernel.OrderID, payload Payload, now time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:          id,
		orderNumber: id.Number(),
		status:      Pending,
		createdAt:   now.Round(0), // Round(0) strips the monotonic reading
		orderTime:   now,
		payload:     payload,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was built through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identity.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// OrderNumber returns the counter value assigned at creation.
func (o *Order) OrderNumber() int64 {
	return o.orderNumber
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the wall-clock creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// OrderTime returns the monotonic creation instant. Only meaningful for
// duration arithmetic such as time.Since.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// Payload returns the creator-supplied order details.
func (o *Order) Payload() Payload {
	return o.payload
}

// ChangeStatus moves the order to newStatus. The caller is responsible for
// the matching partition move; the aggregate only guards against undefined
// status values.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Age returns how long the order has existed, measured against the monotonic
// creation instant.
func (o *Order) Age(now time.Time) time.Duration {
	return now.Sub(o.orderTime)
}
