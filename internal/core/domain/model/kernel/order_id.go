package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"orderboard/internal/pkg/errs"
)

// OrderIDPrefix is the fixed, human-recognizable prefix of every order id.
const OrderIDPrefix = "ORD-"

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// NewOrderID or OrderIDFromString.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString")

// OrderID is the identity of an order on the board. It is derived from the
// board's monotonic order counter: the string form is OrderIDPrefix followed
// by the order number ("ORD-1000"). Counter numbers are never reused, so an
// OrderID is unique for the lifetime of the process.
//
// The zero value is invalid; construct through NewOrderID or OrderIDFromString.
// OrderID is immutable and safe to copy.
type OrderID struct {
	number int64
}

// NewOrderID derives an order id from an order number. The number must be
// positive; the registry hands out numbers starting at its configured base.
func NewOrderID(number int64) (OrderID, error) {
	if number <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"orderNumber", fmt.Errorf("%d is not greater than 0", number))
	}
	return OrderID{number: number}, nil
}

// OrderIDFromString parses the canonical "ORD-<number>" form. Used when an id
// arrives over the wire from a client event.
func OrderIDFromString(s string) (OrderID, error) {
	raw, ok := strings.CutPrefix(s, OrderIDPrefix)
	if !ok {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%q does not start with %q", s, OrderIDPrefix))
	}

	number, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	return NewOrderID(number)
}

// String returns the canonical wire form of the id.
func (id OrderID) String() string {
	return OrderIDPrefix + strconv.FormatInt(id.number, 10)
}

// Number returns the order counter value the id was derived from.
func (id OrderID) Number() int64 {
	return id.number
}

// IsEqual compares two order ids by their underlying number.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.number == other.number
}

// Validate returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if id.number <= 0 {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
