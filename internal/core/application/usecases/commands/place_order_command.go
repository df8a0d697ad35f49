package commands

import (
	"errors"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer's creation request as it arrives
// from the checkout form. The payload is carried through without schema
// validation; the board trusts the checkout form and accepts partially
// populated orders.
type PlaceOrderCommand struct {
	payload order.Payload

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command wrapping the checkout payload.
func NewPlaceOrderCommand(payload order.Payload) (PlaceOrderCommand, error) {
	return PlaceOrderCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Payload returns the checkout payload.
func (c PlaceOrderCommand) Payload() order.Payload {
	return c.payload
}
