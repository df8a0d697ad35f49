// Package queries contains the read operations of the application: the board
// recovery and snapshot reads against the in-memory registry, and the admin
// read models served straight from the relational store.
package queries

import (
	"errors"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery is a reconnecting customer asking where its order went.
// The answer goes back to the asking session only; other sessions never see
// the exchange.
type GetOrderStatusQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a recovery query for orderID.
func NewGetOrderStatusQuery(orderID kernel.OrderID) (GetOrderStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the id being asked about.
func (q GetOrderStatusQuery) OrderID() kernel.OrderID {
	return q.orderID
}
