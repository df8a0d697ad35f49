package ws

import (
	"time"

	"orderboard/internal/core/domain/model/order"
)

// OrderView is the wire shape of one order. The creator-supplied payload
// fields sit at the top level next to the board-assigned ones, exactly as the
// displays consume them.
type OrderView struct {
	ID            string           `json:"id"`
	OrderNumber   int64            `json:"orderNumber"`
	Status        string           `json:"status"`
	Timestamp     time.Time        `json:"timestamp"`
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	CarModel      string           `json:"carModel"`
	CarColor      string           `json:"carColor"`
	Branch        string           `json:"branch"`
	Items         []order.LineItem `json:"items"`
	TotalPrice    float64          `json:"totalPrice"`
}

// NewOrderView flattens a domain order into its wire shape.
func NewOrderView(o *order.Order) OrderView {
	payload := o.Payload()
	return OrderView{
		ID:            o.ID().String(),
		OrderNumber:   o.OrderNumber(),
		Status:        o.Status().String(),
		Timestamp:     o.CreatedAt(),
		CustomerName:  payload.CustomerName,
		CustomerPhone: payload.CustomerPhone,
		CarModel:      payload.CarModel,
		CarColor:      payload.CarColor,
		Branch:        payload.Branch,
		Items:         payload.Items,
		TotalPrice:    payload.TotalPrice,
	}
}

// NewOrderViews flattens a partition snapshot, preserving insertion order.
func NewOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views
}

// toWire converts the shapes the application layer hands out (snapshots and
// single orders) into their views. Anything else passes through unchanged.
func toWire(data any) any {
	switch v := data.(type) {
	case []*order.Order:
		return NewOrderViews(v)
	case *order.Order:
		return NewOrderView(v)
	default:
		return data
	}
}
