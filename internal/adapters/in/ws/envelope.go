// Package ws is the connection gateway of the board. Every actor (customer,
// cashier, kitchen display) holds one persistent websocket; messages in both
// directions are {event, data} envelopes. Inbound events are dispatched one
// at a time under a single mutex, which is the only serialization the
// in-memory registry relies on.
package ws

import "encoding/json"

// Envelope is the wire frame of the board protocol.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// outEnvelope is the outbound counterpart; Data is already a serializable
// view, not raw JSON.
type outEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// updateStatusRequest is the payload of an update-status event.
type updateStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// orderIDRequest is the payload of the id-only events (archive-order,
// delete-order, cancel-order, request-order-status). Clients send either a
// bare id string or an {orderId} object; both are accepted.
type orderIDRequest struct {
	OrderID string `json:"orderId"`
}

func decodeOrderID(data json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s, nil
	}

	var req orderIDRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return "", err
	}
	return req.OrderID, nil
}
