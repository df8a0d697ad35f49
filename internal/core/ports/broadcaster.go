package ports

// Wire event names of the board protocol. Server-to-client events carry either
// a full partition snapshot or a single order; client-to-server events are
// routed by the connection gateway.
const (
	// Server → client.
	EventInitialOrders     = "initial-orders"
	EventCompletedOrders   = "completed-orders"
	EventUndeliveredOrders = "undelivered-orders"
	EventOrderConfirmed    = "order-confirmed"
	EventOrderUpdate       = "order-update"
	EventOrderStatusUpdate = "order-status-update"

	// Client → server.
	EventNewOrder           = "new-order"
	EventUpdateStatus       = "update-status"
	EventArchiveOrder       = "archive-order"
	EventDeleteOrder        = "delete-order"
	EventCancelOrder        = "cancel-order"
	EventClearCompleted     = "clear-completed"
	EventClearUndelivered   = "clear-undelivered"
	EventRequestOrderStatus = "request-order-status"
)

// Session is one connected actor (customer, cashier or kitchen display).
// Send queues an event for delivery to this session only.
type Session interface {
	// ID identifies the session for logging.
	ID() string

	// Send serializes data and queues it for this session. Data is either a
	// partition snapshot ([]*order.Order), a single *order.Order, or a plain
	// value such as an order id string.
	Send(event string, data any) error
}

// Broadcaster pushes an event to every currently connected session. The
// implementation owns the subscriber set; sessions subscribe on connect and
// are dropped on disconnect. Every mutating operation on the registry is
// followed, within the same logical step, by broadcasts carrying the full
// updated snapshots of the partitions it touched.
type Broadcaster interface {
	Broadcast(event string, data any)
}
