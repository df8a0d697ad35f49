package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"

	"github.com/gorilla/websocket"
)

// UseCases bundles the application handlers the gateway routes to.
type UseCases struct {
	PlaceOrder         commands.PlaceOrderCommandHandler
	UpdateStatus       commands.UpdateOrderStatusCommandHandler
	ArchiveOrder       commands.ArchiveOrderCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	ClearPartition     commands.ClearPartitionCommandHandler
	GetOrderStatus     queries.GetOrderStatusQueryHandler
	GetPartitionOrders queries.GetPartitionOrdersQueryHandler
}

// Gateway upgrades connections, seeds new sessions with the current
// snapshots, and routes inbound events to the use case handlers.
//
// All event handling runs under one mutex: a handler sees the registry
// exactly as the previous event left it, and its broadcasts complete before
// the next event starts. Connection registration (seed plus hub subscription)
// takes the same mutex, so a joining session can never observe a half-applied
// mutation and never sits seeded-but-unsubscribed while a broadcast goes out.
type Gateway struct {
	hub      *Hub
	useCases UseCases
	upgrader websocket.Upgrader
	logger   *slog.Logger

	dispatchMu sync.Mutex
}

// NewGateway creates a gateway fanning out through hub.
func NewGateway(hub *Hub, useCases UseCases, logger *slog.Logger) *Gateway {
	return &Gateway{
		hub:      hub,
		useCases: useCases,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// The board is served to kiosk displays and the public checkout
			// page; origin checks happen at the proxy.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		logger: logger.With("component", "ws_gateway"),
	}
}

// HandleConnection upgrades the request and runs the session until the peer
// disconnects.
func (g *Gateway) HandleConnection(w http.ResponseWriter, r *http.Request) error {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	session := NewSession(conn, g.logger)
	g.logger.Info("Session connected", "sessionId", session.ID(), "remote", conn.RemoteAddr().String())

	g.register(r.Context(), session)

	defer func() {
		g.hub.Unsubscribe(session)
		session.Close()
		g.logger.Info("Session disconnected", "sessionId", session.ID())
	}()

	conn.SetReadLimit(1 << 20)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.logger.Debug("Read failed", "sessionId", session.ID(), "error", err)
			}
			return nil
		}

		var envelope Envelope
		if err = json.Unmarshal(frame, &envelope); err != nil {
			g.logger.Warn("Malformed frame ignored", "sessionId", session.ID(), "error", err)
			continue
		}

		g.dispatch(r.Context(), session, envelope)
	}
}

// register pushes the three initial snapshots to a joining session and
// subscribes it to the hub, all under the dispatch mutex. No mutation can
// broadcast between the seed and the subscription, so a joining session either
// sees a change in its seed or receives its broadcast later, never neither.
func (g *Gateway) register(ctx context.Context, session *Session) {
	g.dispatchMu.Lock()
	defer g.dispatchMu.Unlock()

	seeds := []struct {
		partition order.Partition
		event     string
	}{
		{order.PartitionActive, ports.EventInitialOrders},
		{order.PartitionCompleted, ports.EventCompletedOrders},
		{order.PartitionUndelivered, ports.EventUndeliveredOrders},
	}

	for _, seed := range seeds {
		partition, event := seed.partition, seed.event
		query, err := queries.NewGetPartitionOrdersQuery(partition)
		if err != nil {
			continue
		}

		snapshot, err := g.useCases.GetPartitionOrders.Handle(ctx, query)
		if err != nil {
			g.logger.Error("Snapshot read failed", "partition", partition.String(), "error", err)
			continue
		}

		_ = session.Send(event, snapshot)
	}

	g.hub.Subscribe(session)
}

// dispatch routes one inbound event under the serialization mutex. Bad input
// never reaches the handlers: it is logged and dropped, matching the board's
// silent no-op contract.
func (g *Gateway) dispatch(ctx context.Context, session *Session, envelope Envelope) {
	g.dispatchMu.Lock()
	defer g.dispatchMu.Unlock()

	var err error
	switch envelope.Event {
	case ports.EventNewOrder:
		err = g.handleNewOrder(ctx, session, envelope.Data)
	case ports.EventUpdateStatus:
		err = g.handleUpdateStatus(ctx, envelope.Data)
	case ports.EventArchiveOrder:
		err = g.handleArchiveOrder(ctx, envelope.Data)
	case ports.EventDeleteOrder:
		err = g.handleDeleteOrder(ctx, envelope.Data)
	case ports.EventCancelOrder:
		err = g.handleCancelOrder(ctx, envelope.Data)
	case ports.EventClearCompleted:
		err = g.handleClearPartition(ctx, order.PartitionCompleted)
	case ports.EventClearUndelivered:
		err = g.handleClearPartition(ctx, order.PartitionUndelivered)
	case ports.EventRequestOrderStatus:
		err = g.handleRequestOrderStatus(ctx, session, envelope.Data)
	default:
		g.logger.Warn("Unknown event ignored", "sessionId", session.ID(), "event", envelope.Event)
		return
	}

	if err != nil {
		g.logger.Warn("Event handling failed",
			"sessionId", session.ID(), "event", envelope.Event, "error", err)
	}
}

func (g *Gateway) handleNewOrder(ctx context.Context, session *Session, data json.RawMessage) error {
	var payload order.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}

	cmd, err := commands.NewPlaceOrderCommand(payload)
	if err != nil {
		return err
	}

	_, err = g.useCases.PlaceOrder.Handle(ctx, cmd, session)
	return err
}

func (g *Gateway) handleUpdateStatus(ctx context.Context, data json.RawMessage) error {
	var req updateStatusRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return err
	}

	orderID, err := kernel.OrderIDFromString(req.OrderID)
	if err != nil {
		return err
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return err
	}

	return g.useCases.UpdateStatus.Handle(ctx, cmd)
}

func (g *Gateway) handleArchiveOrder(ctx context.Context, data json.RawMessage) error {
	orderID, err := g.parseOrderID(data)
	if err != nil {
		return err
	}

	cmd, err := commands.NewArchiveOrderCommand(orderID)
	if err != nil {
		return err
	}

	return g.useCases.ArchiveOrder.Handle(ctx, cmd)
}

func (g *Gateway) handleDeleteOrder(ctx context.Context, data json.RawMessage) error {
	orderID, err := g.parseOrderID(data)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return err
	}

	return g.useCases.DeleteOrder.Handle(ctx, cmd)
}

func (g *Gateway) handleCancelOrder(ctx context.Context, data json.RawMessage) error {
	orderID, err := g.parseOrderID(data)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return err
	}

	return g.useCases.CancelOrder.Handle(ctx, cmd)
}

func (g *Gateway) handleClearPartition(ctx context.Context, partition order.Partition) error {
	cmd, err := commands.NewClearPartitionCommand(partition)
	if err != nil {
		return err
	}

	return g.useCases.ClearPartition.Handle(ctx, cmd)
}

func (g *Gateway) handleRequestOrderStatus(ctx context.Context, session *Session, data json.RawMessage) error {
	orderID, err := g.parseOrderID(data)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return err
	}

	return g.useCases.GetOrderStatus.Handle(ctx, query, session)
}

func (g *Gateway) parseOrderID(data json.RawMessage) (kernel.OrderID, error) {
	raw, err := decodeOrderID(data)
	if err != nil {
		return kernel.OrderID{}, err
	}
	return kernel.OrderIDFromString(raw)
}
