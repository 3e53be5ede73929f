package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Message types received from clients.
const (
	messageTypeSubscribeOrder = "subscribe_order"
	messageTypePing           = "ping"
)

// clientMessage is the envelope clients send over the websocket.
type clientMessage struct {
	Type    string `json:"type"`
	OrderID string `json:"order_id"`
}

// Gateway upgrades HTTP requests to websocket connections and runs their
// read loop. The connection's role comes from the URL path; the only inbound
// messages are order subscriptions and pings, everything else flows outward
// through the Registry.
type Gateway struct {
	registry *Registry
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewGateway creates a websocket gateway on top of the given registry.
func NewGateway(registry *Registry, logger *slog.Logger) *Gateway {
	return &Gateway{
		registry: registry,
		upgrader: websocket.Upgrader{
			// Browser clients connect from a separately hosted frontend.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		logger: logger.With("component", "ws_gateway"),
	}
}

// Handle serves GET /ws/:role. Unknown roles are rejected with 400 before the
// upgrade; after the upgrade the connection is registered and its read loop
// runs until the client disconnects.
func (g *Gateway) Handle(c echo.Context) error {
	role, err := ParseRole(c.Param("role"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown role: "+c.Param("role"))
	}

	socket, err := g.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written its own error response.
		return nil
	}

	conn := newGorillaConn(socket)
	g.registry.Register(role, conn)
	g.logger.Info("Client connected", "role", role)

	defer func() {
		g.registry.Unregister(role, conn)
		_ = conn.Close()
		g.logger.Info("Client disconnected", "role", role)
	}()

	for {
		_, payload, readErr := socket.ReadMessage()
		if readErr != nil {
			return nil
		}

		g.handleMessage(conn, payload)
	}
}

// handleMessage dispatches one inbound client message.
// Malformed or unknown messages get an error reply instead of closing the
// connection; a client bug should not cost it its subscriptions.
func (g *Gateway) handleMessage(conn Conn, payload []byte) {
	var msg clientMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		g.sendError(conn, "invalid message")
		return
	}

	switch msg.Type {
	case messageTypeSubscribeOrder:
		if msg.OrderID == "" {
			g.sendError(conn, "order_id is required")
			return
		}

		orderID, err := kernel.UUIDFromString(msg.OrderID)
		if err != nil {
			g.sendError(conn, "invalid order id format")
			return
		}

		g.registry.SubscribeToOrder(orderID.String(), conn)
		g.reply(conn, map[string]any{
			"type":     "subscribed",
			"order_id": msg.OrderID,
		})

	case messageTypePing:
		g.reply(conn, map[string]any{"type": "pong"})

	default:
		g.sendError(conn, "unknown message type: "+msg.Type)
	}
}

func (g *Gateway) sendError(conn Conn, message string) {
	g.reply(conn, map[string]any{
		"type":    "error",
		"message": message,
	})
}

// reply sends a message to a single connection. Failures are left to the read
// loop: a dead socket terminates its own loop and gets unregistered there.
func (g *Gateway) reply(conn Conn, message map[string]any) {
	payload, err := json.Marshal(message)
	if err != nil {
		g.logger.Error("Failed to serialize reply", "error", err)
		return
	}

	_ = conn.Send(payload)
}
