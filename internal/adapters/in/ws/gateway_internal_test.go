package ws

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConn struct {
	mu       sync.Mutex
	messages [][]byte
	failing  bool
}

func (c *recordingConn) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failing {
		return errors.New("connection reset")
	}

	c.messages = append(c.messages, payload)
	return nil
}

func (c *recordingConn) Close() error { return nil }

func (c *recordingConn) lastMessage(t *testing.T) map[string]any {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.messages)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(c.messages[len(c.messages)-1], &decoded))
	return decoded
}

func newTestGateway() (*Gateway, *Registry) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := NewRegistry(logger)
	return NewGateway(registry, logger), registry
}

func TestGateway_HandleMessage_Ping(t *testing.T) {
	gateway, _ := newTestGateway()
	conn := &recordingConn{}

	gateway.handleMessage(conn, []byte(`{"type":"ping"}`))

	msg := conn.lastMessage(t)
	assert.Equal(t, "pong", msg["type"])
}

func TestGateway_HandleMessage_SubscribeOrder(t *testing.T) {
	gateway, registry := newTestGateway()
	conn := &recordingConn{}
	registry.Register(RoleCustomers, conn)

	orderID := kernel.NewUUID().String()
	gateway.handleMessage(conn, []byte(`{"type":"subscribe_order","order_id":"`+orderID+`"}`))

	msg := conn.lastMessage(t)
	assert.Equal(t, "subscribed", msg["type"])
	assert.Equal(t, orderID, msg["order_id"])

	// The subscription is live: order updates now reach the connection.
	registry.BroadcastOrderUpdate(orderID, map[string]any{"status": "preparing"})
	msg = conn.lastMessage(t)
	assert.Equal(t, "order_update", msg["type"])
}

func TestGateway_HandleMessage_SubscribeOrder_MissingOrderID(t *testing.T) {
	gateway, _ := newTestGateway()
	conn := &recordingConn{}

	gateway.handleMessage(conn, []byte(`{"type":"subscribe_order"}`))

	msg := conn.lastMessage(t)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "order_id")
}

func TestGateway_HandleMessage_SubscribeOrder_InvalidOrderID(t *testing.T) {
	gateway, registry := newTestGateway()
	conn := &recordingConn{}
	registry.Register(RoleCustomers, conn)

	gateway.handleMessage(conn, []byte(`{"type":"subscribe_order","order_id":"not-a-uuid"}`))

	msg := conn.lastMessage(t)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "invalid order id")

	// No subscription was made: an update for that key does not reach the connection.
	before := len(conn.messages)
	registry.BroadcastOrderUpdate("not-a-uuid", map[string]any{"status": "preparing"})
	assert.Len(t, conn.messages, before)
}

func TestGateway_HandleMessage_MalformedJSON(t *testing.T) {
	gateway, _ := newTestGateway()
	conn := &recordingConn{}

	gateway.handleMessage(conn, []byte(`{not json`))

	msg := conn.lastMessage(t)
	assert.Equal(t, "error", msg["type"])
}

func TestGateway_HandleMessage_UnknownType(t *testing.T) {
	gateway, _ := newTestGateway()
	conn := &recordingConn{}

	gateway.handleMessage(conn, []byte(`{"type":"make_coffee"}`))

	msg := conn.lastMessage(t)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "make_coffee")
}

func TestGateway_HandleMessage_ReplyFailureDoesNotPanic(t *testing.T) {
	gateway, _ := newTestGateway()
	conn := &recordingConn{failing: true}

	gateway.handleMessage(conn, []byte(`{"type":"ping"}`))
}
