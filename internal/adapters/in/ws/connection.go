package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Conn is the registry's view of a websocket connection: it can be written to
// and closed. The indirection keeps the registry testable without sockets.
type Conn interface {
	// Send writes one text message to the client.
	// A non-nil error marks the connection as dead; the registry prunes it.
	Send(payload []byte) error

	// Close tears the connection down. Safe to call more than once.
	Close() error
}

// gorillaConn adapts a gorilla websocket connection to Conn.
// gorilla permits at most one concurrent writer per connection, so writes are
// serialized with a mutex: a client can receive a role broadcast and an order
// subscription update at the same moment.
type gorillaConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// newGorillaConn wraps a gorilla websocket connection.
func newGorillaConn(conn *websocket.Conn) *gorillaConn {
	return &gorillaConn{conn: conn}
}

func (c *gorillaConn) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

func (c *gorillaConn) Close() error {
	return c.conn.Close()
}
