package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// Message types pushed to clients.
const (
	messageTypeNewOrder         = "new_order"
	messageTypeOrderUpdate      = "order_update"
	messageTypeStatisticsUpdate = "statistics_update"
)

// Registry tracks live websocket connections grouped by role plus per-order
// subscriber sets, and broadcasts events to them. It implements
// ports.RealtimeNotifier.
//
// Broadcasts are best effort: the payload is serialized once, delivery is
// attempted to every target, and connections whose send fails are pruned from
// all sets and closed. A slow or dead client never fails the broadcast for
// the others.
type Registry struct {
	mu               sync.RWMutex
	roles            map[Role]map[Conn]struct{}
	orderSubscribers map[string]map[Conn]struct{}

	logger *slog.Logger
}

// NewRegistry creates an empty connection registry.
func NewRegistry(logger *slog.Logger) *Registry {
	roles := make(map[Role]map[Conn]struct{}, len(Roles()))
	for _, role := range Roles() {
		roles[role] = make(map[Conn]struct{})
	}

	return &Registry{
		roles:            roles,
		orderSubscribers: make(map[string]map[Conn]struct{}),
		logger:           logger.With("component", "connection_registry"),
	}
}

// Register adds a connection to its role set.
func (r *Registry) Register(role Role, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.roles[role][conn] = struct{}{}
}

// Unregister removes a connection from its role set and from every order
// subscription it holds. Empty subscriber sets are deleted so the map does
// not grow with completed orders.
func (r *Registry) Unregister(role Role, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.remove(role, conn)
}

// SubscribeToOrder adds the connection to the subscriber set of the given
// order id, creating the set on first use. Any connected client may subscribe
// to any order id, including ids that do not exist yet.
func (r *Registry) SubscribeToOrder(orderID string, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subscribers, ok := r.orderSubscribers[orderID]
	if !ok {
		subscribers = make(map[Conn]struct{})
		r.orderSubscribers[orderID] = subscribers
	}
	subscribers[conn] = struct{}{}
}

// ConnectionCount reports the number of connections registered for the role.
func (r *Registry) ConnectionCount(role Role) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.roles[role])
}

// BroadcastNewOrder announces a freshly created order to staff and admin clients.
func (r *Registry) BroadcastNewOrder(orderData any) {
	r.broadcast(map[string]any{
		"type": messageTypeNewOrder,
		"data": orderData,
	}, r.collectRoles(RoleStaff, RoleAdmin))
}

// BroadcastOrderUpdate announces an order change to staff and admin clients
// plus any client subscribed to that order id.
func (r *Registry) BroadcastOrderUpdate(orderID string, orderData any) {
	targets := r.collectRoles(RoleStaff, RoleAdmin)

	r.mu.RLock()
	for conn := range r.orderSubscribers[orderID] {
		targets[conn] = struct{}{}
	}
	r.mu.RUnlock()

	r.broadcast(map[string]any{
		"type":     messageTypeOrderUpdate,
		"order_id": orderID,
		"data":     orderData,
	}, targets)
}

// BroadcastStatisticsUpdate pushes refreshed per-status order counts to admin clients.
func (r *Registry) BroadcastStatisticsUpdate(stats map[string]int) {
	r.broadcast(map[string]any{
		"type": messageTypeStatisticsUpdate,
		"data": stats,
	}, r.collectRoles(RoleAdmin))
}

// collectRoles snapshots the connections of the given roles into a target set.
// Deduplicates connections that appear in more than one collection.
func (r *Registry) collectRoles(roles ...Role) map[Conn]struct{} {
	targets := make(map[Conn]struct{})

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, role := range roles {
		for conn := range r.roles[role] {
			targets[conn] = struct{}{}
		}
	}

	return targets
}

// broadcast serializes the message once and sends it to every target.
// Connections whose send fails are pruned afterwards; the pass itself never
// stops early.
func (r *Registry) broadcast(message map[string]any, targets map[Conn]struct{}) {
	if len(targets) == 0 {
		return
	}

	payload, err := json.Marshal(message)
	if err != nil {
		r.logger.ErrorContext(context.Background(), "Failed to serialize broadcast message", "error", err)
		return
	}

	var failed []Conn
	for conn := range targets {
		if sendErr := conn.Send(payload); sendErr != nil {
			failed = append(failed, conn)
		}
	}

	if len(failed) > 0 {
		r.prune(failed)
	}
}

// prune drops dead connections from every set and closes them.
func (r *Registry) prune(dead []Conn) {
	r.mu.Lock()
	for _, conn := range dead {
		for _, role := range Roles() {
			r.remove(role, conn)
		}
	}
	r.mu.Unlock()

	for _, conn := range dead {
		_ = conn.Close()
	}

	r.logger.InfoContext(context.Background(), "Pruned dead connections", "count", len(dead))
}

// remove deletes the connection from one role set and all order subscriptions.
// Caller must hold the write lock.
func (r *Registry) remove(role Role, conn Conn) {
	delete(r.roles[role], conn)

	for orderID, subscribers := range r.orderSubscribers {
		delete(subscribers, conn)
		if len(subscribers) == 0 {
			delete(r.orderSubscribers, orderID)
		}
	}
}
