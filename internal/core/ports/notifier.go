package ports

// RealtimeNotifier pushes order and statistics events to connected clients.
//
// All methods are fire-and-forget: they never return errors, never block the
// caller on delivery, and delivery failures are handled internally by the
// implementation (failed connections are pruned, not retried). Callers invoke
// them from background goroutines after the triggering request has already
// been answered.
type RealtimeNotifier interface {
	// BroadcastNewOrder announces a freshly created order to staff and admin clients.
	BroadcastNewOrder(orderData any)

	// BroadcastOrderUpdate announces an order change (including cancellation)
	// to staff and admin clients plus any client subscribed to that order id.
	BroadcastOrderUpdate(orderID string, orderData any)

	// BroadcastStatisticsUpdate pushes refreshed per-status order counts to admin clients.
	BroadcastStatisticsUpdate(stats map[string]int)
}
