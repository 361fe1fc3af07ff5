package services

// Table names carried in change-notification events. Consumers treat
// any event as "refetch that table from scratch" — no incremental
// patching, no ordering or delivery guarantees assumed.
const (
	TableMenu     = "menu"
	TableOrders   = "orders"
	TableSettings = "settings"
)

// Publisher pushes a refresh hint to connected clients after a write.
// The websocket hub implements it; tests pass nil or a recorder.
type Publisher interface {
	Publish(table string)
}
