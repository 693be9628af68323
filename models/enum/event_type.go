package enum

// EventType identifies a storefront domain event.
type EventType string

const (
	EventTypeOrderSubmitted EventType = "order.submitted"
	EventTypeCartCleared    EventType = "cart.cleared"
)
