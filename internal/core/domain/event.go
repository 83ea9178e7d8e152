package domain

type EventKind string

const (
	EventItemAdded    EventKind = "added"
	EventItemRemoved  EventKind = "removed"
	EventItemNotFound EventKind = "not_found"
)

// StockEvent describes the outcome of one add or remove attempt.
type StockEvent struct {
	Kind EventKind
	Item string
}

// Message renders the notification text delivered to listeners.
func (e StockEvent) Message() string {
	switch e.Kind {
	case EventItemAdded:
		return "Producto agregado: " + e.Item
	case EventItemRemoved:
		return "Producto eliminado: " + e.Item
	case EventItemNotFound:
		return "Producto no encontrado: " + e.Item
	}
	return string(e.Kind) + ": " + e.Item
}
