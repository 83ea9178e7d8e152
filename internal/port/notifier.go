package port

import "context"

type Notifier interface {
	// Register appends a listener; duplicates are kept and delivered to once per registration
	Register(listener Listener)

	// Notify delivers message to every listener in registration order before returning
	Notify(ctx context.Context, message string) error
}
