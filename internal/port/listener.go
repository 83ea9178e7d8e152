package port

import "context"

type Listener interface {
	// Receive handles one notification message; a returned error stops delivery to later listeners
	Receive(ctx context.Context, message string) error
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(ctx context.Context, message string) error

func (f ListenerFunc) Receive(ctx context.Context, message string) error {
	return f(ctx, message)
}
