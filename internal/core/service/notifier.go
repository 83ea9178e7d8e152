package service

import (
	"context"
	"sync"

	pkgerr "github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/rl1809/cafeteria/internal/instrumentation"
	"github.com/rl1809/cafeteria/internal/port"
)

// Notifier fans a message out to its listeners, synchronously and in
// registration order.
type Notifier struct {
	listeners []port.Listener
	mu        sync.RWMutex
	stats     *instrumentation.Collectors
}

func NewNotifier(stats *instrumentation.Collectors) *Notifier {
	return &Notifier{
		listeners: make([]port.Listener, 0),
		stats:     stats,
	}
}

func (n *Notifier) Register(listener port.Listener) {
	if listener == nil {
		log.Warn().Msg("notifier: ignoring nil listener")
		return
	}

	n.mu.Lock()
	n.listeners = append(n.listeners, listener)
	n.mu.Unlock()
}

// Notify stops at the first failing listener and returns its error; the
// listeners after it do not receive the message.
func (n *Notifier) Notify(ctx context.Context, message string) error {
	n.mu.RLock()
	listeners := make([]port.Listener, len(n.listeners))
	copy(listeners, n.listeners)
	n.mu.RUnlock()

	for i, listener := range listeners {
		if err := listener.Receive(ctx, message); err != nil {
			n.stats.ObserveListenerError()
			log.Error().Err(err).Int("listener", i).Str("message", message).Msg("notifier: delivery aborted")
			return pkgerr.Wrapf(err, "listener %d", i)
		}
	}

	return nil
}

func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners)
}
