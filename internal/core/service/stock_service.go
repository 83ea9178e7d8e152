package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/rl1809/cafeteria/internal/core/domain"
	"github.com/rl1809/cafeteria/internal/instrumentation"
	"github.com/rl1809/cafeteria/internal/port"
)

// StockService owns a stock and reports every add or remove attempt to the
// notifier before returning.
type StockService struct {
	stock    *domain.Stock
	mu       sync.RWMutex
	notifier port.Notifier
	stats    *instrumentation.Collectors
}

func NewStockService(label string, items []string, notifier port.Notifier, stats *instrumentation.Collectors) *StockService {
	return &StockService{
		stock:    domain.NewStock(label, items),
		notifier: notifier,
		stats:    stats,
	}
}

// AddItem always stores name; the only possible error comes from a listener.
func (s *StockService) AddItem(ctx context.Context, name string) error {
	s.mu.Lock()
	s.stock.Add(name)
	count := s.stock.Len()
	s.mu.Unlock()

	return s.emit(ctx, domain.StockEvent{Kind: domain.EventItemAdded, Item: name}, count)
}

// RemoveItem drops the first occurrence of name. A missing item is reported
// through a not-found notification, never as an error.
func (s *StockService) RemoveItem(ctx context.Context, name string) error {
	s.mu.Lock()
	removed := s.stock.Remove(name)
	count := s.stock.Len()
	s.mu.Unlock()

	kind := domain.EventItemRemoved
	if !removed {
		kind = domain.EventItemNotFound
	}

	return s.emit(ctx, domain.StockEvent{Kind: kind, Item: name}, count)
}

// emit runs without holding the stock lock so listeners may read the stock back.
func (s *StockService) emit(ctx context.Context, event domain.StockEvent, count int) error {
	s.stats.ObserveEvent(s.stock.Label, string(event.Kind), count)
	log.Debug().
		Str("store", s.stock.Label).
		Str("kind", string(event.Kind)).
		Str("item", event.Item).
		Int("items", count).
		Msg("stock event")

	return s.notifier.Notify(ctx, event.Message())
}

func (s *StockService) Label() string {
	return s.stock.Label
}

func (s *StockService) Items() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stock.Items()
}

func (s *StockService) Snapshot() domain.StockSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stock.Snapshot()
}

func (s *StockService) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stock.String()
}
