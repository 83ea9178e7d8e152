package service

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/rl1809/cafeteria/internal/instrumentation"
	"github.com/rl1809/cafeteria/internal/port"
)

// StockProvider hands out one shared StockService. The first Initialize call
// decides label and initial items; later calls get the same service back and
// their arguments are ignored.
type StockProvider struct {
	notifier port.Notifier
	stats    *instrumentation.Collectors

	mu      sync.Mutex
	service *StockService
}

func NewStockProvider(notifier port.Notifier, stats *instrumentation.Collectors) *StockProvider {
	return &StockProvider{
		notifier: notifier,
		stats:    stats,
	}
}

func (p *StockProvider) Initialize(label string, items []string) *StockService {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.service != nil {
		if label != p.service.Label() {
			log.Debug().
				Str("store", p.service.Label()).
				Str("ignored_label", label).
				Msg("stock already initialized, arguments ignored")
		}
		return p.service
	}

	p.service = NewStockService(label, items, p.notifier, p.stats)
	log.Info().Str("store", label).Int("items", len(items)).Msg("stock initialized")
	return p.service
}

func (p *StockProvider) Current() (*StockService, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.service, p.service != nil
}
