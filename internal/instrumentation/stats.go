package instrumentation

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Collectors struct {
	EventsCounter         *prometheus.CounterVec
	ItemsGauge            *prometheus.GaugeVec
	ListenerErrorsCounter prometheus.Counter
}

func NewCollectors() *Collectors {
	return &Collectors{
		EventsCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cafeteria",
			Subsystem: "stock",
			Name:      "events_total",
			Help:      "Stock notifications emitted",
		}, []string{
			// stock label
			"store",
			// added, removed, not_found
			"kind",
		}),

		ItemsGauge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "cafeteria",
			Subsystem: "stock",
			Name:      "items",
			Help:      "Items currently held in stock",
		}, []string{"store"}),

		ListenerErrorsCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cafeteria",
			Subsystem: "notifier",
			Name:      "listener_errors_total",
			Help:      "Listener failures that aborted a notification",
		}),
	}
}

func (c *Collectors) Register(reg prometheus.Registerer) error {
	for _, collector := range []prometheus.Collector{c.EventsCounter, c.ItemsGauge, c.ListenerErrorsCounter} {
		if err := reg.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// ObserveEvent is a no-op on a nil receiver so metrics stay optional.
func (c *Collectors) ObserveEvent(store, kind string, items int) {
	if c == nil {
		return
	}
	c.EventsCounter.WithLabelValues(store, kind).Inc()
	c.ItemsGauge.WithLabelValues(store).Set(float64(items))
}

func (c *Collectors) ObserveListenerError() {
	if c == nil {
		return
	}
	c.ListenerErrorsCounter.Inc()
}

func (c *Collectors) Reset() {
	c.EventsCounter.Reset()
	c.ItemsGauge.Reset()
}
