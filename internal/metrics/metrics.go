// Package metrics defines Prometheus instrumentation for the persistence
// engine. Every method is safe on a nil *Metrics, so callers that do not
// care about instrumentation can pass nil and skip the wiring entirely.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the engine's counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	ordersProcessed  prometheus.Counter
	cartsMerged      prometheus.Counter
	sessionsRepaired prometheus.Counter
	blobsCorrupt     *prometheus.CounterVec
}

// New registers the engine counters on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ordersProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shopfront_orders_processed_total",
			Help: "Orders created by the order processor.",
		}),
		cartsMerged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shopfront_carts_merged_total",
			Help: "Guest-into-account cart merges performed at login.",
		}),
		sessionsRepaired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shopfront_sessions_repaired_total",
			Help: "Orphaned sessions written back into the directory at startup.",
		}),
		blobsCorrupt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shopfront_corrupt_blobs_total",
			Help: "Stored blobs that failed to decode, by storage key.",
		}, []string{"key"}),
	}
	m.registry.MustRegister(m.ordersProcessed, m.cartsMerged, m.sessionsRepaired, m.blobsCorrupt)
	return m
}

// Registry exposes the underlying registry for exposition or test assertions.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// OrderProcessed counts one completed checkout.
func (m *Metrics) OrderProcessed() {
	if m == nil {
		return
	}
	m.ordersProcessed.Inc()
}

// CartMerged counts one login-time cart merge.
func (m *Metrics) CartMerged() {
	if m == nil {
		return
	}
	m.cartsMerged.Inc()
}

// SessionRepaired counts one directory repair seeded from a session snapshot.
func (m *Metrics) SessionRepaired() {
	if m == nil {
		return
	}
	m.sessionsRepaired.Inc()
}

// BlobCorrupt counts one decode failure for the given storage key.
func (m *Metrics) BlobCorrupt(key string) {
	if m == nil {
		return
	}
	m.blobsCorrupt.WithLabelValues(key).Inc()
}
