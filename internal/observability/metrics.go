package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Checkout outcome labels.
const (
	OutcomeCancelled = "cancelled"
	OutcomeRedisplay = "redisplay"
	OutcomeAccepted  = "accepted"
	OutcomeCompleted = "completed"
	OutcomeError     = "error"
)

type Metrics struct {
	checkoutOutcomes *prometheus.CounterVec

	listingCacheHits   prometheus.Counter
	listingCacheMisses prometheus.Counter
	listingRefresh     prometheus.Histogram
}

// New registers against the default registerer; tests pass their own
// registry via NewWith to avoid duplicate registration panics.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		checkoutOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "musicstore_checkout_outcomes_total",
			Help: "Checkout submissions and completions by outcome",
		}, []string{"outcome"}),
		listingCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "musicstore_listing_cache_hits_total",
			Help: "Top-selling listing served from cache",
		}),
		listingCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "musicstore_listing_cache_misses_total",
			Help: "Top-selling listing recomputed from the catalog store",
		}),
		listingRefresh: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "musicstore_listing_refresh_seconds",
			Help:    "Duration of top-selling listing recomputation",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) IncCheckoutOutcome(outcome string) {
	m.checkoutOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncListingCacheHit()  { m.listingCacheHits.Inc() }
func (m *Metrics) IncListingCacheMiss() { m.listingCacheMisses.Inc() }

func (m *Metrics) ObserveListingRefresh(seconds float64) {
	m.listingRefresh.Observe(seconds)
}
