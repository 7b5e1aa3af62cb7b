package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the API's Prometheus instruments on a private registry,
// keeping the /metrics output free of default Go runtime noise from other
// registrations.
type Collector struct {
	reg *prometheus.Registry

	SearchesTotal      prometheus.Counter
	SearchDuration     prometheus.Histogram
	ItinerariesPerPlan prometheus.Histogram
	EmptySearches      prometheus.Counter
	RejectedSearches   *prometheus.CounterVec // reason label

	SnapshotTrips     prometheus.Gauge
	SnapshotLocations prometheus.Gauge
	SnapshotReloads   prometheus.Counter
	ReloadFailures    prometheus.Counter
}

// Rejection reasons recorded on RejectedSearches.
const (
	ReasonUnknownLocation  = "unknown_location"
	ReasonSameLocation     = "same_location"
	ReasonNegativeTransfer = "negative_transfer_limit"
)

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wayfinder_searches_total",
			Help: "Total trip plan searches answered.",
		}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wayfinder_search_duration_seconds",
			Help:    "Duration of the full plan pipeline per search.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}),
		ItinerariesPerPlan: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wayfinder_itineraries_per_search",
			Help:    "Number of itineraries returned per search.",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		}),
		EmptySearches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wayfinder_empty_searches_total",
			Help: "Searches that completed but found no itinerary.",
		}),
		RejectedSearches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wayfinder_rejected_searches_total",
			Help: "Searches rejected before resolution.",
		}, []string{"reason"}),
		SnapshotTrips: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wayfinder_snapshot_trips",
			Help: "Trips in the active schedule snapshot.",
		}),
		SnapshotLocations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wayfinder_snapshot_locations",
			Help: "Locations in the active schedule snapshot.",
		}),
		SnapshotReloads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wayfinder_snapshot_reloads_total",
			Help: "Successful schedule snapshot reloads.",
		}),
		ReloadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wayfinder_snapshot_reload_failures_total",
			Help: "Schedule snapshot reloads that failed.",
		}),
	}

	reg.MustRegister(
		c.SearchesTotal, c.SearchDuration, c.ItinerariesPerPlan,
		c.EmptySearches, c.RejectedSearches,
		c.SnapshotTrips, c.SnapshotLocations, c.SnapshotReloads, c.ReloadFailures,
	)

	return c
}

// ObserveSearch records one completed search.
func (c *Collector) ObserveSearch(durationSeconds float64, itineraryCount int) {
	c.SearchesTotal.Inc()
	c.SearchDuration.Observe(durationSeconds)
	c.ItinerariesPerPlan.Observe(float64(itineraryCount))
	if itineraryCount == 0 {
		c.EmptySearches.Inc()
	}
}

// ObserveRejection records a search rejected for the given reason.
func (c *Collector) ObserveRejection(reason string) {
	c.RejectedSearches.WithLabelValues(reason).Inc()
}

// ObserveSnapshot records the size of a freshly loaded snapshot.
func (c *Collector) ObserveSnapshot(tripCount, locationCount int) {
	c.SnapshotTrips.Set(float64(tripCount))
	c.SnapshotLocations.Set(float64(locationCount))
	c.SnapshotReloads.Inc()
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
