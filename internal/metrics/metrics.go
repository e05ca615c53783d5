package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	searches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel_booking",
			Name:      "room_searches_total",
			Help:      "Count of room searches by result.",
		},
		[]string{"result"},
	)

	bookings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel_booking",
			Name:      "bookings_total",
			Help:      "Count of booking submissions by result.",
		},
		[]string{"result"},
	)

	feedFetch = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotel_booking",
			Name:      "feed_fetch_duration_seconds",
			Help:      "Time to fetch and decode an XML feed.",
			Buckets:   []float64{.01, .05, .1, .5, 1, 2, 5},
		},
		[]string{"feed"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(searches, bookings, feedFetch)
	})
}

func IncSearch(result string) {
	searches.WithLabelValues(result).Inc()
}

func IncBooking(result string) {
	bookings.WithLabelValues(result).Inc()
}

func ObserveFeedFetch(feed string, seconds float64) {
	feedFetch.WithLabelValues(feed).Observe(seconds)
}
