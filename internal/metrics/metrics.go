package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "innkeep",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		},
		[]string{"endpoint", "method", "status"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "innkeep",
			Name:      "bookings_created_total",
			Help:      "Bookings committed by the orchestrator.",
		},
	)

	bookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "innkeep",
			Name:      "booking_conflicts_total",
			Help:      "Booking batches rejected by the in-transaction conflict check.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, bookingConflicts)
	})
}

// IncHTTP increments the request counter for an endpoint label
func IncHTTP(endpoint, method, status string) {
	httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// AddBookingsCreated records committed bookings
func AddBookingsCreated(n int) {
	bookingsCreated.Add(float64(n))
}

// IncBookingConflict records a rolled-back booking batch
func IncBookingConflict() {
	bookingConflicts.Inc()
}
