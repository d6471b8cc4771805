package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_scheduler",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and route.",
		},
		[]string{"method", "route"},
	)

	bookingsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_scheduler",
			Name:      "bookings_completed_total",
			Help:      "Booking wizards that reached the paid step.",
		},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_scheduler",
			Name:      "appointment_transitions_total",
			Help:      "Appointment status transitions by target status.",
		},
		[]string{"to"},
	)

	paymentResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_scheduler",
			Name:      "payment_results_total",
			Help:      "Recorded payment outcomes by method and status.",
		},
		[]string{"method", "status"},
	)
)

// Register registers all collectors. Safe to call more than once.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			bookingsCompleted,
			statusTransitions,
			paymentResults,
		)
	})
}

func IncHTTP(method, route string) {
	httpRequests.WithLabelValues(method, route).Inc()
}

func IncBookingCompleted() {
	bookingsCompleted.Inc()
}

func IncTransition(to string) {
	statusTransitions.WithLabelValues(to).Inc()
}

func IncPayment(method, status string) {
	paymentResults.WithLabelValues(method, status).Inc()
}
