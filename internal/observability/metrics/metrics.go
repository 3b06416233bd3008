package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsRequested = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "booking",
		Name:      "requests_total",
		Help:      "Total booking requests accepted into the ledger",
	})

	Transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "booking",
		Name:      "transitions_total",
		Help:      "Appointment status transitions by target status",
	}, []string{"to"})

	SettledAmountCents = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "booking",
		Name:      "settled_amount_cents_total",
		Help:      "Sum of captured amounts in cents",
	})
)
