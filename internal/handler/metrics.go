package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	paymentEventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "supermall",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_processed_total",
			Help:      "Total number of retried payment events applied",
		},
	)

	paymentEventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "supermall",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_failed_total",
			Help:      "Total number of failed retried payment event attempts",
		},
	)

	paymentEventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "supermall",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_dlq_total",
			Help:      "Total number of payment events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "supermall",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	paymentEventDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "supermall",
			Subsystem: "kafka_consumer",
			Name:      "payment_event_duration_seconds",
			Help:      "Histogram of retried payment event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	paymentEventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "supermall",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_in_progress",
			Help:      "Number of retried payment events currently being processed",
		},
	)
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "supermall",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders created",
		},
	)

	orderIDCollisions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "supermall",
			Subsystem: "orders",
			Name:      "id_collisions_total",
			Help:      "Order identifier collisions retried with a fresh identifier",
		},
	)

	paymentIntents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "supermall",
			Subsystem: "payments",
			Name:      "intents_total",
			Help:      "Payment intent requests by result",
		},
		[]string{"result"},
	)

	webhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "supermall",
			Subsystem: "payments",
			Name:      "webhook_events_total",
			Help:      "Gateway webhook deliveries by event type and outcome",
		},
		[]string{"type", "outcome"},
	)

	cartActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "supermall",
			Subsystem: "cart",
			Name:      "actions_total",
			Help:      "Cart mutations by action",
		},
		[]string{"action"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		paymentEventsProcessed,
		paymentEventsFailed,
		paymentEventsDLQ,
		commitErrors,
		paymentEventDuration,
		paymentEventsInProgress,

		ordersCreated,
		orderIDCollisions,
		paymentIntents,
		webhookEvents,
		cartActions,
	)
}
