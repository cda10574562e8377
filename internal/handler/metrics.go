package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "notification_service",
			Subsystem: "kafka_consumer",
			Name:      "events_processed_total",
			Help:      "Total number of successfully processed order events",
		},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "notification_service",
			Subsystem: "kafka_consumer",
			Name:      "events_failed_total",
			Help:      "Total number of failed order event handling attempts",
		},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "notification_service",
			Subsystem: "kafka_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of order events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "notification_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)
)

var (
	notificationsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "notification_service",
			Subsystem: "http",
			Name:      "notifications_sent_total",
			Help:      "Total number of notifications sent successfully",
		},
	)

	notificationsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "notification_service",
			Subsystem: "http",
			Name:      "notifications_rejected_total",
			Help:      "Total number of notifications rejected by a missing user or order",
		},
	)

	notificationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "notification_service",
			Subsystem: "http",
			Name:      "notifications_failed_total",
			Help:      "Total number of notifications failed on a transport fault",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsFailed,
		eventsDLQ,
		commitErrors,

		notificationsSent,
		notificationsRejected,
		notificationsFailed,
	)
}
