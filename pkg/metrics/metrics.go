package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	CartOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Cart mutations by operation",
		},
		[]string{"op"}, // add|remove|quantity|notes|clear|fee
	)
	CartPersistFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_persist_failures_total",
			Help: "Best-effort cart snapshot writes that failed",
		},
	)
	CheckoutTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_transitions_total",
			Help: "Checkout step transitions by target step",
		},
		[]string{"to"}, // delivery|payment_method|payment_process|success|error
	)
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var (
	TTSRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tts_requests_total",
			Help: "Text-to-speech synthesis requests by result",
		},
		[]string{"result"}, // ok|error|skipped
	)
	Announcements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aria_announcements_total",
			Help: "Live region announcements by priority",
		},
		[]string{"priority"}, // polite|assertive
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует все метрики; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(register)
}

func register() {
	prometheus.MustRegister(
		CartOps, CartPersistFailures, CheckoutTransitions,
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		CacheOps, CacheSize,
		TTSRequests, Announcements,
	)
}
