package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics records order lifecycle and payment activity.
type OrderMetrics struct {
	finalized       prometheus.Counter
	itemCancelled   prometheus.Counter
	itemReturned    *prometheus.CounterVec
	paymentOutcome  *prometheus.CounterVec
	paymentDuration prometheus.Histogram
}

// NewOrderMetrics registers the order metrics on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	finalized := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_finalized_total",
		Help: "Orders created from checkout.",
	})
	itemCancelled := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_items_cancelled_total",
		Help: "Line items cancelled before delivery.",
	})
	itemReturned := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_items_returned_total",
		Help: "Delivered line items returned, by reason.",
	}, []string{"reason"})
	paymentOutcome := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payments_total",
		Help: "Payment submissions, by outcome.",
	}, []string{"outcome"})
	paymentDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "payment_duration_seconds",
		Help:    "Duration of payment provider round trips in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(finalized, itemCancelled, itemReturned, paymentOutcome, paymentDuration)
	return &OrderMetrics{
		finalized:       finalized,
		itemCancelled:   itemCancelled,
		itemReturned:    itemReturned,
		paymentOutcome:  paymentOutcome,
		paymentDuration: paymentDuration,
	}
}

// IncFinalized increments the finalized order counter.
func (m *OrderMetrics) IncFinalized() {
	if m == nil || m.finalized == nil {
		return
	}
	m.finalized.Inc()
}

// IncItemCancelled increments the cancelled item counter.
func (m *OrderMetrics) IncItemCancelled() {
	if m == nil || m.itemCancelled == nil {
		return
	}
	m.itemCancelled.Inc()
}

// IncItemReturned increments the returned item counter for the given reason.
func (m *OrderMetrics) IncItemReturned(reason string) {
	if m == nil || m.itemReturned == nil {
		return
	}
	if reason == "" {
		reason = "unknown"
	}
	m.itemReturned.WithLabelValues(reason).Inc()
}

// IncPaymentOutcome increments the payment counter for the given outcome.
func (m *OrderMetrics) IncPaymentOutcome(outcome string) {
	if m == nil || m.paymentOutcome == nil {
		return
	}
	if outcome == "" {
		outcome = "unknown"
	}
	m.paymentOutcome.WithLabelValues(outcome).Inc()
}

// ObservePaymentDuration records one payment round trip.
func (m *OrderMetrics) ObservePaymentDuration(d time.Duration) {
	if m == nil || m.paymentDuration == nil {
		return
	}
	m.paymentDuration.Observe(d.Seconds())
}
