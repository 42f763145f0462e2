package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestOrderMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewOrderMetrics(reg)
	metrics.IncFinalized()
	metrics.IncItemReturned("rotten")
	metrics.IncPaymentOutcome("success")
	metrics.ObservePaymentDuration(3 * time.Second)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if mf := findMetricFamily(mfs, "orders_finalized_total"); mf == nil {
		t.Fatal("orders_finalized_total not found")
	} else if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 1 {
		t.Fatalf("expected finalized=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "order_items_returned_total", "reason", "rotten"); err != nil {
		t.Fatalf("fetch returned: %v", err)
	} else if got != 1 {
		t.Fatalf("expected returned=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "payments_total", "outcome", "success"); err != nil {
		t.Fatalf("fetch payments: %v", err)
	} else if got != 1 {
		t.Fatalf("expected payments=1, got %f", got)
	}

	if mf := findMetricFamily(mfs, "payment_duration_seconds"); mf == nil {
		t.Fatal("payment_duration_seconds not found")
	} else if sum := mf.GetMetric()[0].GetHistogram().GetSampleSum(); sum <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", sum)
	}
}

func TestOrderMetricsNilSafe(t *testing.T) {
	var metrics *OrderMetrics
	metrics.IncFinalized()
	metrics.IncItemCancelled()
	metrics.IncItemReturned("")
	metrics.IncPaymentOutcome("")
	metrics.ObservePaymentDuration(time.Second)

	unregistered := NewOrderMetrics(nil)
	unregistered.IncFinalized()
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
