package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveUpstream(t *testing.T) {
	m := NewMetrics("test", prometheus.NewRegistry())

	m.ObserveUpstream("irctc", time.Now(), nil)
	m.ObserveUpstream("irctc", time.Now(), errors.New("boom"))
	m.ObserveUpstream("irctc", time.Now(), errors.New("boom"))

	if got := testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("irctc", "ok")); got != 1 {
		t.Errorf("expected 1 ok request, got %v", got)
	}
	if got := testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("irctc", "unavailable")); got != 2 {
		t.Errorf("expected 2 unavailable requests, got %v", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveUpstream("x", time.Now(), nil)
	m.ReportRendered("route")
	m.Error("fetch")
}
