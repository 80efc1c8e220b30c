package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_CountersIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("bff-test", reg)

	m.ObserveHTTP(http.MethodGet, "/api/v1/listings", http.StatusOK, 10*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/v1/listings", http.StatusOK, 20*time.Millisecond)
	m.ObserveUpstream(http.MethodGet, "/bookings/vendor", OutcomeError, time.Millisecond)
	m.ObserveCache(CacheHit)
	m.ObserveCache(CacheMiss)
	m.ObserveCache(CacheMiss)
	m.ObserveInvalidation("bookings")

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.httpRequestsTotal.WithLabelValues("bff-test", http.MethodGet, "/api/v1/listings", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.upstreamRequestsTotal.WithLabelValues("bff-test", http.MethodGet, "/bookings/vendor", OutcomeError)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheRequestsTotal.WithLabelValues("bff-test", CacheMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheInvalidations.WithLabelValues("bff-test", "bookings")))
}
