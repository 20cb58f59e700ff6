package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOracleMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewOracleMetrics(reg)
	require.NoError(t, err)

	m.Observe(OutcomeSAT, 3*time.Millisecond, 28)
	m.Observe(OutcomeSAT, time.Millisecond, 0)
	m.Observe(OutcomeTimeout, time.Second, 4000)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calls.WithLabelValues(OutcomeSAT)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues(OutcomeTimeout)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration), "one histogram series per outcome")

	again, err := NewOracleMetrics(reg)
	require.NoError(t, err)
	again.Observe(OutcomeSAT, time.Millisecond, 1)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.calls.WithLabelValues(OutcomeSAT)), "re-registration shares collectors")
}

func TestOracleMetrics_NilSafe(t *testing.T) {
	var m *OracleMetrics
	m.Observe(OutcomeUNSAT, time.Millisecond, 10)

	_, err := NewOracleMetrics(nil)
	require.Error(t, err)
}

func TestHandler(t *testing.T) {
	reg := NewRegistry()
	m, err := NewOracleMetrics(reg)
	require.NoError(t, err)
	m.Observe(OutcomeUNSAT, time.Millisecond, 21)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `unitgraph_oracle_calls_total{outcome="unsat"} 1`))
}
