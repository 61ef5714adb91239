package metrics

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datarequests/internal/shared/errors"
)

func TestActionMetrics_Observe(t *testing.T) {
	m := NewActionMetrics()
	started := time.Now()

	m.Observe("datarequest_show", started, nil)
	m.Observe("datarequest_show", started, errors.NewNotFoundError("Data request not found"))
	m.Observe("datarequest_show", started, fmt.Errorf("wrapped: %w", errors.NewNotFoundError("x")))
	m.Observe("datarequest_create", started, fmt.Errorf("db down"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues("datarequest_show", OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.calls.WithLabelValues("datarequest_show", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues("datarequest_create", "internal_error")))
}

func TestActionMetrics_Handler(t *testing.T) {
	m := NewActionMetrics()
	m.Observe("datarequest_list", time.Now(), nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `datarequests_action_calls_total{action="datarequest_list",outcome="success"} 1`)
}

func TestActionMetrics_NilIsNoop(t *testing.T) {
	var m *ActionMetrics
	assert.NotPanics(t, func() { m.Observe("datarequest_list", time.Now(), nil) })
}
