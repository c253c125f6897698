package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/callcenter/pkg/metrics"
)

func TestMetrics_InstrumentUsesRoutePattern(t *testing.T) {
	t.Parallel()

	m := metrics.New()

	r := chi.NewRouter()
	r.Use(m.Instrument)
	r.Get("/api/customers/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", m.Handler())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/customers/cust_1", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	m.OAuthExchange("slack", "success")
	m.Webhook("call-received")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	out := string(body)
	require.Contains(t, out, `http_requests_total{method="GET",path="/api/customers/{id}",status="418"} 1`)
	require.Contains(t, out, `oauth_exchanges_total{provider="slack",result="success"} 1`)
	require.Contains(t, out, `n8n_webhooks_total{kind="call-received"} 1`)
}

func TestMetrics_JobRun(t *testing.T) {
	t.Parallel()

	m := metrics.New()

	m.JobRun("prune bridge rate limiter", nil, time.Millisecond)
	m.JobRun("prune bridge rate limiter", nil, time.Millisecond)
	m.JobRun("prune bridge rate limiter", errors.New("boom"), time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	out := rec.Body.String()
	require.Contains(t, out, `job_runs_total{job="prune bridge rate limiter",result="success"} 2`)
	require.Contains(t, out, `job_runs_total{job="prune bridge rate limiter",result="error"} 1`)
	require.Contains(t, out, `job_duration_seconds_count{job="prune bridge rate limiter"} 3`)
}
