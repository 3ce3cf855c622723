package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTPMetricsRecordsRequest(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		path       string
		statusCode int
	}{
		{
			name:       "normalizes account path",
			method:     http.MethodPost,
			path:       "/api/v1/accounts/ACC001/deposit",
			statusCode: http.StatusOK,
		},
		{
			name:       "keeps non-matching path as-is",
			method:     http.MethodGet,
			path:       "/health",
			statusCode: http.StatusTeapot,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewHTTPMetrics(prometheus.NewRegistry())

			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(tc.statusCode)
			})

			m.Wrap(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tc.method, tc.path, nil))

			assert.True(t, handlerCalled)
			assert.Equal(t, float64(0), testutil.ToFloat64(m.requestsInFlight))

			counter := m.requestsTotal.WithLabelValues(tc.method, normalizePath(tc.path), strconv.Itoa(tc.statusCode))
			assert.Equal(t, float64(1), testutil.ToFloat64(counter))
			assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"/api/v1/accounts":                     "/api/v1/accounts",
		"/api/v1/accounts/":                    "/api/v1/accounts/",
		"/api/v1/accounts/ACC001":              "/api/v1/accounts/:number",
		"/api/v1/accounts/ACC042/statement":    "/api/v1/accounts/:number/statement",
		"/api/v1/transfers/01HX3M5ZQ8R9T6V2W1": "/api/v1/transfers/:id",
		"/api/v1/transfers":                    "/api/v1/transfers",
		"/metrics":                             "/metrics",
	}

	for in, want := range tests {
		assert.Equal(t, want, normalizePath(in), in)
	}
}
