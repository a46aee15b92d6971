package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMetrics_WritePrometheus(t *testing.T) {
	m := NewMetrics()
	m.IncrementActiveRequests()
	defer m.DecrementActiveRequests()

	rec := httptest.NewRecorder()
	m.WritePrometheus(rec, httptest.NewRequest("GET", "/metrics", http.NoBody))
	body := rec.Body.String()

	for _, name := range []string{"armcalc_active_requests", "armcalc_requests_total", "go_goroutines"} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics output should contain %s", name)
		}
	}
}

func TestServer_metricsMiddleware(t *testing.T) {
	s := &Server{metrics: NewMetrics()}
	nextCalled := false
	handler := s.metricsMiddleware(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusAccepted)
	})
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/health", http.NoBody))

	if !nextCalled {
		t.Error("next handler was not called")
	}
	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
}

func TestServer_handleMetrics(t *testing.T) {
	tests := []struct {
		method string
		want   int
	}{
		{"GET", http.StatusOK},
		{"POST", http.StatusMethodNotAllowed},
		{"PUT", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			s := &Server{metrics: NewMetrics(), logger: newTestLogger()}
			rec := httptest.NewRecorder()
			s.handleMetrics(rec, httptest.NewRequest(tt.method, "/metrics", http.NoBody))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusOK && !strings.Contains(rec.Body.String(), "armcalc_") {
				t.Error("response should contain armcalc metrics")
			}
		})
	}
}
