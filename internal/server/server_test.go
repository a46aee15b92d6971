package server

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/agbru/armcalc/internal/armstrong"
	"github.com/agbru/armcalc/internal/bench"
	"github.com/agbru/armcalc/internal/config"
	"github.com/agbru/armcalc/internal/logging"
	"github.com/agbru/armcalc/internal/orchestration"
)

func newTestLogger() logging.Logger {
	return logging.NewStdLoggerAdapter(log.New(io.Discard, "", 0))
}

func stepClock(step time.Duration) bench.Clock {
	var mu sync.Mutex
	now := time.Unix(0, 0)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(step)
		return now
	}
}

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	factory := armstrong.NewDefaultFactory()
	o, err := orchestration.New(
		orchestration.WithHarness(bench.NewWithClock(stepClock(time.Microsecond))),
		orchestration.WithFactory(factory),
		orchestration.WithLogger(newTestLogger()),
	)
	if err != nil {
		t.Fatalf("orchestration.New() error: %v", err)
	}
	cfg := config.AppConfig{Port: "0", Repeat: 3, Reference: armstrong.ReferenceCanonical}
	base := []Option{WithStdLogger(log.New(io.Discard, "", 0)), WithFactory(factory)}
	s := NewServer(o, cfg, append(base, opts...)...)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func get(t *testing.T, h http.Handler, target string, into any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", target, http.NoBody))
	if ct := rec.Header().Get("Content-Type"); into != nil && ct != "application/json" {
		t.Fatalf("%s: Content-Type = %q", target, ct)
	}
	if into != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
			t.Fatalf("%s: decoding %q: %v", target, rec.Body.String(), err)
		}
	}
	return rec.Code
}

func TestHandleEvaluate(t *testing.T) {
	s := newTestServer(t)

	var resp EvaluateResponse
	if code := get(t, s.Handler(), "/evaluate?n=153&repeat=5", &resp); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if resp.Candidate != 153 || resp.DigitCount != 3 || resp.Repeat != 5 || !resp.IsArmstrong {
		t.Errorf("unexpected record %+v", resp.RunResponse)
	}
	if resp.Run != 1 {
		t.Errorf("Run = %d, want 1", resp.Run)
	}
	if resp.Winner != armstrong.IterativeName && resp.Winner != armstrong.RecursiveName {
		t.Errorf("Winner = %q", resp.Winner)
	}

	if code := get(t, s.Handler(), "/evaluate?n=154", &resp); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if resp.IsArmstrong || resp.Repeat != 3 || resp.Run != 2 {
		t.Errorf("second run = %+v, want not Armstrong with default repeat 3 as run 2", resp)
	}
	if s.Session().Len() != 2 {
		t.Errorf("session length = %d, want 2", s.Session().Len())
	}
}

func TestHandleEvaluate_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"missing n", "/evaluate", http.StatusBadRequest},
		{"non numeric", "/evaluate?n=abc", http.StatusBadRequest},
		{"zero", "/evaluate?n=0", http.StatusBadRequest},
		{"negative repeat", "/evaluate?n=153&repeat=-1", http.StatusBadRequest},
		{"too many digits", "/evaluate?n=1000000000000000000", http.StatusBadRequest},
		{"repeat over cap", "/evaluate?n=153&repeat=11", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, WithMaxRepeat(10))
			var resp ErrorResponse
			if code := get(t, s.Handler(), tt.target, &resp); code != tt.want {
				t.Errorf("status = %d, want %d", code, tt.want)
			}
			if resp.Error != http.StatusText(tt.want) || resp.Message == "" {
				t.Errorf("error body = %+v", resp)
			}
			if s.Session().Len() != 0 {
				t.Error("rejected request must not touch the session")
			}
		})
	}
}

func TestHandleEvaluate_RejectedByRunReportsPresentedError(t *testing.T) {
	s := newTestServer(t)
	var resp ErrorResponse
	if code := get(t, s.Handler(), "/evaluate?n=1000000000000000000&repeat=2", &resp); code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if want := "must have at most 18 digits"; !strings.Contains(resp.Message, want) {
		t.Errorf("message = %q, want it to contain %q", resp.Message, want)
	}
}

func TestHandleEvaluate_Timeout(t *testing.T) {
	timeouts := DefaultServerTimeouts()
	timeouts.RequestTimeout = -time.Second
	s := newTestServer(t, WithTimeouts(timeouts))

	if code := get(t, s.Handler(), "/evaluate?n=153", &ErrorResponse{}); code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want %d", code, http.StatusGatewayTimeout)
	}
}

func TestHandleReference(t *testing.T) {
	s := newTestServer(t)

	var resp ReferenceResponse
	if code := get(t, s.Handler(), "/reference?repeat=2", &resp); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if resp.Set != armstrong.ReferenceCanonical || len(resp.Timings) != len(armstrong.ReferenceSet()) {
		t.Errorf("canonical batch = %+v", resp)
	}
	if resp.Timings[0].Value != 153 || resp.Timings[len(resp.Timings)-1].Value != 4679307774 {
		t.Errorf("timings out of order: first %d last %d", resp.Timings[0].Value, resp.Timings[len(resp.Timings)-1].Value)
	}

	if code := get(t, s.Handler(), "/reference?set=classic&repeat=2", &resp); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if len(resp.Timings) != len(armstrong.ClassicSampleSet()) {
		t.Errorf("classic batch has %d timings", len(resp.Timings))
	}

	if code := get(t, s.Handler(), "/reference?set=bogus", &ErrorResponse{}); code != http.StatusBadRequest {
		t.Errorf("unknown set status = %d, want 400", code)
	}
	if s.Session().Len() != 0 {
		t.Error("reference batches are not session runs")
	}
}

func TestHandleHistoryAndVariants(t *testing.T) {
	s := newTestServer(t)
	get(t, s.Handler(), "/evaluate?n=9474&repeat=2", &EvaluateResponse{})
	get(t, s.Handler(), "/evaluate?n=9475&repeat=2", &EvaluateResponse{})

	var history HistoryResponse
	if code := get(t, s.Handler(), "/history", &history); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if history.Count != 2 || history.Runs[0].Candidate != 9474 || history.Runs[1].Candidate != 9475 {
		t.Errorf("history = %+v", history)
	}

	var variants struct {
		Variants []VariantInfo `json:"variants"`
	}
	if code := get(t, s.Handler(), "/variants", &variants); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(variants.Variants) != 2 {
		t.Fatalf("variants = %+v", variants.Variants)
	}
	for _, v := range variants.Variants {
		if v.Description == "" {
			t.Errorf("variant %q has no description", v.Name)
		}
	}
}

func TestHandlers_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/evaluate", "/reference", "/history", "/variants", "/health", "/metrics"} {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest("DELETE", path, http.NoBody))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("DELETE %s = %d, want 405", path, rec.Code)
		}
	}
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, WithRateLimiter(NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 2})))

	codes := make([]int, 0, 3)
	for range 3 {
		codes = append(codes, get(t, s.Handler(), "/health", nil))
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 200 429]", codes)
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 1})
	defer rl.Stop()
	now := time.Unix(100, 0)
	rl.now = func() time.Time { return now }

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request should pass")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("second request in the same window should be limited")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatal("other clients have their own budget")
	}
	now = now.Add(time.Minute)
	if !rl.Allow("10.0.0.1") {
		t.Fatal("a new window restores the budget")
	}
	now = now.Add(3 * time.Minute)
	rl.evictIdle()
	if len(rl.clients) != 0 {
		t.Errorf("idle clients kept: %d", len(rl.clients))
	}
	rl.Stop()
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.1:1234", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": " 198.51.100.2 "}, "10.0.0.1:1234", "198.51.100.2"},
		{"remote addr", nil, "192.0.2.1:5555", "192.0.2.1"},
		{"remote without port", nil, "192.0.2.1", "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", http.NoBody)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := getClientIP(r); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServe_GracefulShutdown(t *testing.T) {
	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("X-Frame-Options") != "DENY" {
		t.Error("security headers missing on the live server")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestServerOptions_SessionAndSecurity(t *testing.T) {
	shared := orchestration.NewSession()
	s := newTestServer(t,
		WithSession(shared),
		WithSecurityConfig(SecurityConfig{EnableCORS: false, MaxRepeat: 10}),
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/evaluate?n=370&repeat=4", http.NoBody)
	req.Header.Set("Origin", "https://example.com")
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("CORS disabled, but Access-Control-Allow-Origin = %q", got)
	}
	if shared.Len() != 1 || s.Session() != shared {
		t.Errorf("run should be recorded in the shared session, len = %d", shared.Len())
	}

	if code := get(t, s.Handler(), "/evaluate?n=370&repeat=11", &ErrorResponse{}); code != http.StatusBadRequest {
		t.Errorf("repeat above the configured cap: status = %d, want 400", code)
	}
}

// overlapVariant wraps the iterative checker and records how many timed
// calls were running at once.
type overlapVariant struct {
	active, peak *atomic.Int32
}

func (overlapVariant) Name() string        { return armstrong.IterativeName }
func (overlapVariant) Description() string { return "iterative checker with an overlap counter" }

func (v overlapVariant) Checker(n uint64, digits int) func() bool {
	inner := armstrong.IterativeVariant{}.Checker(n, digits)
	return func() bool {
		now := v.active.Add(1)
		for {
			peak := v.peak.Load()
			if now <= peak || v.peak.CompareAndSwap(peak, now) {
				break
			}
		}
		time.Sleep(50 * time.Microsecond)
		v.active.Add(-1)
		return inner()
	}
}

func TestMeasuringRequestsAreSerialized(t *testing.T) {
	var active, peak atomic.Int32
	factory := armstrong.NewDefaultFactory()
	if err := factory.Register(armstrong.IterativeName, func() armstrong.Variant {
		return overlapVariant{active: &active, peak: &peak}
	}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	o, err := orchestration.New(
		orchestration.WithFactory(factory),
		orchestration.WithLogger(newTestLogger()),
	)
	if err != nil {
		t.Fatalf("orchestration.New() error: %v", err)
	}
	cfg := config.AppConfig{Port: "0", Repeat: 3, Reference: armstrong.ReferenceCanonical}
	s := NewServer(o, cfg, WithStdLogger(log.New(io.Discard, "", 0)), WithFactory(factory))
	t.Cleanup(s.rateLimiter.Stop)

	targets := []string{
		"/evaluate?n=153&repeat=20",
		"/evaluate?n=9474&repeat=20",
		"/reference?repeat=5",
		"/evaluate?n=370&repeat=20",
		"/reference?set=classic&repeat=5",
		"/evaluate?n=407&repeat=20",
	}
	var wg sync.WaitGroup
	codes := make([]int, len(targets))
	for i, target := range targets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", target, http.NoBody))
			codes[i] = rec.Code
		}()
	}
	wg.Wait()

	for i, code := range codes {
		if code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", targets[i], code)
		}
	}
	if got := peak.Load(); got != 1 {
		t.Errorf("peak concurrent timed calls = %d, want 1", got)
	}
	if s.Session().Len() != 4 {
		t.Errorf("session length = %d, want 4", s.Session().Len())
	}
}

func TestAcquireMeasurement_HonorsContext(t *testing.T) {
	s := newTestServer(t)
	release, err := s.acquireMeasurement(context.Background())
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := s.acquireMeasurement(ctx); err != context.DeadlineExceeded {
		t.Errorf("second acquire error = %v, want %v", err, context.DeadlineExceeded)
	}
}
