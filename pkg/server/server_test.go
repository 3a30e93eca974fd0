package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	routes := map[string]http.HandlerFunc{
		"/v1/bmi": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}

	s := New(WithHandler(routes))
	if s == nil {
		t.Fatal("expected server instance, got nil")
		return
	}

	if s.config == nil {
		t.Error("expected config to be initialized")
	}

	if s.httpServer == nil {
		t.Error("expected httpServer to be initialized")
	}

	if s.rateLimiter == nil {
		t.Error("expected rateLimiter to be initialized")
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := New()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", w.Header().Get("Content-Type"))
	}
}

func TestReadyEndpoint(t *testing.T) {
	s := New()

	tests := []struct {
		name           string
		ready          bool
		expectedStatus int
	}{
		{
			name:           "ready state",
			ready:          true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not ready state",
			ready:          false,
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetReady(tt.ready)

			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			w := httptest.NewRecorder()

			s.handleReady(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestRateLimiting(t *testing.T) {
	okHandler := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	// Very restrictive rate limit: 1 req/s, burst of 1
	s := New(
		WithHandler(map[string]http.HandlerFunc{"/v1/bmi": okHandler}),
		WithRateLimit(1, 1),
	)

	handler := s.withMiddleware(s.config.Handlers["/v1/bmi"])

	// First request should succeed
	req1 := httptest.NewRequest(http.MethodGet, "/v1/bmi", nil)
	w1 := httptest.NewRecorder()
	handler(w1, req1)

	if w1.Code != http.StatusOK {
		t.Errorf("expected first request to succeed with status 200, got %d", w1.Code)
	}

	// Second request should be rate limited (bucket is empty)
	req2 := httptest.NewRequest(http.MethodGet, "/v1/bmi", nil)
	w2 := httptest.NewRecorder()
	handler(w2, req2)

	if w2.Code != http.StatusTooManyRequests {
		t.Errorf("expected rate limit error with status 429, got %d", w2.Code)
	}

	if w2.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header to be set")
	}
}

func TestHandlerTimeout(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/v1/bmi": func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(time.Second):
				w.WriteHeader(http.StatusOK)
			case <-r.Context().Done():
			}
		},
	}))
	s.config.HandlerTimeout = 50 * time.Millisecond

	// Re-run route setup so the shortened timeout takes effect
	mux := s.setupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/v1/bmi", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503 for stalled handler, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "request timed out") {
		t.Errorf("expected timeout body, got %q", rec.Body.String())
	}
}

func TestHandlerTimeout_FastHandlerUnaffected(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/v1/bmi": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}))

	mux := s.setupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/v1/bmi", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestReadHeaderTimeoutWired(t *testing.T) {
	s := New()

	if s.httpServer.ReadHeaderTimeout != s.config.ReadHeaderTimeout {
		t.Errorf("ReadHeaderTimeout = %v, want %v",
			s.httpServer.ReadHeaderTimeout, s.config.ReadHeaderTimeout)
	}
	if s.httpServer.ReadHeaderTimeout == 0 {
		t.Error("expected non-zero ReadHeaderTimeout")
	}
}

func TestGracefulShutdown(t *testing.T) {
	s := New(
		WithHandler(map[string]http.HandlerFunc{
			"/v1/bmi": func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		}),
		WithPort(18080), // avoid conflicts with other tests
	)
	s.config.ShutdownTimeout = 100 * time.Millisecond

	ctx, cancel := context.WithCancel(context.TODO())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start(ctx)
	}()

	// Wait for server to start
	time.Sleep(50 * time.Millisecond)

	cancel()

	select {
	case err := <-errChan:
		if err != nil {
			t.Errorf("expected clean shutdown, got error: %v", err)
		}
	case <-time.After(time.Second):
		t.Error("shutdown timed out")
	}
}

func TestDefaultRootHandler(t *testing.T) {
	s := New(
		WithName("somad"),
		WithVersion("test"),
		WithHandler(map[string]http.HandlerFunc{
			"/v1/bmi": func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	s.handleDefault(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp struct {
		Name    string   `json:"name"`
		Version string   `json:"version"`
		Routes  []string `json:"routes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Name != "somad" {
		t.Errorf("expected name somad, got %s", resp.Name)
	}

	found := false
	for _, route := range resp.Routes {
		if strings.Contains(route, "/v1/bmi") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected response to list /v1/bmi route, got %v", resp.Routes)
	}
}

func TestCustomRootHandlerNotOverridden(t *testing.T) {
	customCalled := false
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/": func(w http.ResponseWriter, _ *http.Request) {
			customCalled = true
			w.WriteHeader(http.StatusOK)
		},
	}))

	mux := s.setupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if !customCalled {
		t.Error("expected custom root handler to be called, not default")
	}
}

func TestWithName(t *testing.T) {
	customName := "custom-api-server"
	s := New(WithName(customName))

	if s.config.Name != customName {
		t.Errorf("expected server name %s, got %s", customName, s.config.Name)
	}
}

func TestWithPort(t *testing.T) {
	s := New(WithPort(9090))

	if s.config.Port != 9090 {
		t.Errorf("expected port 9090, got %d", s.config.Port)
	}

	if s.httpServer.Addr != ":9090" {
		t.Errorf("expected listen address :9090, got %s", s.httpServer.Addr)
	}
}

func TestDefaultServerName(t *testing.T) {
	s := New()

	if s.config.Name != "server" {
		t.Errorf("expected default name 'server', got %s", s.config.Name)
	}
}
