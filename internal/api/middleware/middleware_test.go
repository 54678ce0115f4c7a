package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/clipgrab/internal/config"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(middlewares ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(middlewares...)
	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"correlation_id": utils.GetCorrelationID(c.Request.Context()),
			"client_id":      utils.GetClientID(c.Request.Context()),
		})
	})
	return engine
}

func TestCorrelationIDMiddleware(t *testing.T) {
	engine := newEngine(CorrelationIDMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Correlation-ID", "corr-123")
	req.Header.Set("X-Client-ID", "client-1")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if got := w.Header().Get("X-Correlation-ID"); got != "corr-123" {
		t.Errorf("Expected correlation id to be echoed, got %q", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a request id header")
	}
	if body := w.Body.String(); body != `{"client_id":"client-1","correlation_id":"corr-123"}` {
		t.Errorf("Expected ids in request context, got %s", body)
	}

	// A correlation id is generated when the caller sends none.
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Header().Get("X-Correlation-ID") == "" {
		t.Error("Expected a generated correlation id")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine := newEngine(RateLimitMiddleware(ctx, &config.APIConfig{
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
	}))

	statuses := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		engine.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/ping", nil))
		statuses = append(statuses, last.Code)
	}
	if last.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After on a limited response")
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("Request %d: expected %d, got %d", i, want[i], statuses[i])
		}
	}
}

func TestRateLimitMiddlewareDisabled(t *testing.T) {
	engine := newEngine(RateLimitMiddleware(context.Background(), &config.APIConfig{}))

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200 with rate limiting disabled, got %d", w.Code)
		}
	}
}

func TestAuthMiddleware(t *testing.T) {
	testCases := []struct {
		name       string
		configured string
		sent       string
		wantStatus int
	}{
		{name: "No key configured", configured: "", sent: "", wantStatus: http.StatusOK},
		{name: "Valid key", configured: "secret", sent: "secret", wantStatus: http.StatusOK},
		{name: "Wrong key", configured: "secret", sent: "guess", wantStatus: http.StatusUnauthorized},
		{name: "Missing key", configured: "secret", sent: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine := newEngine(AuthMiddleware(&config.APIConfig{APIKey: tc.configured}))

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.sent != "" {
				req.Header.Set("X-API-Key", tc.sent)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Errorf("Expected %d, got %d", tc.wantStatus, w.Code)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	cfg := &config.CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"http://localhost:9002"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type", "X-Client-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         600,
	}
	engine := newEngine(CORSMiddleware(cfg))
	engine.OPTIONS("/ping", func(c *gin.Context) {})

	t.Run("Allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:9002")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:9002" {
			t.Errorf("Expected origin to be allowed, got %q", got)
		}
		if got := w.Header().Get("Access-Control-Expose-Headers"); got != "X-Request-ID" {
			t.Errorf("Expected exposed headers, got %q", got)
		}
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:9002")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST" {
			t.Errorf("Expected allowed methods, got %q", got)
		}
		if got := w.Header().Get("Access-Control-Max-Age"); got != "600" {
			t.Errorf("Expected max age 600, got %q", got)
		}
	})

	t.Run("Unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Expected no CORS headers, got %q", got)
		}
	})
}

func TestRateLimiterWindowReset(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := newRateLimiter(1, time.Minute)
	limiter.now = func() time.Time { return now }

	if ok, _ := limiter.allow("1.2.3.4"); !ok {
		t.Fatal("Expected first request to pass")
	}

	now = now.Add(20 * time.Second)
	ok, retryAfter := limiter.allow("1.2.3.4")
	if ok {
		t.Fatal("Expected second request in the window to be limited")
	}
	if retryAfter != 40*time.Second {
		t.Errorf("Expected 40s until reset, got %s", retryAfter)
	}
	if ok, _ := limiter.allow("5.6.7.8"); !ok {
		t.Error("Expected other keys to be unaffected")
	}

	now = now.Add(40 * time.Second)
	if ok, _ := limiter.allow("1.2.3.4"); !ok {
		t.Error("Expected a new window to allow the request")
	}

	now = now.Add(2 * time.Minute)
	limiter.sweep()
	if len(limiter.windows) != 0 {
		t.Errorf("Expected expired windows to be swept, got %d", len(limiter.windows))
	}
}
