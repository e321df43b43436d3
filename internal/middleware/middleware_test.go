package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"crm-admin-gateway/config"
	"crm-admin-gateway/internal/middleware"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

func newRouter(cfg config.GatewayConfig, use ...func(middleware.Middleware) gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(mockLogger{}, cfg)
	r := gin.New()
	for _, pick := range use {
		r.Use(pick(mw))
	}
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestAuth(t *testing.T) {
	t.Run("Open When No Token Configured", func(t *testing.T) {
		r := newRouter(config.GatewayConfig{}, middleware.Middleware.Auth)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Rejects Missing Or Wrong Token", func(t *testing.T) {
		r := newRouter(config.GatewayConfig{APIToken: "secret"}, middleware.Middleware.Auth)

		for _, header := range []string{"", "Bearer wrong", "secret"} {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("header %q: expected 401, got %d", header, w.Code)
			}
		}
	})

	t.Run("Accepts Correct Token", func(t *testing.T) {
		r := newRouter(config.GatewayConfig{APIToken: "secret"}, middleware.Middleware.Auth)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	t.Run("Generates When Absent", func(t *testing.T) {
		r := newRouter(config.GatewayConfig{}, middleware.Middleware.RequestID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Header().Get(middleware.RequestIDHeader) == "" {
			t.Error("expected a generated request id")
		}
	})

	t.Run("Honors Caller Supplied ID", func(t *testing.T) {
		r := newRouter(config.GatewayConfig{}, middleware.Middleware.RequestID)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "trace-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get(middleware.RequestIDHeader); got != "trace-123" {
			t.Errorf("expected trace-123, got %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("Disabled When Zero", func(t *testing.T) {
		r := newRouter(config.GatewayConfig{}, middleware.Middleware.RateLimit)

		for i := 0; i < 50; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})

	t.Run("Throttles Beyond Burst", func(t *testing.T) {
		r := newRouter(config.GatewayConfig{RateLimitPerMin: 3}, middleware.Middleware.RateLimit)

		codes := make([]int, 0, 5)
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			codes = append(codes, w.Code)
		}

		throttled := 0
		for _, code := range codes {
			if code == http.StatusTooManyRequests {
				throttled++
			}
		}
		if throttled == 0 {
			t.Errorf("expected throttling after burst, got codes %v", codes)
		}
	})
}
