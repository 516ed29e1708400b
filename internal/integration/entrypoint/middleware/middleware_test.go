package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestTodayMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 02:30 UTC on Jan 1st is still Dec 31st in São Paulo.
	clock := fixedClock{t: time.Date(2026, time.January, 1, 2, 30, 0, 0, time.UTC)}

	tests := []struct {
		name     string
		header   string
		expected string
		status   int
	}{
		{name: "fallback zone", header: "", expected: "2026-01-01", status: http.StatusOK},
		{name: "caller zone behind UTC", header: "America/Sao_Paulo", expected: "2025-12-31", status: http.StatusOK},
		{name: "caller zone ahead of UTC", header: "Asia/Tokyo", expected: "2026-01-01", status: http.StatusOK},
		{name: "unknown zone", header: "Mars/Olympus", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			engine := gin.New()
			engine.Use(NewTodayMiddleware(clock, time.UTC).Resolve())
			engine.GET("/", func(c *gin.Context) {
				d, ok := GetTodayFromContext(c)
				if !ok {
					t.Fatal("expected today on the context")
				}
				got = d.String()
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(TimezoneHeader, tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, w.Code)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	now := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(2, time.Minute)
	rl.now = func() time.Time { return now }

	engine := gin.New()
	engine.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func() int {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		return w.Code
	}

	for i, expected := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		if got := call(); got != expected {
			t.Fatalf("attempt %d: expected %d, got %d", i+1, expected, got)
		}
	}

	now = now.Add(2 * time.Minute)
	if got := call(); got != http.StatusOK {
		t.Errorf("expected the window to reset, got %d", got)
	}

	rl.Cleanup()
	if len(rl.entries) != 1 {
		t.Errorf("expected the live entry to survive cleanup, got %d entries", len(rl.entries))
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiterWithConfig(0, time.Minute)

	engine := gin.New()
	engine.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, w.Code)
		}
	}
}
