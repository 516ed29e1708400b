package dependency

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daily-budget/backend/config"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestEngine(t *testing.T, now time.Time) *gin.Engine {
	t.Helper()
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Database.Driver = config.DriverMemory
	cfg.App.Timezone = "UTC"

	injector, err := NewInjector(cfg, nil, nil, fixedClock{t: now})
	if err != nil {
		t.Fatalf("failed to build injector: %v", err)
	}
	return injector.Router.Setup(cfg.Server.Environment)
}

func call(t *testing.T, engine *gin.Engine, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	out := map[string]any{}
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("failed to decode %s %s response: %v", method, path, err)
		}
	}
	return w.Code, out
}

func TestInjector_DailyFlow(t *testing.T) {
	engine := newTestEngine(t, time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC))

	status, body := call(t, engine, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":    "ana@example.com",
		"name":     "Ana",
		"password": "Sup3rSecret!",
	})
	if status != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d %v", status, body)
	}
	token, _ := body["access_token"].(string)

	status, body = call(t, engine, http.MethodPut, "/api/v1/budgets", token, map[string]any{
		"monthly_amount": "3100",
		"month":          1,
		"year":           2026,
	})
	if status != http.StatusCreated {
		t.Fatalf("set budget: expected 201, got %d %v", status, body)
	}
	log, _ := body["daily_log"].(map[string]any)
	if log["daily_budget"] != "100.00" {
		t.Errorf("expected daily budget 100.00, got %v", log["daily_budget"])
	}

	status, body = call(t, engine, http.MethodPost, "/api/v1/expenses", token, map[string]any{
		"amount":   "30.50",
		"category": "food",
	})
	if status != http.StatusCreated {
		t.Fatalf("add expense: expected 201, got %d %v", status, body)
	}
	log, _ = body["daily_log"].(map[string]any)
	if log["remaining"] != "69.50" {
		t.Errorf("expected remaining 69.50, got %v", log["remaining"])
	}

	status, body = call(t, engine, http.MethodGet, "/api/v1/today", token, nil)
	if status != http.StatusOK {
		t.Fatalf("today: expected 200, got %d %v", status, body)
	}
	expenses, _ := body["expenses"].([]any)
	if len(expenses) != 1 {
		t.Errorf("expected 1 expense today, got %d", len(expenses))
	}
}

func TestInjector_Errors(t *testing.T) {
	engine := newTestEngine(t, time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC))

	_, body := call(t, engine, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":    "bea@example.com",
		"name":     "Bea",
		"password": "Sup3rSecret!",
	})
	token, _ := body["access_token"].(string)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		status int
	}{
		{name: "missing token", method: http.MethodGet, path: "/api/v1/today", status: http.StatusUnauthorized},
		{name: "non-positive budget", method: http.MethodPut, path: "/api/v1/budgets", token: token, body: map[string]any{"monthly_amount": "0", "month": 1, "year": 2026}, status: http.StatusBadRequest},
		{name: "month out of range", method: http.MethodPut, path: "/api/v1/budgets", token: token, body: map[string]any{"monthly_amount": "10", "month": 13, "year": 2026}, status: http.StatusBadRequest},
		{name: "malformed expense date", method: http.MethodPost, path: "/api/v1/expenses", token: token, body: map[string]any{"amount": "1", "category": "food", "date": "15/01/2026"}, status: http.StatusBadRequest},
		{name: "unknown category", method: http.MethodPost, path: "/api/v1/expenses", token: token, body: map[string]any{"amount": "1", "category": "pets"}, status: http.StatusBadRequest},
		{name: "malformed expense id", method: http.MethodDelete, path: "/api/v1/expenses/abc", token: token, status: http.StatusBadRequest},
		{name: "unknown expense", method: http.MethodDelete, path: "/api/v1/expenses/00000000-0000-0000-0000-000000000001", token: token, status: http.StatusNotFound},
		{name: "invalid start day", method: http.MethodPatch, path: "/api/v1/users/me/settings", token: token, body: map[string]any{"month_start_day": 31}, status: http.StatusBadRequest},
		{name: "health", method: http.MethodGet, path: "/health", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := call(t, engine, tt.method, tt.path, tt.token, tt.body)
			if status != tt.status {
				t.Errorf("expected %d, got %d %v", tt.status, status, body)
			}
		})
	}
}

func TestInjector_Metrics(t *testing.T) {
	engine := newTestEngine(t, time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC))

	call(t, engine, http.MethodGet, "/health", "", nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "budget_request_duration_seconds") {
		t.Error("expected request duration histogram in the exposition")
	}
}

func TestNewInjector_InvalidTimezone(t *testing.T) {
	cfg := config.Load()
	cfg.Database.Driver = config.DriverMemory
	cfg.App.Timezone = "Nowhere/Atlantis"

	if _, err := NewInjector(cfg, nil, nil, fixedClock{t: time.Now()}); err == nil {
		t.Error("expected an error for an unknown timezone")
	}
}
