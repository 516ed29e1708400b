package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/daily-budget/backend/internal/application/adapter"
)

var _ adapter.LedgerMetrics = (*Metrics)(nil)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.IncrDailyLog(adapter.DailyLogCreated)
	m.IncrDailyLog(adapter.DailyLogCreated)
	m.IncrDailyLog(adapter.DailyLogRefreshed)
	m.IncrExpenseAdded("food")

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{name: "created", got: testutil.ToFloat64(m.dailyLogs.WithLabelValues(adapter.DailyLogCreated)), expected: 2},
		{name: "refreshed", got: testutil.ToFloat64(m.dailyLogs.WithLabelValues(adapter.DailyLogRefreshed)), expected: 1},
		{name: "retried", got: testutil.ToFloat64(m.dailyLogs.WithLabelValues(adapter.DailyLogRetried)), expected: 0},
		{name: "food", got: testutil.ToFloat64(m.expensesAdded.WithLabelValues("food")), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	engine := gin.New()
	engine.Use(m.Middleware())
	engine.GET("/expenses/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/expenses/1", "/expenses/2", "/missing"} {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if n := testutil.CollectAndCount(m.requestDuration); n != 2 {
		t.Errorf("expected 2 series (route template and unmatched), got %d", n)
	}

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "budget_request_duration_seconds" {
			found = true
		}
	}
	if !found {
		t.Error("expected budget_request_duration_seconds to be registered")
	}
}
