// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. A nil checker
// reports the in-memory store.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
	}
}

// Check handles GET /health requests. A disconnected database answers 503 so
// load balancers stop routing to the instance.
func (h *HealthController) Check(c *gin.Context) {
	status, dbStatus, code := "ok", "memory", http.StatusOK
	if h.dbHealthChecker != nil {
		dbStatus = "connected"
		if !h.dbHealthChecker() {
			status, dbStatus, code = "degraded", "disconnected", http.StatusServiceUnavailable
		}
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
