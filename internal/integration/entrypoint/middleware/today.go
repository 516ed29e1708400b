package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daily-budget/backend/internal/application/adapter"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/valueobject"
	"github.com/daily-budget/backend/internal/integration/entrypoint/dto"
)

const (
	// TodayKey is the context key for the request's calendar date.
	TodayKey ContextKey = "today"

	// TimezoneHeader carries the caller's IANA zone.
	TimezoneHeader = "X-Timezone"
)

// TodayMiddleware decides which calendar day a request happens on.
type TodayMiddleware struct {
	clock    adapter.Clock
	fallback *time.Location
}

// NewTodayMiddleware creates a middleware that uses fallback when the caller
// sends no X-Timezone header.
func NewTodayMiddleware(clock adapter.Clock, fallback *time.Location) *TodayMiddleware {
	if fallback == nil {
		fallback = time.UTC
	}
	return &TodayMiddleware{clock: clock, fallback: fallback}
}

// Resolve stores today's date in the caller's zone on the context.
func (m *TodayMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		loc := m.fallback
		if name := c.GetHeader(TimezoneHeader); name != "" {
			parsed, err := time.LoadLocation(name)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Unknown time zone",
					Code:  string(domainerror.ErrCodeInvalidTimezone),
				})
				return
			}
			loc = parsed
		}

		c.Set(string(TodayKey), valueobject.TodayIn(m.clock.Now(), loc))
		c.Next()
	}
}

// GetTodayFromContext extracts the request's calendar date.
func GetTodayFromContext(c *gin.Context) (valueobject.Date, bool) {
	v, exists := c.Get(string(TodayKey))
	if !exists {
		return valueobject.Date{}, false
	}
	d, ok := v.(valueobject.Date)
	return d, ok
}
