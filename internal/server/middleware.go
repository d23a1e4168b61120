package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"facility-website/internal/common/logger"
	"facility-website/internal/common/metrics"
	"facility-website/internal/common/observability"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags every request with an identifier for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("requestId", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// RequestMetrics records per-route counters and latency, both through the
// prometheus vars and the otel meter.
func RequestMetrics(obs *observability.Observability) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		elapsed := time.Since(start)

		metrics.HTTPRequestsTotal.WithLabelValues(route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

		if obs != nil {
			obs.RecordRequest(c.Request.Context(), route, status)
			obs.RecordRequestDuration(c.Request.Context(), elapsed, route)
		}
	}
}

// Recovery converts a panic into the generic 500 envelope. The panic value
// and stack stay in the logs; the response body never carries internals.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered", map[string]interface{}{
					"route": c.FullPath(),
					"panic": fmt.Sprintf("%v", r),
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Ein Fehler ist aufgetreten. Bitte versuchen Sie es später erneut.",
				})
			}
		}()
		c.Next()
	}
}
