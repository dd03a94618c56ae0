package config

import (
	"log/slog"
	"time"

	"menuapi-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the trace id in and out of the API.
const RequestIDHeader = "X-Request-ID"

const slowRequestThreshold = 200 * time.Millisecond

// TraceID reuses the caller's X-Request-ID or generates one, and stores it for
// loggers and error bodies.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(utils.TraceIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency,
			"trace_id", c.GetString(utils.TraceIDKey),
		}

		slog.Info("request", attrs...)

		if latency > slowRequestThreshold {
			slog.Warn("slow request", attrs...)
		}
	}
}
