package utils

import (
	"github.com/gin-gonic/gin"
)

// TraceIDKey is the gin context key holding the request id.
const TraceIDKey = "traceId"

type ErrorResponse struct {
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithError aborts the request with a JSON error body.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Message: message,
		TraceID: c.GetString(TraceIDKey),
	})
}
