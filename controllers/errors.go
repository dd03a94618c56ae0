package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"menuapi-backend/services"
	"menuapi-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidBody     = "Invalid request body."
	msgMissingOpening  = "Each opening item must have day, opensAt, and closesAt."
	msgInvalidCreds    = "Invalid credentials."
	msgAlreadyExists   = "Resource already exists."
	msgInternalFailure = "Internal server error."
)

// respondWithServiceError maps a service failure to its status. notFound is the
// message used for 404s; anything unclassified is logged and hidden behind a 500.
func respondWithServiceError(c *gin.Context, err error, notFound string) {
	switch services.Reason(err) {
	case services.ReasonNotFound:
		utils.RespondWithError(c, http.StatusNotFound, notFound)
	case services.ReasonMissingOpeningFields:
		slog.DebugContext(c.Request.Context(), "rejected body", "error", err, "trace_id", c.GetString(utils.TraceIDKey))
		utils.RespondWithError(c, http.StatusBadRequest, msgMissingOpening)
	case services.ReasonInvalidBody:
		slog.DebugContext(c.Request.Context(), "rejected body", "error", err, "trace_id", c.GetString(utils.TraceIDKey))
		utils.RespondWithError(c, http.StatusBadRequest, msgInvalidBody)
	case services.ReasonConflict:
		utils.RespondWithError(c, http.StatusConflict, msgAlreadyExists)
	case services.ReasonUnauthorized:
		utils.RespondWithError(c, http.StatusUnauthorized, msgInvalidCreds)
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
			"trace_id", c.GetString(utils.TraceIDKey),
		)
		utils.RespondWithError(c, http.StatusInternalServerError, msgInternalFailure)
	}
}

// idParam reads the numeric :id. Anything else is answered with a 404.
func idParam(c *gin.Context, notFound string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.RespondWithError(c, http.StatusNotFound, notFound)
		return 0, false
	}
	return uint(id), true
}

// bindPayload decodes the JSON body into a generic object for the validation layer.
func bindPayload(c *gin.Context) (map[string]any, bool) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, msgInvalidBody)
		return nil, false
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, true
}

// Health answers GET /v1
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "API is running. Use /v1/restaurants",
	})
}
