package respond

import (
	"github.com/gin-gonic/gin"

	"resume-assistant/internal/shared/telemetry"
)

// ErrorResponse is the error body every endpoint returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs the failure and aborts with a flat error body.
func Error(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
