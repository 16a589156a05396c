package errors

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/morozai/core/internal/logger"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for request failures
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For background tasks:
//   - Log and swallow; a task outcome never reaches a client
//
// For services/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller decide how to log and respond

// returns a 400 bad request error
func BadRequest(c *gin.Context, detail string) {
	if detail == "" {
		detail = "invalid request"
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Detail: detail})
}

// returns a 404 not found error
func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Detail: "Not Found"})
}

// returns a 405 method not allowed error
func MethodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, ErrorResponse{Detail: "Method Not Allowed"})
}

// returns a 500 internal server error carrying the error text as detail
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.FromContext(c.Request.Context()).Error(message,
		"error", err,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	detail := sanitizeError(err)
	if detail == "" {
		detail = message
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Detail: detail})
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()

	if os.Getenv("ENVIRONMENT") != "production" {
		return errMsg
	}

	lower := strings.ToLower(errMsg)

	if strings.Contains(lower, "not ready") || strings.Contains(lower, "not loaded") {
		return "model is not loaded"
	}

	if strings.Contains(lower, "connection") || strings.Contains(lower, "network") ||
		strings.Contains(lower, "dial") {
		return "connection error occurred"
	}

	if strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline") {
		return "request timed out"
	}

	return "an error occurred"
}
