package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the error shape surfaced at the HTTP edge. Details never
// reach the client; they are logged server-side for 5xx responses.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Details string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code, message string, status int, details ...string) *APIError {
	err := &APIError{
		Code:    code,
		Message: message,
		Status:  status,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

var (
	ErrInvalidInput = NewAPIError("INVALID_INPUT", "Invalid request data", http.StatusBadRequest)
	ErrUnauthorized = NewAPIError("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	ErrNotFound     = NewAPIError("NOT_FOUND", "Resource not found", http.StatusNotFound)
	ErrConflict     = NewAPIError("CONFLICT", "Resource conflict", http.StatusConflict)
	ErrInternal     = NewAPIError("INTERNAL_SERVER_ERROR", "Internal server error", http.StatusInternalServerError)
)

func Wrap(err error, code, message string, status int) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return NewAPIError(code, message, status, err.Error())
}

// writeError renders an error as the {"error": ...} JSON body the clients
// expect and aborts the request.
func writeError(c *gin.Context, err error) {
	apiErr, ok := err.(*APIError)
	if !ok {
		apiErr = Wrap(err, "UNKNOWN_ERROR", "Unexpected error", http.StatusInternalServerError)
	}
	if apiErr.Status >= 500 {
		slog.Error("server error", "code", apiErr.Code, "error", apiErr.Message, "details", apiErr.Details)
	}

	c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr.Message})
}

func badRequest(c *gin.Context, message string) {
	writeError(c, NewAPIError("INVALID_INPUT", message, http.StatusBadRequest))
}
