// internal/api/response_helpers.go
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope for the admin surface. The generation endpoint
// does not use it: the upstream caller consumes that body field-for-field.
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
}

// APIError is the admin-surface error body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ResponseHelper builds envelope responses.
type ResponseHelper struct{}

// NewResponseHelper creates a ResponseHelper.
func NewResponseHelper() *ResponseHelper {
	return &ResponseHelper{}
}

// Success writes a 200 envelope around data.
func (rh *ResponseHelper) Success(c *gin.Context, data interface{}, message ...string) {
	response := &APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
		RequestID: rh.getRequestID(c),
	}
	if len(message) > 0 {
		response.Message = message[0]
	}
	c.JSON(http.StatusOK, response)
}

// Error writes an error envelope with the given status.
func (rh *ResponseHelper) Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, &APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
		Timestamp: time.Now(),
		RequestID: rh.getRequestID(c),
	})
}

// BadRequest writes a 400 envelope.
func (rh *ResponseHelper) BadRequest(c *gin.Context, message string) {
	rh.Error(c, http.StatusBadRequest, "bad_request", message)
}

// NotFound writes a 404 envelope.
func (rh *ResponseHelper) NotFound(c *gin.Context, message string) {
	rh.Error(c, http.StatusNotFound, "not_found", message)
}

func (rh *ResponseHelper) getRequestID(c *gin.Context) string {
	return c.GetString("request_id")
}
