package response

import (
	"github.com/gin-gonic/gin"

	"github.com/subahan00/job-portal/pkg/apperror"
)

// Response standardizes the API JSON envelope. Kind is the stable
// machine-readable error category; Message stays human-facing.
type Response struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Data      interface{}   `json:"data,omitempty"`
	Kind      apperror.Kind `json:"kind,omitempty"`
	Error     interface{}   `json:"error,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)
	return idStr
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, kind apperror.Kind, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Kind:      kind,
		Error:     err,
		RequestID: requestID(c),
	})
}
