package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope every API endpoint returns. The dashboard
// displays Message verbatim on failure, so it stays a flat string.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, 400, message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, 404, message)
}

func TooManyRequests(c *gin.Context, message string) {
	ErrorResponse(c, 429, message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, 500, message)
}
