package utils

import "github.com/gin-gonic/gin"

// APIError is the error half of the wire envelope. Code is a stable
// machine-readable identifier, Message is for humans.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondList is RespondJSON plus an explicit element count.
func RespondList(c *gin.Context, code int, count int, data interface{}) {
	c.JSON(code, APIResponse{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

func RespondError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	})
}

func RespondErrorDetails(c *gin.Context, status int, code string, message string, details interface{}) {
	c.JSON(status, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
