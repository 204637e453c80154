package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/code"
	"github.com/Global-Manu-Man/cnk-ceneka/models"
)

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Success    bool                     `json:"success"`
	Message    string                   `json:"message,omitempty"`
	Data       interface{}              `json:"data,omitempty"`
	Pagination *models.PaginationResult `json:"pagination,omitempty"`
}

// Success writes a 200 envelope with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMessage writes a 200 envelope with data and a message
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created writes a 201 envelope with data and a message
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Paginated writes a 200 envelope with data and a pagination block
func Paginated(c *gin.Context, data interface{}, pagination models.PaginationResult) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       data,
		Pagination: &pagination,
	})
}

// PaginatedWithMessage writes a paginated envelope carrying a sentinel message
func PaginatedWithMessage(c *gin.Context, message string, data interface{}, pagination models.PaginationResult) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &pagination,
	})
}

// Fail writes the envelope for a known error code
func Fail(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), Response{
		Success: false,
		Message: code.GetMessage(errorCode),
	})
}

// FailWithMessage writes the envelope for a known error code with a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), Response{
		Success: false,
		Message: message,
	})
}

// NotFound writes a 404 envelope
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrRecordNotFound)
	}
	c.JSON(http.StatusNotFound, Response{
		Success: false,
		Message: message,
	})
}

// Unauthorized writes a 401 envelope
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrTokenInvalid)
	}
	c.JSON(http.StatusUnauthorized, Response{
		Success: false,
		Message: message,
	})
}

// ServerError writes the generic 500 envelope. Internal detail must be
// logged by the caller, never surfaced here.
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown)
}
