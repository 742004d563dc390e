package response

import (
	"clipstream/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Envelope is the shape every endpoint responds with.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorEnvelope mirrors Envelope for failures, with an error detail list.
type ErrorEnvelope struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func OK(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, Envelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	})
}

func Error(c *gin.Context, err error) {
	statusCode, message := apperrors.Status(err)
	c.JSON(statusCode, ErrorEnvelope{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
		Errors:     []string{},
	})
}
