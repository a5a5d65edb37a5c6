package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/chat"
	"hr-assistant/pkg/response"
)

// mapError translates use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmployeeNotFound):
		response.NotFound(c, "Employee not found")
	case errors.Is(err, chat.ErrEmptyMessage):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
