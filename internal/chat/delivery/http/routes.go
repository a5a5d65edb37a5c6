package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The group
// is expected to be mounted at /api; rate limiting is applied group-wide
// by the server.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/chat", h.Chat)
	rg.GET("/employees", h.Employees)
	rg.GET("/employees/:id", h.EmployeeDetail)
	rg.GET("/languages", h.Languages)
	rg.GET("/translations/:language_code", h.Translations)
	rg.GET("/agents", h.Agents)
	rg.DELETE("/session/:session_id", h.ClearSession)
}
