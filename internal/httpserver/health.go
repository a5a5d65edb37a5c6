package httpserver

import (
	"github.com/gin-gonic/gin"

	"hr-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "HR Assistant API is running"
	HealthVersion = "2.0.0"
	ServiceName   = "hr-assistant"
)

// rootStatus reports service status plus the live agent roster, which the
// frontend uses to render the "agents online" panel.
// @Summary Service Status
// @Description Service status with the list of registered agents
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service status"
// @Router / [get]
func (srv HTTPServer) rootStatus(c *gin.Context) {
	agents := srv.chatUC.Agents(c.Request.Context())
	names := make([]string, len(agents))
	for i, a := range agents {
		names[i] = a.Name
	}

	response.OK(c, gin.H{
		"status":   "online",
		"message":  HealthMessage,
		"version":  HealthVersion,
		"service":  ServiceName,
		"agents":   names,
		"features": []string{"conversation_memory", "multi_language"},
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check — returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
