package httpserver

import (
	"calendar-assistant/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "calendar-assistant"
)

type healthResp struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Service string `json:"service"`
}

func newHealthResp(status string) healthResp {
	return healthResp{Status: status, Version: HealthVersion, Service: ServiceName}
}

// healthCheck reports that the process is up. It never consults the completion
// model or the calendar.
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp(response.StatusHealthy))
}

// readyCheck handles readiness check requests.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, newHealthResp("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}
