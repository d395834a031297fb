package fakeapi

import (
	"time"

	"github.com/gin-gonic/gin"

	"ekey-bionyx/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "bionyx-fake-api"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the fake API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *Server) healthCheck(c *gin.Context) {
	srv.health(c, "healthy")
}

// readyCheck reports ready as soon as the server accepts connections; the store is in memory.
// @Summary Readiness Check
// @Description Check if the fake API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *Server) readyCheck(c *gin.Context) {
	srv.health(c, "ready")
}

// liveCheck handles liveness checks.
// @Summary Liveness Check
// @Description Check if the fake API process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *Server) liveCheck(c *gin.Context) {
	srv.health(c, "alive")
}

func (srv *Server) health(c *gin.Context, status string) {
	response.OK(c, gin.H{
		"status":  status,
		"version": HealthVersion,
		"service": ServiceName,
		"time":    response.Timestamp(time.Now()),
	})
}
