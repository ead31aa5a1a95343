package handlers

import (
	"net/http"

	"github.com/gigit-app/gigit/backend/internal/health"
	"github.com/gigit-app/gigit/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthHandler serves liveness and dependency-health endpoints
type HealthHandler struct {
	checker *health.HealthChecker
	logger  *logrus.Logger
}

func NewHealthHandler(checker *health.HealthChecker, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		logger:  logger,
	}
}

// HandleLiveness is a cheap check that the process is up
func (h *HealthHandler) HandleLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "gigit-api",
	})
}

// HandleHealth reports the status of PostgreSQL and Redis. Cached results
// from the periodic checker are preferred over fresh probes.
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	if cached, err := h.checker.CheckCached(c.Request.Context()); err == nil && len(cached.Services) > 0 {
		status := http.StatusOK
		if cached.Status == "unhealthy" {
			status = http.StatusServiceUnavailable
		}
		utils.SuccessResponse(c, status, "Health status (cached)", cached)
		return
	}

	overall := h.checker.CheckAll()
	status := http.StatusOK
	if overall.Status == "unhealthy" {
		status = http.StatusServiceUnavailable
	}
	utils.SuccessResponse(c, status, "Health status", overall)
}
