package handlers

import (
	"net/http"

	"github.com/gigit-app/gigit/backend/internal/database"
	"github.com/gigit-app/gigit/backend/internal/errs"
	"github.com/gigit-app/gigit/backend/internal/middleware"
	"github.com/gigit-app/gigit/backend/internal/repository"
	"github.com/gigit-app/gigit/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const recentSearchLimit = 50

// AdminHandler serves operational insight endpoints: search analytics, cache
// statistics, last-known service health. Admin role required.
type AdminHandler struct {
	repoManager *repository.RepositoryManager
	cache       *database.Cache
	logger      *logrus.Logger
}

func NewAdminHandler(repoManager *repository.RepositoryManager, cache *database.Cache, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		repoManager: repoManager,
		cache:       cache,
		logger:      logger,
	}
}

func (h *AdminHandler) requireAdmin(c *gin.Context) bool {
	if !middleware.CallerIdentity(c).IsAdmin() {
		writeError(c, h.logger, errs.Auth("admin role required"))
		return false
	}
	return true
}

// HandleStats returns the recent search queries, Redis cache statistics, and
// the last recorded health row per service.
func (h *AdminHandler) HandleStats(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	recent, err := h.repoManager.SearchQuery.GetRecentSearches(recentSearchLimit)
	if err != nil {
		writeError(c, h.logger, errs.Transient(err))
		return
	}

	services, err := h.repoManager.SystemHealth.GetAllServicesHealth()
	if err != nil {
		writeError(c, h.logger, errs.Transient(err))
		return
	}

	cacheStats, err := h.cache.GetCacheStats(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Warn("Failed to read cache stats")
		cacheStats = map[string]interface{}{}
	}

	utils.SuccessResponse(c, http.StatusOK, "Stats retrieved", gin.H{
		"recent_searches": recent,
		"services":        services,
		"cache":           cacheStats,
	})
}

// HandleClearCache flushes the whole Redis cache.
func (h *AdminHandler) HandleClearCache(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	if err := h.cache.ClearAllCache(c.Request.Context()); err != nil {
		writeError(c, h.logger, errs.Transient(err))
		return
	}

	h.logger.Info("Cache cleared by admin request")
	utils.SuccessResponse(c, http.StatusOK, "Cache cleared", nil)
}
