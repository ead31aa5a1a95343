// backend/internal/api/handlers/search.go
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gigit-app/gigit/backend/internal/models"
	"github.com/gigit-app/gigit/backend/internal/repository"
	"github.com/gigit-app/gigit/backend/internal/search"
	"github.com/gigit-app/gigit/backend/internal/services"
	"github.com/gigit-app/gigit/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SearchHandler struct {
	searchService *services.SearchService
	session       *search.Session
	repoManager   *repository.RepositoryManager
	logger        *logrus.Logger
}

func NewSearchHandler(
	searchService *services.SearchService,
	session *search.Session,
	repoManager *repository.RepositoryManager,
	logger *logrus.Logger,
) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		session:       session,
		repoManager:   repoManager,
		logger:        logger,
	}
}

// HandleSearch processes a faceted search. Repeated facet parameters,
// single-valued region/location/q; the compiler normalizes everything before
// it reaches the repository.
func (h *SearchHandler) HandleSearch(c *gin.Context) {
	startTime := time.Now()

	req := search.FromValues(c.Request.URL.Query())
	// Snapshot before spawning: gin recycles the context once the handler
	// returns.
	client := h.clientInfo(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	result, err := h.searchService.Search(ctx, req)
	if err != nil {
		go h.trackSearchQuery(req, 0, time.Since(startTime), client)
		writeError(c, h.logger, err)
		return
	}

	responseTime := time.Since(startTime)
	go h.trackSearchQuery(req, result.Total, responseTime, client)

	h.logger.WithFields(logrus.Fields{
		"results_count": result.Total,
		"response_time": responseTime.Milliseconds(),
	}).Info("Search completed successfully")

	utils.SuccessResponse(c, http.StatusOK, "Search completed", result)
}

// HandleCatalog serves the session's current authoritative result, populated
// by the automatic criteria-less execute at startup. Filtered searches go
// through HandleSearch and do not touch the session.
func (h *SearchHandler) HandleCatalog(c *gin.Context) {
	result, err, pending := h.session.Snapshot()
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if result == nil {
		utils.SuccessResponse(c, http.StatusOK, "Catalog warming up", gin.H{"pending": pending})
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Catalog", result)
}

// HandleSuggest returns facet suggestions for a partial input, excluding
// values the caller already selected (passed as repeated `selected` params).
func (h *SearchHandler) HandleSuggest(c *gin.Context) {
	facet := search.Facet(c.Query("facet"))
	if len(search.Vocabulary(facet)) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Unknown facet", nil)
		return
	}

	state := &search.FilterState{}
	for _, v := range c.QueryArray("selected") {
		state.AddTag(facet, v)
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	suggestions := state.SuggestionList(facet, c.Query("q"), limit)

	utils.SuccessResponse(c, http.StatusOK, "Suggestions retrieved", models.SuggestResponse{
		Facet:       string(facet),
		Suggestions: suggestions,
	})
}

// HandleGetMusician returns one profile.
func (h *SearchHandler) HandleGetMusician(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid musician id", err)
		return
	}

	musician, err := h.repoManager.Musician.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Musician not found", nil)
			return
		}
		h.logger.WithError(err).Error("Failed to load musician")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load musician", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Musician retrieved", musician)
}

// Helper methods

// requestClient carries the per-request metadata the analytics goroutine
// needs, copied out of the gin context while the handler still owns it.
type requestClient struct {
	session   string
	userAgent string
	ip        string
}

func (h *SearchHandler) clientInfo(c *gin.Context) requestClient {
	return requestClient{
		session:   h.getUserSession(c),
		userAgent: c.GetHeader("User-Agent"),
		ip:        c.ClientIP(),
	}
}

func (h *SearchHandler) trackSearchQuery(req search.Request, resultsCount int, responseTime time.Duration, client requestClient) {
	searchQuery := &models.SearchQuery{
		QueryParams:     req.Params.Encode(),
		UserSession:     client.session,
		ResultsCount:    resultsCount,
		SearchTimestamp: time.Now(),
		ResponseTimeMs:  int(responseTime.Milliseconds()),
		UserAgent:       client.userAgent,
		IPAddress:       client.ip,
	}
	if searchQuery.QueryParams == "" {
		searchQuery.QueryParams = "(all)"
	}

	if err := h.repoManager.SearchQuery.Create(searchQuery); err != nil {
		h.logger.WithError(err).Error("Failed to track search query")
	}
}

func (h *SearchHandler) getUserSession(c *gin.Context) string {
	if session := c.GetHeader("X-Session-ID"); utils.ValidateSessionID(session) {
		return session
	}

	// Basic fingerprinting when the client does not send a session header
	return utils.GenerateSessionID(c.ClientIP() + c.GetHeader("User-Agent"))
}
