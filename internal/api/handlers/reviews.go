// backend/internal/api/handlers/reviews.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gigit-app/gigit/backend/internal/middleware"
	"github.com/gigit-app/gigit/backend/internal/models"
	"github.com/gigit-app/gigit/backend/internal/services"
	"github.com/gigit-app/gigit/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ReviewsHandler struct {
	reviewService *services.ReviewService
	logger        *logrus.Logger
}

func NewReviewsHandler(reviewService *services.ReviewService, logger *logrus.Logger) *ReviewsHandler {
	return &ReviewsHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// HandleCreate submits a new review for a musician.
func (h *ReviewsHandler) HandleCreate(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	draft := &models.Review{
		MusicianID: req.MusicianID,
		Rating:     req.Rating,
		Title:      req.Title,
		Comment:    req.Comment,
		EventType:  req.EventType,
	}

	review, err := h.reviewService.Submit(c.Request.Context(), draft, middleware.CallerIdentity(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Review created", review)
}

// HandleListBySubject returns one page of a musician's reviews plus the
// aggregate.
func (h *ReviewsHandler) HandleListBySubject(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid musician id", err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	sort := models.ParseReviewSort(c.DefaultQuery("sort", "newest"))

	resp, err := h.reviewService.ListBySubject(c.Request.Context(), subjectID, page, perPage, sort)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reviews retrieved", resp)
}

// HandleRating returns only the aggregate for a musician.
func (h *ReviewsHandler) HandleRating(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid musician id", err)
		return
	}

	summary, err := h.reviewService.SummaryFor(c.Request.Context(), subjectID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rating retrieved", summary)
}

// HandleUpdate edits a review's fields.
func (h *ReviewsHandler) HandleUpdate(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid review id", err)
		return
	}

	var req models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	review, err := h.reviewService.Edit(c.Request.Context(), reviewID, req, middleware.CallerIdentity(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Review updated", review)
}

// HandleDelete removes a review.
func (h *ReviewsHandler) HandleDelete(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid review id", err)
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), reviewID, middleware.CallerIdentity(c)); err != nil {
		writeError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Review deleted", nil)
}

// HandleReply sets the musician's one-time reply.
func (h *ReviewsHandler) HandleReply(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid review id", err)
		return
	}

	var req models.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	review, err := h.reviewService.Reply(c.Request.Context(), reviewID, req.Text, middleware.CallerIdentity(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reply added", review)
}
