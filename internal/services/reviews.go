package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gigit-app/gigit/backend/internal/auth"
	"github.com/gigit-app/gigit/backend/internal/database"
	"github.com/gigit-app/gigit/backend/internal/errs"
	"github.com/gigit-app/gigit/backend/internal/models"
	"github.com/gigit-app/gigit/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const summaryCacheTTL = 10 * time.Minute

// ReviewService owns the review lifecycle: validation, authorization, the
// store round trips, and the reputation recompute that follows every
// mutation. Authorization is checked here before anything reaches the store,
// independent of whatever the client chose to show.
type ReviewService struct {
	reviews   models.ReviewRepository
	musicians models.MusicianRepository
	cache     *database.Cache
	logger    *logrus.Logger
}

func NewReviewService(repoManager *repository.RepositoryManager, cache *database.Cache, logger *logrus.Logger) *ReviewService {
	return &ReviewService{
		reviews:   repoManager.Review,
		musicians: repoManager.Musician,
		cache:     cache,
		logger:    logger,
	}
}

// Submit validates and persists a draft, then recomputes the subject's
// aggregate. Anonymous callers and self-reviews are rejected before any
// store call.
func (s *ReviewService) Submit(ctx context.Context, draft *models.Review, identity *models.Identity) (*models.Review, error) {
	if !auth.CanSubmitReview(identity, draft.MusicianID) {
		if identity == nil {
			return nil, errs.Auth("sign in to write a review")
		}
		return nil, errs.Auth("musicians cannot review themselves")
	}

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.musicians.GetByID(ctx, draft.MusicianID); err != nil {
		return nil, storeError(err, "musician", draft.MusicianID)
	}

	draft.ReviewerID = identity.ID
	if err := s.reviews.Create(ctx, draft); err != nil {
		return nil, errs.Transient(err)
	}

	s.logger.WithFields(logrus.Fields{
		"review_id":   draft.ID,
		"musician_id": draft.MusicianID,
		"rating":      draft.Rating,
	}).Info("Review submitted")

	s.recompute(ctx, draft.MusicianID)
	return draft, nil
}

// Edit re-validates the new field values and stores them. Only the author or
// an admin may edit. Concurrent edits resolve last-write-wins at the store.
func (s *ReviewService) Edit(ctx context.Context, reviewID uuid.UUID, fields models.UpdateReviewRequest, identity *models.Identity) (*models.Review, error) {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, storeError(err, "review", reviewID)
	}

	if !auth.CanEditReview(identity, review) {
		return nil, errs.Auth("only the author or an admin may edit a review")
	}

	if fields.Rating != nil {
		review.Rating = *fields.Rating
	}
	if fields.Title != nil {
		review.Title = *fields.Title
	}
	if fields.Comment != nil {
		review.Comment = *fields.Comment
	}
	if fields.EventType != nil {
		review.EventType = *fields.EventType
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, errs.Transient(err)
	}

	s.logger.WithField("review_id", reviewID).Info("Review edited")
	s.recompute(ctx, review.MusicianID)
	return review, nil
}

// Delete removes the review and recomputes the subject's aggregate. Only the
// author or an admin may delete; deletion is terminal.
func (s *ReviewService) Delete(ctx context.Context, reviewID uuid.UUID, identity *models.Identity) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return storeError(err, "review", reviewID)
	}

	if !auth.CanDeleteReview(identity, review) {
		return errs.Auth("only the author or an admin may delete a review")
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return storeError(err, "review", reviewID)
	}

	s.logger.WithField("review_id", reviewID).Info("Review deleted")
	s.recompute(ctx, review.MusicianID)
	return nil
}

// Reply sets the subject musician's one-time response. A second reply is a
// conflict, never an overwrite. Replies do not touch the rating aggregate.
func (s *ReviewService) Reply(ctx context.Context, reviewID uuid.UUID, text string, identity *models.Identity) (*models.Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errs.Validation("text", "reply text must not be empty")
	}

	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, storeError(err, "review", reviewID)
	}

	if !auth.CanReplyToReview(identity, review) {
		if identity.Is(review.MusicianID) {
			return nil, errs.Conflict("this review already has a reply")
		}
		return nil, errs.Auth("only the reviewed musician may reply")
	}

	review.MusicianReply = &text
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, errs.Transient(err)
	}

	s.logger.WithField("review_id", reviewID).Info("Musician replied to review")
	return review, nil
}

// ListBySubject returns one page of a subject's reviews together with the
// current aggregate.
func (s *ReviewService) ListBySubject(ctx context.Context, subjectID uuid.UUID, page, perPage int, sort models.ReviewSort) (*models.ReviewListResponse, error) {
	reviews, err := s.reviews.ListBySubject(ctx, subjectID, page, perPage, sort)
	if err != nil {
		return nil, errs.Transient(err)
	}

	summary, err := s.SummaryFor(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	return &models.ReviewListResponse{
		Reviews: reviews,
		Summary: summary,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// SummaryFor returns the subject's reputation aggregate, from cache when the
// cached value is known fresh, otherwise by full rescan of the review set.
func (s *ReviewService) SummaryFor(ctx context.Context, subjectID uuid.UUID) (models.RatingSummary, error) {
	if cached, err := s.cache.GetCachedRatingSummary(ctx, subjectID.String()); err == nil {
		return *cached, nil
	}

	reviews, err := s.reviews.ListAllBySubject(ctx, subjectID)
	if err != nil {
		return models.RatingSummary{}, errs.Transient(err)
	}

	summary := models.Summarize(reviews)
	if err := s.cache.CacheRatingSummary(ctx, subjectID.String(), summary, summaryCacheTTL); err != nil {
		s.logger.WithError(err).Warn("Failed to cache rating summary")
	}
	return summary, nil
}

// recompute refreshes the subject's aggregate after a mutation. The cached
// summary is dropped first, synchronously, so a read that races the refresh
// can never see the pre-mutation value from this service's own cache.
func (s *ReviewService) recompute(ctx context.Context, subjectID uuid.UUID) {
	if err := s.cache.InvalidateRatingSummary(ctx, subjectID.String()); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate rating summary cache")
	}
	if err := s.cache.InvalidateSearchCache(ctx); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate search result cache")
	}

	if _, err := s.SummaryFor(ctx, subjectID); err != nil {
		s.logger.WithError(err).WithField("musician_id", subjectID).Warn("Failed to recompute rating summary")
	}
}

func storeError(err error, kind string, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound(kind, id.String())
	}
	return errs.Transient(err)
}
