package auth

// Pure authorization decision table over {identity, review, subject}. The
// review service enforces these before any mutating store call; clients may
// also use them to hide affordances, but hiding is a convenience, not a
// security boundary.

import (
	"github.com/gigit-app/gigit/backend/internal/models"
	"github.com/google/uuid"
)

// CanSubmitReview: any authenticated caller except the subject itself.
func CanSubmitReview(identity *models.Identity, subjectID uuid.UUID) bool {
	return identity != nil && identity.ID != subjectID
}

// CanEditReview: the author or an admin.
func CanEditReview(identity *models.Identity, review *models.Review) bool {
	return identity.Is(review.ReviewerID) || identity.IsAdmin()
}

// CanDeleteReview: the author or an admin.
func CanDeleteReview(identity *models.Identity, review *models.Review) bool {
	return identity.Is(review.ReviewerID) || identity.IsAdmin()
}

// CanReplyToReview: the subject musician, and only while no reply exists.
func CanReplyToReview(identity *models.Identity, review *models.Review) bool {
	return identity.Is(review.MusicianID) && review.MusicianReply == nil
}
