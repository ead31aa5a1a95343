package auth

import (
	"testing"

	"github.com/gigit-app/gigit/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanSubmitReview(t *testing.T) {
	subject := uuid.New()
	reviewer := &models.Identity{ID: uuid.New(), Role: models.RoleUser}

	assert.True(t, CanSubmitReview(reviewer, subject))
	assert.False(t, CanSubmitReview(nil, subject), "anonymous callers cannot submit")
	assert.False(t, CanSubmitReview(&models.Identity{ID: subject}, subject), "no self-reviews")
}

func TestCanEditReview(t *testing.T) {
	author := uuid.New()
	review := &models.Review{ReviewerID: author}

	assert.True(t, CanEditReview(&models.Identity{ID: author}, review))
	assert.True(t, CanEditReview(&models.Identity{ID: uuid.New(), Role: models.RoleAdmin}, review))
	assert.False(t, CanEditReview(&models.Identity{ID: uuid.New()}, review))
	assert.False(t, CanEditReview(nil, review))
}

func TestCanDeleteReview(t *testing.T) {
	author := uuid.New()
	review := &models.Review{ReviewerID: author}

	assert.True(t, CanDeleteReview(&models.Identity{ID: author}, review))
	assert.True(t, CanDeleteReview(&models.Identity{ID: uuid.New(), Role: models.RoleAdmin}, review))
	assert.False(t, CanDeleteReview(&models.Identity{ID: uuid.New()}, review))
	assert.False(t, CanDeleteReview(nil, review))
}

func TestCanReplyToReview(t *testing.T) {
	musician := uuid.New()
	review := &models.Review{MusicianID: musician, ReviewerID: uuid.New()}

	assert.True(t, CanReplyToReview(&models.Identity{ID: musician}, review))
	assert.False(t, CanReplyToReview(&models.Identity{ID: review.ReviewerID}, review), "authors do not reply to their own reviews")
	assert.False(t, CanReplyToReview(&models.Identity{ID: uuid.New(), Role: models.RoleAdmin}, review), "admin role does not grant reply")
	assert.False(t, CanReplyToReview(nil, review))

	reply := "thanks for having us"
	review.MusicianReply = &reply
	assert.False(t, CanReplyToReview(&models.Identity{ID: musician}, review), "one reply only")
}
