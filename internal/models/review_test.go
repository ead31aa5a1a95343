package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gigit-app/gigit/backend/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReview() *Review {
	return &Review{
		Rating:    4,
		Title:     "Great night",
		Comment:   "Kept the dance floor full until two in the morning.",
		EventType: "wedding",
	}
}

func TestReview_ValidateAcceptsValidDraft(t *testing.T) {
	require.NoError(t, validReview().Validate())
}

func TestReview_ValidateRating(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		r := validReview()
		r.Rating = rating
		err := r.Validate()
		require.Error(t, err)

		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "rating", verr.Field)
	}

	for rating := 1; rating <= 5; rating++ {
		r := validReview()
		r.Rating = rating
		assert.NoError(t, r.Validate())
	}
}

func TestReview_ValidateTitleLength(t *testing.T) {
	r := validReview()
	r.Title = "Hey!"
	err := r.Validate()
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)

	r.Title = strings.Repeat("x", TitleMaxLen+1)
	require.Error(t, r.Validate())

	// Boundary lengths are valid, counted in runes
	r.Title = strings.Repeat("x", TitleMinLen)
	assert.NoError(t, r.Validate())
	r.Title = strings.Repeat("é", TitleMaxLen)
	assert.NoError(t, r.Validate())
}

func TestReview_ValidateCommentLength(t *testing.T) {
	r := validReview()
	r.Comment = "too short"
	err := r.Validate()
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "comment", verr.Field)

	r.Comment = strings.Repeat("x", CommentMaxLen+1)
	require.Error(t, r.Validate())

	r.Comment = strings.Repeat("x", CommentMinLen)
	assert.NoError(t, r.Validate())
}

func TestReview_ValidateEventCategory(t *testing.T) {
	r := validReview()
	r.EventType = "bar crawl"
	err := r.Validate()
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "eventType", verr.Field)

	for _, category := range EventCategories {
		r.EventType = category
		assert.NoError(t, r.Validate())
	}
}

func TestIsEventCategory(t *testing.T) {
	assert.True(t, IsEventCategory("wedding"))
	assert.True(t, IsEventCategory("other"))
	assert.False(t, IsEventCategory("Wedding"))
	assert.False(t, IsEventCategory(""))
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]Review{{Rating: 5}, {Rating: 4}, {Rating: 3}})
	assert.Equal(t, 3, summary.Total)
	assert.InDelta(t, 4.0, summary.Average, 1e-9)

	// Removing the lowest rating recomputes over the remainder
	summary = Summarize([]Review{{Rating: 5}, {Rating: 4}})
	assert.Equal(t, 2, summary.Total)
	assert.InDelta(t, 4.5, summary.Average, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.Total)
	assert.Zero(t, summary.Average)
}

func TestRatingSummary_RoundedIsDisplayOnly(t *testing.T) {
	summary := Summarize([]Review{{Rating: 5}, {Rating: 4}, {Rating: 4}})

	// Internal precision stays full
	assert.InDelta(t, 13.0/3.0, summary.Average, 1e-9)
	assert.InDelta(t, 4.3, summary.Rounded(), 1e-9)
}

func TestRatingSummary_MarshalJSONRounds(t *testing.T) {
	summary := RatingSummary{Average: 13.0 / 3.0, Total: 3}

	data, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.JSONEq(t, `{"average_rating":4.3,"total_reviews":3}`, string(data))
}
