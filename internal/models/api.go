package models

import "github.com/google/uuid"

// Request/response DTOs for the HTTP layer. Binding tags are enforced by gin's
// validator; field-level rules beyond shape live in Review.Validate.

type CreateReviewRequest struct {
	MusicianID uuid.UUID `json:"musicianId" binding:"required"`
	Rating     int       `json:"rating" binding:"required"`
	Title      string    `json:"title" binding:"required"`
	Comment    string    `json:"comment" binding:"required"`
	EventType  string    `json:"eventType" binding:"required"`
}

// UpdateReviewRequest carries the new field values for an edit. Pointers
// distinguish "not supplied" from zero values.
type UpdateReviewRequest struct {
	Rating    *int    `json:"rating,omitempty"`
	Title     *string `json:"title,omitempty"`
	Comment   *string `json:"comment,omitempty"`
	EventType *string `json:"eventType,omitempty"`
}

type ReplyRequest struct {
	Text string `json:"text" binding:"required"`
}

type ReviewListResponse struct {
	Reviews []Review      `json:"reviews"`
	Summary RatingSummary `json:"summary"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}

type SuggestResponse struct {
	Facet       string   `json:"facet"`
	Suggestions []string `json:"suggestions"`
}
