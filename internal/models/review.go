package models

import (
	"encoding/json"
	"math"
	"unicode/utf8"

	"github.com/gigit-app/gigit/backend/internal/errs"
	"github.com/google/uuid"
)

const (
	TitleMinLen   = 5
	TitleMaxLen   = 100
	CommentMinLen = 10
	CommentMaxLen = 1000
)

// EventCategories is the closed set of event categories a review can be filed
// under. Distinct from the searchable event-type facet.
var EventCategories = []string{
	"wedding",
	"party",
	"concert",
	"conference",
	"business",
	"birthday",
	"other",
}

// IsEventCategory reports whether v is one of the seven review categories.
func IsEventCategory(v string) bool {
	for _, c := range EventCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Review is a rated, moderated evaluation of a musician by another user.
// A musician may answer it with exactly one reply.
type Review struct {
	BaseModel
	MusicianID    uuid.UUID `json:"musicianId" gorm:"type:uuid;not null;index"`
	ReviewerID    uuid.UUID `json:"reviewerId" gorm:"type:uuid;not null;index"`
	Rating        int       `json:"rating" gorm:"not null"`
	Title         string    `json:"title" gorm:"not null"`
	Comment       string    `json:"comment" gorm:"not null"`
	EventType     string    `json:"eventType" gorm:"not null"`
	MusicianReply *string   `json:"musicianReply,omitempty"`
}

// Validate checks the draft before it may be persisted. The first offending
// field is reported; a failing draft never reaches the store.
func (r *Review) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return errs.Validation("rating", "must be between 1 and 5")
	}
	if n := utf8.RuneCountInString(r.Title); n < TitleMinLen || n > TitleMaxLen {
		return errs.Validation("title", "length must be between %d and %d characters", TitleMinLen, TitleMaxLen)
	}
	if n := utf8.RuneCountInString(r.Comment); n < CommentMinLen || n > CommentMaxLen {
		return errs.Validation("comment", "length must be between %d and %d characters", CommentMinLen, CommentMaxLen)
	}
	if !IsEventCategory(r.EventType) {
		return errs.Validation("eventType", "unknown event category: %q", r.EventType)
	}
	return nil
}

// RatingSummary is the derived reputation of one subject. Average keeps full
// precision; Rounded is for display only.
type RatingSummary struct {
	Average float64 `json:"average_rating"`
	Total   int     `json:"total_reviews"`
}

// Rounded returns the average rounded to one decimal place.
func (s RatingSummary) Rounded() float64 {
	return math.Round(s.Average*10) / 10
}

// MarshalJSON emits the display form: the stored average keeps full precision,
// the wire carries one decimal place.
func (s RatingSummary) MarshalJSON() ([]byte, error) {
	type display struct {
		Average float64 `json:"average_rating"`
		Total   int     `json:"total_reviews"`
	}
	return json.Marshal(display{Average: s.Rounded(), Total: s.Total})
}

// Summarize computes the reputation aggregate over a subject's full review
// set. Always a full rescan; incremental patching drifts when an edit changes
// a contributing rating value.
func Summarize(reviews []Review) RatingSummary {
	if len(reviews) == 0 {
		return RatingSummary{}
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return RatingSummary{
		Average: float64(sum) / float64(len(reviews)),
		Total:   len(reviews),
	}
}
