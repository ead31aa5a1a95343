package models

import (
	"github.com/google/uuid"
)

// Musician is a discoverable service provider profile.
type Musician struct {
	BaseModel
	FirstName       string      `json:"firstname" gorm:"not null"`
	LastName        string      `json:"lastname" gorm:"not null"`
	Instruments     StringArray `json:"instrument" gorm:"type:text[]"`
	Genres          StringArray `json:"musictype" gorm:"type:text[]"`
	EventTypes      StringArray `json:"eventTypes" gorm:"type:text[]"`
	Region          string      `json:"region" gorm:"index"`
	Location        string      `json:"location"`
	Bio             string      `json:"bio"`
	Phone           string      `json:"phone"`
	ExperienceYears int         `json:"experienceYears"`
	IsActive        bool        `json:"isActive" gorm:"default:true"`

	// Associations
	Reviews []Review `json:"-" gorm:"foreignKey:MusicianID"`
}

// SearchCriteria is the normalized form of a compiled search request. Facets
// are always canonical string slices here; the single-or-repeated shape of the
// wire never reaches the repository.
type SearchCriteria struct {
	Instruments []string
	Genres      []string
	EventTypes  []string
	Region      string
	Location    string
	Query       string
}

// MusicianSummary is what a search result row carries: the profile plus its
// aggregate reputation.
type MusicianSummary struct {
	ID              uuid.UUID   `json:"id"`
	FirstName       string      `json:"firstname"`
	LastName        string      `json:"lastname"`
	Instruments     StringArray `json:"instrument"`
	Genres          StringArray `json:"musictype"`
	Region          string      `json:"region"`
	Location        string      `json:"location"`
	ExperienceYears int         `json:"experienceYears"`
	AverageRating   float64     `json:"average_rating"`
	TotalReviews    int         `json:"total_reviews"`
}

// SearchResult is an ordered result set for one executed request.
type SearchResult struct {
	Musicians []MusicianSummary `json:"musicians"`
	Total     int               `json:"total"`
}

// Summary projects a musician row plus its reputation into a result row.
func (m *Musician) Summary(rating RatingSummary) MusicianSummary {
	return MusicianSummary{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Instruments:     m.Instruments,
		Genres:          m.Genres,
		Region:          m.Region,
		Location:        m.Location,
		ExperienceYears: m.ExperienceYears,
		AverageRating:   rating.Rounded(),
		TotalReviews:    rating.Total,
	}
}
