package models

// GORM models and repository contracts

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringArray for PostgreSQL array support
type StringArray []string

func (s StringArray) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "{}", nil
	}
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = quoteArrayElement(v)
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ",")), nil
}

// quoteArrayElement applies Postgres array-literal quoting. Elements with
// whitespace, commas, quotes, backslashes or braces must be double-quoted
// with backslash escapes.
func quoteArrayElement(v string) string {
	if v != "" && !strings.ContainsAny(v, " \t\",\\{}") {
		return v
	}
	escaped := strings.ReplaceAll(v, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}

	switch v := value.(type) {
	case string:
		*s = parseTextArray(v)
	case []byte:
		return s.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into StringArray", value)
	}
	return nil
}

// parseTextArray decodes Postgres array output syntax. The server renders
// elements containing whitespace or punctuation double-quoted, e.g.
// {"acoustic guitar",dj}, with \" and \\ escapes inside quoted elements.
func parseTextArray(src string) StringArray {
	src = strings.TrimPrefix(src, "{")
	src = strings.TrimSuffix(src, "}")
	if src == "" {
		return StringArray{}
	}

	out := StringArray{}
	var elem strings.Builder
	inQuotes := false
	escaped := false
	for _, r := range src {
		switch {
		case escaped:
			elem.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			out = append(out, elem.String())
			elem.Reset()
		default:
			elem.WriteRune(r)
		}
	}
	out = append(out, elem.String())
	return out
}

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SearchQuery represents search analytics, tracked fire-and-forget per request
type SearchQuery struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	QueryParams     string    `json:"query_params" gorm:"not null"`
	UserSession     string    `json:"user_session"`
	ResultsCount    int       `json:"results_count" gorm:"default:0"`
	SearchTimestamp time.Time `json:"search_timestamp" gorm:"default:NOW()"`
	ResponseTimeMs  int       `json:"response_time_ms"`
	UserAgent       string    `json:"user_agent"`
	IPAddress       string    `json:"ip_address" gorm:"type:inet"`
	CreatedAt       time.Time `json:"created_at"`
}

// SystemHealth represents service health monitoring
type SystemHealth struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ServiceName    string    `json:"service_name" gorm:"not null"`
	Status         string    `json:"status" gorm:"not null;check:status IN ('healthy','degraded','unhealthy')"`
	ResponseTimeMs int       `json:"response_time_ms"`
	ErrorMessage   string    `json:"error_message"`
	CheckedAt      time.Time `json:"checked_at" gorm:"default:NOW()"`
}

// ReviewSort orders subject review listings.
type ReviewSort string

const (
	SortNewest  ReviewSort = "newest"
	SortOldest  ReviewSort = "oldest"
	SortHighest ReviewSort = "highest"
	SortLowest  ReviewSort = "lowest"
)

// ParseReviewSort falls back to newest for unknown tokens.
func ParseReviewSort(s string) ReviewSort {
	switch ReviewSort(s) {
	case SortOldest, SortHighest, SortLowest:
		return ReviewSort(s)
	default:
		return SortNewest
	}
}

// Database interfaces for repository pattern
type MusicianRepository interface {
	Create(ctx context.Context, musician *Musician) error
	GetByID(ctx context.Context, id uuid.UUID) (*Musician, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]Musician, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*Review, error)
	ListBySubject(ctx context.Context, subjectID uuid.UUID, page, perPage int, sort ReviewSort) ([]Review, error)
	ListAllBySubject(ctx context.Context, subjectID uuid.UUID) ([]Review, error)
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SearchQueryRepository interface {
	Create(query *SearchQuery) error
	GetRecentSearches(limit int) ([]SearchQuery, error)
}

type SystemHealthRepository interface {
	UpdateServiceHealth(serviceName, status string, responseTime int, errorMsg string) error
	GetServiceHealth(serviceName string) (*SystemHealth, error)
	GetAllServicesHealth() ([]SystemHealth, error)
}

// TableName methods for custom table names
func (Musician) TableName() string     { return "musicians" }
func (Review) TableName() string       { return "reviews" }
func (SearchQuery) TableName() string  { return "search_queries" }
func (SystemHealth) TableName() string { return "system_health" }

func (sq *SearchQuery) Validate() error {
	if sq.QueryParams == "" {
		return fmt.Errorf("query params are required")
	}
	if sq.ResponseTimeMs < 0 {
		return fmt.Errorf("response time cannot be negative")
	}
	return nil
}

// GORM hooks
func (sq *SearchQuery) BeforeCreate(tx *gorm.DB) error {
	return sq.Validate()
}

func (m *Musician) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return r.Validate()
}
