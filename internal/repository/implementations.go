package repository

import (
	"context"
	"strings"

	"github.com/gigit-app/gigit/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MusicianRepositoryImpl implements MusicianRepository
type MusicianRepositoryImpl struct {
	db *gorm.DB
}

func NewMusicianRepository(db *gorm.DB) models.MusicianRepository {
	return &MusicianRepositoryImpl{db: db}
}

func (r *MusicianRepositoryImpl) Create(ctx context.Context, musician *models.Musician) error {
	return r.db.WithContext(ctx).Create(musician).Error
}

func (r *MusicianRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Musician, error) {
	var musician models.Musician
	err := r.db.WithContext(ctx).First(&musician, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &musician, nil
}

// Search applies the normalized criteria. Facets are ANDed against each other
// and ORed within a facet via Postgres array overlap. Region wins over
// location upstream, so at most one of the two arrives here.
func (r *MusicianRepositoryImpl) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Musician, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)

	if len(criteria.Instruments) > 0 {
		q = q.Where("instruments && ?", models.StringArray(criteria.Instruments))
	}
	if len(criteria.Genres) > 0 {
		q = q.Where("genres && ?", models.StringArray(criteria.Genres))
	}
	if len(criteria.EventTypes) > 0 {
		q = q.Where("event_types && ?", models.StringArray(criteria.EventTypes))
	}

	if criteria.Region != "" {
		q = q.Where("region = ?", criteria.Region)
	} else if criteria.Location != "" {
		q = q.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}

	if criteria.Query != "" {
		needle := "%" + strings.TrimSpace(criteria.Query) + "%"
		q = q.Where(
			`first_name ILIKE ? OR last_name ILIKE ? OR bio ILIKE ?
			 OR array_to_string(instruments, ' ') ILIKE ?
			 OR array_to_string(genres, ' ') ILIKE ?`,
			needle, needle, needle, needle, needle,
		)
	}

	var musicians []models.Musician
	err := q.Order("experience_years DESC, created_at DESC").Find(&musicians).Error
	return musicians, err
}

// ReviewRepositoryImpl implements ReviewRepository
type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) models.ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) ListBySubject(ctx context.Context, subjectID uuid.UUID, page, perPage int, sort models.ReviewSort) ([]models.Review, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("musician_id = ?", subjectID).
		Order(orderClause(sort)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) ListAllBySubject(ctx context.Context, subjectID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("musician_id = ?", subjectID).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) Update(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *ReviewRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func orderClause(sort models.ReviewSort) string {
	switch sort {
	case models.SortOldest:
		return "created_at ASC"
	case models.SortHighest:
		return "rating DESC, created_at DESC"
	case models.SortLowest:
		return "rating ASC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

// SearchQueryRepositoryImpl implements SearchQueryRepository
type SearchQueryRepositoryImpl struct {
	db *gorm.DB
}

func NewSearchQueryRepository(db *gorm.DB) models.SearchQueryRepository {
	return &SearchQueryRepositoryImpl{db: db}
}

func (r *SearchQueryRepositoryImpl) Create(query *models.SearchQuery) error {
	return r.db.Create(query).Error
}

func (r *SearchQueryRepositoryImpl) GetRecentSearches(limit int) ([]models.SearchQuery, error) {
	var queries []models.SearchQuery
	err := r.db.Order("search_timestamp DESC").
		Limit(limit).
		Find(&queries).Error
	return queries, err
}

// SystemHealthRepositoryImpl implements SystemHealthRepository
type SystemHealthRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemHealthRepository(db *gorm.DB) models.SystemHealthRepository {
	return &SystemHealthRepositoryImpl{db: db}
}

func (r *SystemHealthRepositoryImpl) UpdateServiceHealth(serviceName, status string, responseTime int, errorMsg string) error {
	return r.db.Exec(`
		INSERT INTO system_health (service_name, status, response_time_ms, error_message, checked_at)
		VALUES (?, ?, ?, ?, NOW())
	`, serviceName, status, responseTime, errorMsg).Error
}

func (r *SystemHealthRepositoryImpl) GetServiceHealth(serviceName string) (*models.SystemHealth, error) {
	var health models.SystemHealth
	err := r.db.Where("service_name = ?", serviceName).
		Order("checked_at DESC").
		First(&health).Error
	if err != nil {
		return nil, err
	}
	return &health, nil
}

func (r *SystemHealthRepositoryImpl) GetAllServicesHealth() ([]models.SystemHealth, error) {
	var health []models.SystemHealth
	err := r.db.Raw(`
		SELECT DISTINCT ON (service_name) *
		FROM system_health
		ORDER BY service_name, checked_at DESC
	`).Scan(&health).Error
	return health, err
}

// RepositoryManager bundles all repositories
type RepositoryManager struct {
	Musician     models.MusicianRepository
	Review       models.ReviewRepository
	SearchQuery  models.SearchQueryRepository
	SystemHealth models.SystemHealthRepository
}

func NewRepositoryManager(db *gorm.DB) *RepositoryManager {
	return &RepositoryManager{
		Musician:     NewMusicianRepository(db),
		Review:       NewReviewRepository(db),
		SearchQuery:  NewSearchQueryRepository(db),
		SystemHealth: NewSystemHealthRepository(db),
	}
}
