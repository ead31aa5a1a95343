// backend/internal/services/search.go
package services

import (
	"context"
	"time"

	"github.com/gigit-app/gigit/backend/internal/database"
	"github.com/gigit-app/gigit/backend/internal/errs"
	"github.com/gigit-app/gigit/backend/internal/models"
	"github.com/gigit-app/gigit/backend/internal/repository"
	"github.com/gigit-app/gigit/backend/internal/search"
	"github.com/sirupsen/logrus"
)

const searchCacheTTL = 5 * time.Minute

// SearchService executes compiled search requests against the catalog. It is
// the production search.Executor: results carry each musician's current
// aggregate, and result sets are cached under the canonical request encoding.
type SearchService struct {
	repoManager   *repository.RepositoryManager
	reviewService *ReviewService
	cache         *database.Cache
	logger        *logrus.Logger
}

func NewSearchService(
	repoManager *repository.RepositoryManager,
	reviewService *ReviewService,
	cache *database.Cache,
	logger *logrus.Logger,
) *SearchService {
	return &SearchService{
		repoManager:   repoManager,
		reviewService: reviewService,
		cache:         cache,
		logger:        logger,
	}
}

// Search runs one compiled request. An empty request matches the whole
// catalog; that is the normal first query at startup, not an error.
func (s *SearchService) Search(ctx context.Context, req search.Request) (*models.SearchResult, error) {
	cacheKey := req.Params.Encode()

	if cached, err := s.cache.GetCachedSearchResults(ctx, cacheKey); err == nil {
		s.logger.Debug("Search results served from cache")
		return cached, nil
	}

	criteria := criteriaFromRequest(req)
	musicians, err := s.repoManager.Musician.Search(ctx, criteria)
	if err != nil {
		s.logger.WithError(err).Error("Musician search failed")
		return nil, errs.Transient(err)
	}

	result := &models.SearchResult{
		Musicians: make([]models.MusicianSummary, 0, len(musicians)),
		Total:     len(musicians),
	}
	for i := range musicians {
		summary, err := s.reviewService.SummaryFor(ctx, musicians[i].ID)
		if err != nil {
			return nil, err
		}
		result.Musicians = append(result.Musicians, musicians[i].Summary(summary))
	}

	if err := s.cache.CacheSearchResults(ctx, cacheKey, result, searchCacheTTL); err != nil {
		s.logger.WithError(err).Warn("Failed to cache search results")
	}

	s.logger.WithFields(logrus.Fields{
		"params":  cacheKey,
		"results": result.Total,
	}).Debug("Search completed")

	return result, nil
}

// criteriaFromRequest translates the wire-shaped request into the normalized
// repository criteria. The compiler already resolved region-vs-location.
func criteriaFromRequest(req search.Request) models.SearchCriteria {
	return models.SearchCriteria{
		Instruments: req.Params[search.ParamInstrument],
		Genres:      req.Params[search.ParamGenre],
		EventTypes:  req.Params[search.ParamEventType],
		Region:      req.Params.Get(search.ParamRegion),
		Location:    req.Params.Get(search.ParamLocation),
		Query:       req.Params.Get(search.ParamQuery),
	}
}
