package routes

import (
	"github.com/gigit-app/gigit/backend/internal/api/handlers"
	"github.com/gigit-app/gigit/backend/internal/auth"
	"github.com/gigit-app/gigit/backend/internal/config"
	"github.com/gigit-app/gigit/backend/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handlers bundles everything SetupRoutes needs to wire the API surface.
type Handlers struct {
	Search  *handlers.SearchHandler
	Reviews *handlers.ReviewsHandler
	Health  *handlers.HealthHandler
	Admin   *handlers.AdminHandler
}

// SetupRoutes configures the gin engine with middleware and all routes
func SetupRoutes(cfg *config.Config, verifier *auth.Verifier, h Handlers, logger *logrus.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	rateLimiter := middleware.NewRateLimiter(cfg.Server.RateLimit)

	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(rateLimiter.RateLimit())
	r.Use(middleware.Identity(verifier, logger))
	r.Use(gin.Recovery())

	r.GET("/health", h.Health.HandleLiveness)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", h.Health.HandleHealth)

		musicians := v1.Group("/musicians")
		{
			musicians.GET("/search", h.Search.HandleSearch)
			musicians.GET("/suggest", h.Search.HandleSuggest)
			musicians.GET("/catalog", h.Search.HandleCatalog)
			musicians.GET("/:id", h.Search.HandleGetMusician)
			musicians.GET("/:id/reviews", h.Reviews.HandleListBySubject)
			musicians.GET("/:id/rating", h.Reviews.HandleRating)
		}

		reviews := v1.Group("/reviews")
		reviews.Use(middleware.RequireIdentity())
		{
			reviews.POST("", h.Reviews.HandleCreate)
			reviews.PATCH("/:id", h.Reviews.HandleUpdate)
			reviews.DELETE("/:id", h.Reviews.HandleDelete)
			reviews.POST("/:id/reply", h.Reviews.HandleReply)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireIdentity())
		{
			admin.GET("/stats", h.Admin.HandleStats)
			admin.DELETE("/cache", h.Admin.HandleClearCache)
		}
	}

	return r
}
