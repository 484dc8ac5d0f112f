package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ariven/dermalens-v2/backend/config"
	"github.com/ariven/dermalens-v2/backend/internal/api"
	"github.com/ariven/dermalens-v2/backend/internal/database"
	"github.com/ariven/dermalens-v2/backend/internal/middleware"
	"github.com/ariven/dermalens-v2/backend/internal/service"
)

// Deps carries the services the HTTP layer exposes. RateLimiter and
// Images may be nil; the matching routes then run unguarded or are not
// registered.
type Deps struct {
	Auth            service.IAuthService
	Profiles        service.IProfileService
	Products        service.IProductService
	Scans           service.IScanService
	Recommendations service.IRecommendationService
	Images          service.IImageService
	RateLimiter     *middleware.RateLimiter
}

// Server is the HTTP front of the application.
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New builds the router and registers every route.
func New(cfg *config.Config, db *gorm.DB, deps Deps, logger *zap.Logger) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.HealthCheck(ctx, db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Auth))

	api.NewAuthHandler(deps.Auth).RegisterRoutes(v1)
	api.NewProfileHandler(deps.Profiles).RegisterRoutes(protected)
	api.NewProductHandler(deps.Products).RegisterRoutes(v1, protected)
	api.NewRecommendationHandler(deps.Recommendations).RegisterRoutes(protected)

	var rateLimit gin.HandlerFunc
	if deps.RateLimiter != nil {
		rateLimit = deps.RateLimiter.RateLimitMiddleware()
	}
	api.NewScanHandler(deps.Scans, deps.Images).RegisterRoutes(protected, rateLimit)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.Server.Addr(),
			Handler: router,
		},
		logger: logger,
	}
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully drains in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
