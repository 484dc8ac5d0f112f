package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ariven/dermalens-v2/backend/internal/engine"
	"github.com/ariven/dermalens-v2/backend/internal/models"
	"github.com/ariven/dermalens-v2/backend/internal/types"
)

// RecommendationService ranks catalog products for a user's profile.
type RecommendationService struct {
	db          *gorm.DB
	profiles    IProfileService
	recommender *engine.Recommender
	logger      *zap.Logger
}

var _ IRecommendationService = (*RecommendationService)(nil)

func NewRecommendationService(db *gorm.DB, profiles IProfileService, store *engine.ReferenceDataStore, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		db:          db,
		profiles:    profiles,
		recommender: engine.NewRecommender(store),
		logger:      logger,
	}
}

// Recommend loads the catalog and the user's routine, and returns the
// ranked suggestions. limit <= 0 uses the engine default.
func (s *RecommendationService) Recommend(ctx context.Context, userID uuid.UUID, limit int) (*types.RecommendationResponse, error) {
	profile, err := s.profiles.EngineProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load skin profile: %w", err)
	}

	var products []models.Product
	if err := s.db.WithContext(ctx).Order("name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	candidates := make([]engine.Product, 0, len(products))
	for _, p := range products {
		candidates = append(candidates, toEngineProduct(p))
	}

	var items []models.RoutineItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load routine: %w", err)
	}
	var routineTokens []string
	for _, item := range items {
		routineTokens = append(routineTokens, engine.ParseIngredients(item.IngredientText)...)
	}

	recs, err := s.recommender.Recommend(ctx, candidates, profile, routineTokens, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute recommendations: %w", err)
	}

	s.logger.Info("recommendations computed",
		zap.String("user_id", userID.String()),
		zap.Int("catalog_size", len(candidates)),
		zap.Int("returned", len(recs)))

	if recs == nil {
		recs = []engine.Recommendation{}
	}
	return &types.RecommendationResponse{Recommendations: recs}, nil
}
