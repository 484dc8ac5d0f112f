package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ariven/dermalens-v2/backend/internal/engine"
	"github.com/ariven/dermalens-v2/backend/internal/models"
	"github.com/ariven/dermalens-v2/backend/internal/types"
)

var ErrScanNotFound = errors.New("scan not found")

const scanCacheTTL = 24 * time.Hour

// ScanService runs the ingredient analysis for a submitted label and
// persists the resulting report. Redis is optional; without it every
// read goes to the database.
type ScanService struct {
	db       *gorm.DB
	redis    *redis.Client
	profiles IProfileService
	analyzer *engine.AllergenAnalyzer
	detector *engine.ConflictDetector
	logger   *zap.Logger
}

var _ IScanService = (*ScanService)(nil)

func NewScanService(db *gorm.DB, rdb *redis.Client, profiles IProfileService, store *engine.ReferenceDataStore, logger *zap.Logger) *ScanService {
	return &ScanService{
		db:       db,
		redis:    rdb,
		profiles: profiles,
		analyzer: engine.NewAllergenAnalyzer(store),
		detector: engine.NewConflictDetector(store),
		logger:   logger,
	}
}

// CreateScan analyzes one ingredient list against the user's profile and
// current routine, persists the report, and returns it.
func (s *ScanService) CreateScan(ctx context.Context, userID uuid.UUID, req *types.CreateScanRequest) (*types.ScanResponse, error) {
	profile, err := s.profiles.EngineProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load skin profile: %w", err)
	}

	tokens := engine.ParseIngredients(req.IngredientText)
	analysis := s.analyzer.Analyze(tokens, profile)

	routineTokens, err := s.routineTokens(ctx, userID)
	if err != nil {
		return nil, err
	}
	conflicts := s.detector.Find(tokens, routineTokens)
	if conflicts == nil {
		conflicts = []engine.ConflictWarning{}
	}

	resp := &types.ScanResponse{
		ID:          uuid.New(),
		ProductName: req.ProductName,
		Brand:       req.Brand,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Allergens:   analysis,
		Conflicts:   conflicts,
		CreatedAt:   time.Now().UTC(),
	}

	reportJSON, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	report := models.ScanReport{
		ID:             resp.ID,
		UserID:         userID,
		ProductName:    req.ProductName,
		Brand:          req.Brand,
		Category:       req.Category,
		IngredientText: req.IngredientText,
		ImageURL:       req.ImageURL,
		ReportJSON:     string(reportJSON),
		OverallScore:   analysis.OverallScore,
		OverallLevel:   string(analysis.OverallLevel),
		PatchTest:      analysis.PatchTestRecommended,
	}
	if err := s.db.WithContext(ctx).Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to save scan report: %w", err)
	}

	s.cacheReport(ctx, resp.ID, reportJSON)

	s.logger.Info("scan analyzed",
		zap.String("scan_id", resp.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Float64("overall_score", analysis.OverallScore),
		zap.String("overall_level", string(analysis.OverallLevel)),
		zap.Int("conflicts", len(conflicts)))

	return resp, nil
}

// GetScan returns a stored report, serving from cache when possible.
func (s *ScanService) GetScan(ctx context.Context, userID, scanID uuid.UUID) (*types.ScanResponse, error) {
	var report models.ScanReport
	if err := s.db.WithContext(ctx).First(&report, "id = ? AND user_id = ?", scanID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScanNotFound
		}
		return nil, fmt.Errorf("failed to load scan: %w", err)
	}

	if data, ok := s.cachedReport(ctx, scanID); ok {
		var resp types.ScanResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
	}

	var resp types.ScanResponse
	if err := json.Unmarshal([]byte(report.ReportJSON), &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored report: %w", err)
	}
	return &resp, nil
}

// ListScans returns the user's scan history, newest first.
func (s *ScanService) ListScans(ctx context.Context, userID uuid.UUID) ([]models.ScanReport, error) {
	var reports []models.ScanReport
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	return reports, nil
}

// AuditRoutine reports conflicts between a candidate ingredient list and
// the products already in the user's routine.
func (s *ScanService) AuditRoutine(ctx context.Context, userID uuid.UUID, ingredientText string) (*types.RoutineAuditResponse, error) {
	routineTokens, err := s.routineTokens(ctx, userID)
	if err != nil {
		return nil, err
	}

	tokens := engine.ParseIngredients(ingredientText)
	conflicts := s.detector.Find(tokens, routineTokens)
	if conflicts == nil {
		conflicts = []engine.ConflictWarning{}
	}
	return &types.RoutineAuditResponse{Conflicts: conflicts}, nil
}

// AddRoutineItem stores a product in the user's routine.
func (s *ScanService) AddRoutineItem(ctx context.Context, userID uuid.UUID, req *types.AddRoutineItemRequest) (*models.RoutineItem, error) {
	item := models.RoutineItem{
		ID:             uuid.New(),
		UserID:         userID,
		ProductName:    req.ProductName,
		Category:       req.Category,
		IngredientText: req.IngredientText,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to add routine item: %w", err)
	}
	return &item, nil
}

// ListRoutineItems returns the user's routine in insertion order.
func (s *ScanService) ListRoutineItems(ctx context.Context, userID uuid.UUID) ([]models.RoutineItem, error) {
	var items []models.RoutineItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list routine items: %w", err)
	}
	return items, nil
}

// routineTokens merges the parsed ingredient lists of every routine item.
func (s *ScanService) routineTokens(ctx context.Context, userID uuid.UUID) ([]string, error) {
	items, err := s.ListRoutineItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	var tokens []string
	for _, item := range items {
		tokens = append(tokens, engine.ParseIngredients(item.IngredientText)...)
	}
	return tokens, nil
}

func (s *ScanService) cacheReport(ctx context.Context, id uuid.UUID, data []byte) {
	if s.redis == nil {
		return
	}
	key := fmt.Sprintf("scan:report:%s", id)
	if err := s.redis.Set(ctx, key, data, scanCacheTTL).Err(); err != nil {
		s.logger.Warn("failed to cache scan report", zap.String("scan_id", id.String()), zap.Error(err))
	}
}

func (s *ScanService) cachedReport(ctx context.Context, id uuid.UUID) ([]byte, bool) {
	if s.redis == nil {
		return nil, false
	}
	key := fmt.Sprintf("scan:report:%s", id)
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}
