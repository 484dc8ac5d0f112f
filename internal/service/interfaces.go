package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ariven/dermalens-v2/backend/internal/engine"
	"github.com/ariven/dermalens-v2/backend/internal/models"
	"github.com/ariven/dermalens-v2/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for skin profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*types.ProfileResponse, error)
	EngineProfile(ctx context.Context, userID uuid.UUID) (*engine.UserSkinProfile, error)
}

// IProductService defines the interface for catalog operations
type IProductService interface {
	CreateProduct(ctx context.Context, req *types.CreateProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// IScanService defines the interface for ingredient analysis operations
type IScanService interface {
	CreateScan(ctx context.Context, userID uuid.UUID, req *types.CreateScanRequest) (*types.ScanResponse, error)
	GetScan(ctx context.Context, userID, scanID uuid.UUID) (*types.ScanResponse, error)
	ListScans(ctx context.Context, userID uuid.UUID) ([]models.ScanReport, error)
	AuditRoutine(ctx context.Context, userID uuid.UUID, ingredientText string) (*types.RoutineAuditResponse, error)
	AddRoutineItem(ctx context.Context, userID uuid.UUID, req *types.AddRoutineItemRequest) (*models.RoutineItem, error)
	ListRoutineItems(ctx context.Context, userID uuid.UUID) ([]models.RoutineItem, error)
}

// IRecommendationService defines the interface for product recommendation
type IRecommendationService interface {
	Recommend(ctx context.Context, userID uuid.UUID, limit int) (*types.RecommendationResponse, error)
}

// IImageService defines the interface for image storage operations
type IImageService interface {
	UploadImage(ctx context.Context, data []byte, contentType string) (string, error)
}
