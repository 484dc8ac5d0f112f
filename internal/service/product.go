package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ariven/dermalens-v2/backend/internal/engine"
	"github.com/ariven/dermalens-v2/backend/internal/models"
	"github.com/ariven/dermalens-v2/backend/internal/types"
)

var ErrProductNotFound = errors.New("product not found")

// ProductService handles the product catalog.
type ProductService struct {
	db *gorm.DB
}

var _ IProductService = (*ProductService)(nil)

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *types.CreateProductRequest) (*models.Product, error) {
	product := models.Product{
		ID:             uuid.New(),
		Name:           req.Name,
		Brand:          req.Brand,
		Category:       req.Category,
		Description:    req.Description,
		IngredientText: req.IngredientText,
		Price:          req.Price,
		ImageURL:       req.ImageURL,
	}
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return &product, nil
}

// ListProducts returns the catalog, optionally filtered by category.
func (s *ProductService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	query := s.db.WithContext(ctx).Order("name")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// toEngineProduct converts a catalog row into the engine's product shape.
func toEngineProduct(p models.Product) engine.Product {
	return engine.Product{
		ID:          p.ID.String(),
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    p.Category,
		Ingredients: p.IngredientText,
		Price:       p.Price,
	}
}
