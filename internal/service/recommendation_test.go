package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariven/dermalens-v2/backend/internal/service"
	"github.com/ariven/dermalens-v2/backend/internal/types"
)

func TestRecommendRanksCatalog(t *testing.T) {
	db := setupTestDB(t)
	profiles := service.NewProfileService(db)
	products := service.NewProductService(db)
	svc := service.NewRecommendationService(db, profiles, testStore(t), testLogger())
	user := seedUser(t, db, "ada")
	ctx := context.Background()

	_, err := profiles.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		Concerns: []string{"acne"},
	})
	require.NoError(t, err)

	_, err = products.CreateProduct(ctx, &types.CreateProductRequest{
		Name:           "Clarifying Serum",
		Brand:          "Paula's Choice",
		Category:       "serum",
		IngredientText: "salicylic acid, niacinamide, water",
		Price:          32,
	})
	require.NoError(t, err)

	_, err = products.CreateProduct(ctx, &types.CreateProductRequest{
		Name:           "Plain Moisturizer",
		Brand:          "Generic",
		Category:       "moisturizer",
		IngredientText: "water, glycerin",
		Price:          10,
	})
	require.NoError(t, err)

	resp, err := svc.Recommend(ctx, user.ID, 0)
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "Clarifying Serum", resp.Recommendations[0].Product.Name)
	assert.Greater(t, resp.Recommendations[0].Score, 0.0)
}

func TestRecommendExcludesDeclaredAllergenHits(t *testing.T) {
	db := setupTestDB(t)
	profiles := service.NewProfileService(db)
	products := service.NewProductService(db)
	svc := service.NewRecommendationService(db, profiles, testStore(t), testLogger())
	user := seedUser(t, db, "ada")
	ctx := context.Background()

	_, err := profiles.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		Concerns:  []string{"acne"},
		Allergens: []string{"niacinamide"},
	})
	require.NoError(t, err)

	_, err = products.CreateProduct(ctx, &types.CreateProductRequest{
		Name:           "Clarifying Serum",
		Category:       "serum",
		IngredientText: "salicylic acid, niacinamide, water",
		Price:          32,
	})
	require.NoError(t, err)

	resp, err := svc.Recommend(ctx, user.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, resp.Recommendations)
}

func TestRecommendEmptyCatalog(t *testing.T) {
	db := setupTestDB(t)
	profiles := service.NewProfileService(db)
	svc := service.NewRecommendationService(db, profiles, testStore(t), testLogger())
	user := seedUser(t, db, "ada")

	resp, err := svc.Recommend(context.Background(), user.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, resp.Recommendations)
}
