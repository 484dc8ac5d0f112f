package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariven/dermalens-v2/backend/internal/engine"
	"github.com/ariven/dermalens-v2/backend/internal/service"
	"github.com/ariven/dermalens-v2/backend/internal/types"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestUpdateProfileReplacesLists(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewProfileService(db)
	user := seedUser(t, db, "ada")
	ctx := context.Background()

	resp, err := svc.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		SkinType:  strPtr("sensitive"),
		Allergens: []string{"lanolin", "shea"},
		Concerns:  []string{"acne"},
	})
	require.NoError(t, err)
	assert.Equal(t, "sensitive", resp.SkinType)
	assert.Equal(t, []string{"lanolin", "shea"}, resp.Allergens)
	assert.Equal(t, []string{"acne"}, resp.Concerns)

	// A second update with a new allergen list replaces, not appends.
	resp, err = svc.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		Allergens: []string{"fragrance"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"fragrance"}, resp.Allergens)
	assert.Equal(t, []string{"acne"}, resp.Concerns)
	assert.Equal(t, "sensitive", resp.SkinType)
}

func TestUpdateProfileNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewProfileService(db)

	_, err := svc.UpdateProfile(context.Background(), uuid.New(), &types.UpdateProfileRequest{
		SkinType: strPtr("oily"),
	})
	assert.ErrorIs(t, err, service.ErrProfileNotFound)
}

func TestEngineProfileAssembly(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewProfileService(db)
	user := seedUser(t, db, "ada")
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		SkinType:          strPtr("sensitive"),
		ExperienceLevel:   strPtr("beginner"),
		TexturePreference: strPtr("serum"),
		BudgetMin:         floatPtr(10),
		BudgetMax:         floatPtr(40),
		Allergens:         []string{"lanolin"},
		Concerns:          []string{"acne", "redness"},
	})
	require.NoError(t, err)

	profile, err := svc.EngineProfile(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, engine.SkinSensitive, profile.SkinType)
	assert.Equal(t, engine.ExperienceBeginner, profile.Experience)
	assert.Equal(t, "serum", profile.TexturePreference)
	assert.Equal(t, []string{"lanolin"}, profile.Allergens)
	assert.Equal(t, []string{"acne", "redness"}, profile.Concerns)
	require.NotNil(t, profile.Budget)
	assert.Equal(t, 10.0, profile.Budget.Min)
	assert.Equal(t, 40.0, profile.Budget.Max)
}

func TestEngineProfileMissingUserIsNil(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewProfileService(db)

	profile, err := svc.EngineProfile(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, profile)
}
