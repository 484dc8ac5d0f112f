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

var ErrProfileNotFound = errors.New("profile not found")

// ProfileService handles the skin profile that personalizes every analysis.
type ProfileService struct {
	db *gorm.DB
}

var _ IProfileService = (*ProfileService)(nil)

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile retrieves a user's skin profile with allergens and concerns.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileResponse, error) {
	profile, allergens, concerns, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(profile, allergens, concerns), nil
}

// UpdateProfile applies the provided fields and replaces the allergen and
// concern lists when they are present in the request.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*types.ProfileResponse, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if req.SkinType != nil {
		profile.SkinType = *req.SkinType
	}
	if req.ExperienceLevel != nil {
		profile.ExperienceLevel = *req.ExperienceLevel
	}
	if req.TexturePreference != nil {
		profile.TexturePreference = *req.TexturePreference
	}
	if req.BudgetMin != nil {
		profile.BudgetMin = *req.BudgetMin
	}
	if req.BudgetMax != nil {
		profile.BudgetMax = *req.BudgetMax
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}
		if req.Allergens != nil {
			if err := tx.Where("user_id = ?", userID).Delete(&models.UserAllergen{}).Error; err != nil {
				return err
			}
			for _, name := range req.Allergens {
				record := models.UserAllergen{ID: uuid.New(), UserID: userID, AllergenName: name}
				if err := tx.Create(&record).Error; err != nil {
					return err
				}
			}
		}
		if req.Concerns != nil {
			if err := tx.Where("user_id = ?", userID).Delete(&models.UserConcern{}).Error; err != nil {
				return err
			}
			for _, id := range req.Concerns {
				record := models.UserConcern{ID: uuid.New(), UserID: userID, ConcernID: id}
				if err := tx.Create(&record).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.GetProfile(ctx, userID)
}

// EngineProfile assembles the profile shape the analysis engine consumes.
// A user without a stored profile analyzes as unpersonalized.
func (s *ProfileService) EngineProfile(ctx context.Context, userID uuid.UUID) (*engine.UserSkinProfile, error) {
	profile, allergens, concerns, err := s.load(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, nil
		}
		return nil, err
	}

	out := &engine.UserSkinProfile{
		SkinType:          engine.SkinType(profile.SkinType),
		Experience:        engine.ExperienceLevel(profile.ExperienceLevel),
		TexturePreference: profile.TexturePreference,
	}
	for _, a := range allergens {
		out.Allergens = append(out.Allergens, a.AllergenName)
	}
	for _, c := range concerns {
		out.Concerns = append(out.Concerns, c.ConcernID)
	}
	if profile.BudgetMax > 0 {
		out.Budget = &engine.BudgetRange{Min: profile.BudgetMin, Max: profile.BudgetMax}
	}
	return out, nil
}

func (s *ProfileService) load(ctx context.Context, userID uuid.UUID) (*models.UserProfile, []models.UserAllergen, []models.UserConcern, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, ErrProfileNotFound
		}
		return nil, nil, nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var allergens []models.UserAllergen
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&allergens).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load allergens: %w", err)
	}

	var concerns []models.UserConcern
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&concerns).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load concerns: %w", err)
	}

	return &profile, allergens, concerns, nil
}

func toProfileResponse(profile *models.UserProfile, allergens []models.UserAllergen, concerns []models.UserConcern) *types.ProfileResponse {
	resp := &types.ProfileResponse{
		UserID:            profile.UserID,
		Username:          profile.Username,
		SkinType:          profile.SkinType,
		ExperienceLevel:   profile.ExperienceLevel,
		TexturePreference: profile.TexturePreference,
		BudgetMin:         profile.BudgetMin,
		BudgetMax:         profile.BudgetMax,
		Allergens:         []string{},
		Concerns:          []string{},
		UpdatedAt:         profile.UpdatedAt,
	}
	for _, a := range allergens {
		resp.Allergens = append(resp.Allergens, a.AllergenName)
	}
	for _, c := range concerns {
		resp.Concerns = append(resp.Concerns, c.ConcernID)
	}
	return resp
}
