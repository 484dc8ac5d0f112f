package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/ariven/dermalens-v2/backend/internal/engine"
)

// AuthResponse carries a signed token after register or login.
type AuthResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
}

// ProfileResponse is the full skin profile as stored.
type ProfileResponse struct {
	UserID            uuid.UUID `json:"user_id"`
	Username          string    `json:"username"`
	SkinType          string    `json:"skin_type"`
	ExperienceLevel   string    `json:"experience_level"`
	TexturePreference string    `json:"texture_preference"`
	BudgetMin         float64   `json:"budget_min"`
	BudgetMax         float64   `json:"budget_max"`
	Allergens         []string  `json:"allergens"`
	Concerns          []string  `json:"concerns"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ScanResponse is the persisted analysis of one ingredient list.
type ScanResponse struct {
	ID          uuid.UUID                      `json:"id"`
	ProductName string                         `json:"product_name"`
	Brand       string                         `json:"brand"`
	Category    string                         `json:"category"`
	ImageURL    string                         `json:"image_url,omitempty"`
	Allergens   *engine.AllergenAnalysisResult `json:"allergens"`
	Conflicts   []engine.ConflictWarning       `json:"conflicts"`
	CreatedAt   time.Time                      `json:"created_at"`
}

// RoutineAuditResponse lists conflicts between a candidate product and
// the user's existing routine.
type RoutineAuditResponse struct {
	Conflicts []engine.ConflictWarning `json:"conflicts"`
}

// RecommendationResponse is the ranked product list for a user.
type RecommendationResponse struct {
	Recommendations []engine.Recommendation `json:"recommendations"`
}
