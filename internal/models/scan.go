package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScanReport persists the outcome of one ingredient analysis so the user
// can revisit past scans. ReportJSON carries the full serialized engine
// output; the scalar columns exist for listing and filtering.
type ScanReport struct {
	ID             uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	ProductName    string         `gorm:"size:200" json:"product_name"`
	Brand          string         `gorm:"size:100" json:"brand"`
	Category       string         `gorm:"size:50" json:"category"`
	IngredientText string         `gorm:"type:text" json:"ingredient_text"`
	ImageURL       string         `gorm:"size:255" json:"image_url"`
	ReportJSON     string         `gorm:"type:text" json:"report_json"`
	OverallScore   float64        `json:"overall_score"`
	OverallLevel   string         `gorm:"size:10" json:"overall_level"`
	PatchTest      bool           `json:"patch_test"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
