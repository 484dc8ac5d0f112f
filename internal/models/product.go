package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is one catalog entry. IngredientText is the raw delimited string
// handed over by the OCR/catalog collaborator; the engine tokenizes it.
type Product struct {
	ID             uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	Name           string         `gorm:"size:200;not null" json:"name"`
	Brand          string         `gorm:"size:100;index" json:"brand"`
	Category       string         `gorm:"size:50;index" json:"category"`
	Description    string         `gorm:"type:text" json:"description"`
	IngredientText string         `gorm:"type:text" json:"ingredient_text"`
	Price          float64        `json:"price"`
	ImageURL       string         `gorm:"size:255" json:"image_url"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// RoutineItem is one product in a user's current routine; its ingredient
// text feeds the conflict detector when auditing new scans.
type RoutineItem struct {
	ID             uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	ProductName    string         `gorm:"size:200;not null" json:"product_name"`
	Category       string         `gorm:"size:50" json:"category"`
	IngredientText string         `gorm:"type:text" json:"ingredient_text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
