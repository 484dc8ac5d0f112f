package types

// RegisterRequest is the request body for account creation.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the request body for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest updates the skin profile fields the analysis uses.
// Pointer fields distinguish "leave unchanged" from "set to zero value".
type UpdateProfileRequest struct {
	SkinType          *string  `json:"skin_type,omitempty" binding:"omitempty,oneof=normal dry oily combination sensitive"`
	ExperienceLevel   *string  `json:"experience_level,omitempty" binding:"omitempty,oneof=beginner intermediate advanced"`
	TexturePreference *string  `json:"texture_preference,omitempty"`
	BudgetMin         *float64 `json:"budget_min,omitempty"`
	BudgetMax         *float64 `json:"budget_max,omitempty"`
	Allergens         []string `json:"allergens,omitempty"`
	Concerns          []string `json:"concerns,omitempty"`
}

// CreateProductRequest is the request body for adding a catalog product.
type CreateProductRequest struct {
	Name           string  `json:"name" binding:"required,max=200"`
	Brand          string  `json:"brand" binding:"max=100"`
	Category       string  `json:"category" binding:"required,max=50"`
	Description    string  `json:"description"`
	IngredientText string  `json:"ingredient_text" binding:"required"`
	Price          float64 `json:"price" binding:"gte=0"`
	ImageURL       string  `json:"image_url"`
}

// CreateScanRequest is the request body for analyzing an ingredient list.
type CreateScanRequest struct {
	ProductName    string `json:"product_name" binding:"max=200"`
	Brand          string `json:"brand" binding:"max=100"`
	Category       string `json:"category" binding:"max=50"`
	IngredientText string `json:"ingredient_text" binding:"required"`
	ImageURL       string `json:"image_url"`
}

// RoutineAuditRequest asks for conflicts between a candidate product and
// the ingredient lists already in the user's routine.
type RoutineAuditRequest struct {
	IngredientText string `json:"ingredient_text" binding:"required"`
}

// AddRoutineItemRequest adds a product to the user's routine.
type AddRoutineItemRequest struct {
	ProductName    string `json:"product_name" binding:"required,max=200"`
	Category       string `json:"category" binding:"max=50"`
	IngredientText string `json:"ingredient_text" binding:"required"`
}
