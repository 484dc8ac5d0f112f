package engine

// Severity grades an allergen alert or a conflict warning.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ExperienceLevel describes how familiar a user is with active ingredients.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// SkinType is the user's declared skin type.
type SkinType string

const (
	SkinNormal      SkinType = "normal"
	SkinDry         SkinType = "dry"
	SkinOily        SkinType = "oily"
	SkinCombination SkinType = "combination"
	SkinSensitive   SkinType = "sensitive"
)

// BudgetRange is an inclusive price range in the caller's currency.
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// UserSkinProfile is supplied by the profile collaborator. The engine never
// mutates it. A nil profile means "no personalization".
type UserSkinProfile struct {
	SkinType          SkinType        `json:"skin_type"`
	Allergens         []string        `json:"allergens"`
	Concerns          []string        `json:"concerns"`
	Budget            *BudgetRange    `json:"budget,omitempty"`
	TexturePreference string          `json:"texture_preference,omitempty"`
	Experience        ExperienceLevel `json:"experience"`
}

// Product is a catalog entry as supplied by the caller. Ingredients is the
// raw delimited string from the OCR or catalog collaborator; a missing
// ingredient string parses to an empty token list.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Ingredients string  `json:"ingredients"`
	Price       float64 `json:"price"`
}

// AllergenAlert is a single flagged allergen. Category is the definition's
// category, or "user_specific" for declared-allergen hits.
type AllergenAlert struct {
	Allergen           string   `json:"allergen"`
	Severity           Severity `json:"severity"`
	RiskScore          float64  `json:"risk_score"`
	Category           string   `json:"category"`
	MatchedIngredients []string `json:"matched_ingredients"`
	CrossReactions     []string `json:"cross_reactions,omitempty"`
	Description        string   `json:"description,omitempty"`
	Alternative        string   `json:"alternative,omitempty"`
}

// AllergenAnalysisResult aggregates all alerts for one product.
type AllergenAnalysisResult struct {
	Alerts               []AllergenAlert `json:"alerts"`
	OverallScore         float64         `json:"overall_score"`
	OverallLevel         Severity        `json:"overall_level"`
	PatchTestRecommended bool            `json:"patch_test_recommended"`
	Recommendations      []string        `json:"recommendations"`
}

// ConcernMatch scores one product against one skin concern.
type ConcernMatch struct {
	Concern            string   `json:"concern"`
	Product            Product  `json:"product"`
	Score              float64  `json:"score"`
	MatchedIngredients []string `json:"matched_ingredients"`
	ExpectedBenefits   []string `json:"expected_benefits"`
	TimeToResults      string   `json:"time_to_results,omitempty"`
}

// ConflictWarning reports a declared incompatibility between two ingredients
// drawn from the two analyzed sets.
type ConflictWarning struct {
	IngredientA    string   `json:"ingredient_a"`
	IngredientB    string   `json:"ingredient_b"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
}

// Recommendation is one ranked entry in the aggregated suggestion list.
type Recommendation struct {
	Product       Product            `json:"product"`
	Score         float64            `json:"score"`
	ConcernScores map[string]float64 `json:"concern_scores"`
	Matches       []ConcernMatch     `json:"matches"`
	Conflicts     []ConflictWarning  `json:"conflicts,omitempty"`
	HighRiskHit   bool               `json:"high_risk_hit"`
}

func severityRank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// escalate bumps a severity one level; high stays high.
func escalate(s Severity) Severity {
	switch s {
	case SeverityLow:
		return SeverityMedium
	case SeverityMedium:
		return SeverityHigh
	default:
		return s
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
