package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixtureStore builds a minimal reference store for tests that don't need
// the full built-in tables.
func fixtureStore(t *testing.T) *ReferenceDataStore {
	t.Helper()
	store, err := NewReferenceDataStore(ReferenceData{
		Allergens: []AllergenDefinition{
			{
				ID:         "fragrances",
				Aliases:    []string{"fragrance", "parfum"},
				Severity:   SeverityHigh,
				Category:   "fragrance",
				Prevalence: 0.03,
			},
			{
				ID:         "sulfates",
				Aliases:    []string{"sodium lauryl sulfate"},
				Severity:   SeverityLow,
				Category:   "surfactant",
				Prevalence: 0.025,
			},
		},
		CrossReactions: map[string][]string{
			"fragrances": {"sulfates"},
		},
		Concerns: []ConcernDefinition{
			{
				ID:                    "acne",
				PrimaryIngredients:    []string{"salicylic acid", "niacinamide"},
				SpecialtyIngredients:  []string{"centella asiatica"},
				Categories:            []string{"serum"},
				BaselineEffectiveness: 0.8,
				TimeToResults:         "4-6 weeks",
			},
		},
		Conflicts: []ConflictRule{
			{
				IngredientA:    "retinol",
				IngredientB:    "vitamin c",
				Severity:       SeverityMedium,
				Description:    "competing actives",
				Recommendation: "use at different times of day",
			},
		},
		BrandAllowlist: map[string][]string{
			"acne": {"cosrx"},
		},
		IngredientBenefits: map[string]map[string]string{
			"acne": {
				"salicylic acid": "unclogs pores",
				"niacinamide":    "regulates sebum",
			},
		},
	})
	require.NoError(t, err)
	return store
}

func defaultStore(t *testing.T) *ReferenceDataStore {
	t.Helper()
	store, err := DefaultReferenceDataStore()
	require.NoError(t, err)
	return store
}
