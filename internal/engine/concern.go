package engine

import (
	"sort"
	"strings"
)

// Weights for the concern match score. Additive bonuses, clamped to [0,1];
// preserved exactly for parity with the production rule set.
const (
	primaryHitWeight   = 0.25
	specialtyHitWeight = 0.15
	categoryBonus      = 0.10
	brandBonus         = 0.05
	synergyBonus       = 0.05

	// matchThreshold discards noise: anything scoring below it is not a match.
	matchThreshold = 0.3

	// maxMatchesPerConcern caps each concern's ranked list.
	maxMatchesPerConcern = 6

	texturePenalty = 0.8
	beginnerPenalty = 0.7
)

// complexActives are ingredients a beginner routine should ramp into slowly:
// retinoids and the alpha/beta-hydroxy acids.
var complexActives = []string{
	"retinol",
	"retinal",
	"tretinoin",
	"adapalene",
	"glycolic acid",
	"lactic acid",
	"mandelic acid",
	"salicylic acid",
}

// compatibleCategories maps a texture preference to product categories close
// enough that no penalty applies, e.g. a serum preference accepts an essence.
var compatibleCategories = map[string][]string{
	"serum":       {"essence", "ampoule"},
	"essence":     {"serum", "toner"},
	"moisturizer": {"cream", "lotion"},
	"cream":       {"moisturizer", "lotion"},
	"toner":       {"essence"},
}

// ConcernMatcher scores candidate products against skin concerns using the
// reference concern tables.
type ConcernMatcher struct {
	store *ReferenceDataStore
}

// NewConcernMatcher creates a new ConcernMatcher instance.
func NewConcernMatcher(store *ReferenceDataStore) *ConcernMatcher {
	return &ConcernMatcher{store: store}
}

// Match returns a ranked match list per requested concern. Unknown concern
// ids degrade to an absent entry rather than an error. Matches are sorted by
// score descending; the sort is stable, so equal scores keep the products'
// input order (the documented tie-break). When a profile is supplied,
// budget violations exclude a product outright while texture and experience
// mismatches only soften its score; at most maxMatchesPerConcern entries
// survive per concern.
func (m *ConcernMatcher) Match(products []Product, concerns []string, profile *UserSkinProfile) map[string][]ConcernMatch {
	out := make(map[string][]ConcernMatch, len(concerns))
	for _, concernID := range concerns {
		def, ok := m.store.Concern(concernID)
		if !ok {
			continue
		}

		matches := make([]ConcernMatch, 0, len(products))
		for _, p := range products {
			if match, hit := m.scoreProduct(def, p); hit {
				matches = append(matches, match)
			}
		}
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Score > matches[j].Score
		})

		if profile != nil {
			matches = applyMatchFilters(matches, profile)
			sort.SliceStable(matches, func(i, j int) bool {
				return matches[i].Score > matches[j].Score
			})
		}

		if len(matches) > maxMatchesPerConcern {
			matches = matches[:maxMatchesPerConcern]
		}
		out[concernID] = matches
	}
	return out
}

// scoreProduct computes the additive match score for one product against one
// concern. Returns false when the product scores below the noise threshold.
func (m *ConcernMatcher) scoreProduct(def *ConcernDefinition, p Product) (ConcernMatch, bool) {
	tokens := ParseIngredients(p.Ingredients)

	var score float64
	var matched []string
	for _, active := range def.PrimaryIngredients {
		if tokensContain(tokens, active) {
			score += primaryHitWeight
			matched = append(matched, active)
		}
	}
	for _, active := range def.SpecialtyIngredients {
		if tokensContain(tokens, active) {
			score += specialtyHitWeight
			matched = append(matched, active)
		}
	}

	category := strings.ToLower(strings.TrimSpace(p.Category))
	for _, c := range def.Categories {
		if c == category {
			score += categoryBonus
			break
		}
	}

	if m.store.BrandTrusted(def.ID, p.Brand) {
		score += brandBonus
	}

	// Ingredient synergy: more than two distinct matched actives suggests the
	// formula was built around this concern.
	if len(matched) > 2 {
		score += synergyBonus * float64(len(matched)-2)
	}

	score = clamp(score, 0, 1)
	if score < matchThreshold {
		return ConcernMatch{}, false
	}

	return ConcernMatch{
		Concern:            def.ID,
		Product:            p,
		Score:              score,
		MatchedIngredients: matched,
		ExpectedBenefits:   m.benefitsFor(def.ID, matched),
		TimeToResults:      def.TimeToResults,
	}, true
}

// benefitsFor resolves the expected-benefit text for each matched active,
// deduplicated across ingredients.
func (m *ConcernMatcher) benefitsFor(concernID string, matched []string) []string {
	var benefits []string
	seen := make(map[string]struct{}, len(matched))
	for _, active := range matched {
		benefit, ok := m.store.BenefitFor(concernID, active)
		if !ok {
			continue
		}
		if _, dup := seen[benefit]; dup {
			continue
		}
		seen[benefit] = struct{}{}
		benefits = append(benefits, benefit)
	}
	return benefits
}

// applyMatchFilters applies the profile post-filters. Only a hard budget
// violation eliminates a match; texture and beginner mismatches soften the
// score and may drop it back below the threshold without removing it.
func applyMatchFilters(matches []ConcernMatch, profile *UserSkinProfile) []ConcernMatch {
	filtered := make([]ConcernMatch, 0, len(matches))
	for _, match := range matches {
		p := match.Product
		if profile.Budget != nil && (p.Price < profile.Budget.Min || p.Price > profile.Budget.Max) {
			continue
		}

		if pref := strings.ToLower(strings.TrimSpace(profile.TexturePreference)); pref != "" {
			category := strings.ToLower(strings.TrimSpace(p.Category))
			if category != pref && !categoriesCompatible(pref, category) {
				match.Score *= texturePenalty
			}
		}

		if profile.Experience == ExperienceBeginner && containsComplexActive(p.Ingredients) {
			match.Score *= beginnerPenalty
		}

		filtered = append(filtered, match)
	}
	return filtered
}

func categoriesCompatible(pref, category string) bool {
	for _, c := range compatibleCategories[pref] {
		if c == category {
			return true
		}
	}
	return false
}

func containsComplexActive(ingredients string) bool {
	for _, token := range ParseIngredients(ingredients) {
		for _, active := range complexActives {
			if strings.Contains(token, active) {
				return true
			}
		}
	}
	return false
}

// tokensContain reports whether any parsed token contains the active's name,
// so "salicylic acid 2%" still counts as a salicylic acid hit.
func tokensContain(tokens []string, active string) bool {
	for _, token := range tokens {
		if strings.Contains(token, active) {
			return true
		}
	}
	return false
}
