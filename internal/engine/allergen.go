package engine

import (
	"fmt"
	"strings"
)

// Scoring constants for the allergen risk model. The formula weights are
// heuristic and preserved for behavioral parity with the production rules;
// treat them as tunable parameters, not empirical truths.
const (
	// UserAllergenRiskScore is the fixed score for a declared-allergen hit.
	UserAllergenRiskScore = 95.0

	// CategoryUserSpecific marks alerts raised from the user's own list.
	CategoryUserSpecific = "user_specific"

	baseRiskWeight  = 30.0
	repeatHitBonus  = 10.0
	overallSumWeight = 0.1

	overallHighThreshold   = 70.0
	overallMediumThreshold = 40.0
)

// allergenVariantTemplates are the transformation templates applied to a
// declared allergen term when scanning tokens, e.g. "shea" also matches
// "shea oil" and "sodium shea". Keeping them in one list keeps the variant
// rule auditable.
var allergenVariantTemplates = []string{
	"%s extract",
	"%s oil",
	"%s acid",
	"%s alcohol",
	"sodium %s",
	"potassium %s",
}

// AllergenAnalyzer flags allergen risk in a parsed ingredient list against
// the reference tables and a user's declared allergens.
type AllergenAnalyzer struct {
	store *ReferenceDataStore
}

// NewAllergenAnalyzer creates a new AllergenAnalyzer instance.
func NewAllergenAnalyzer(store *ReferenceDataStore) *AllergenAnalyzer {
	return &AllergenAnalyzer{store: store}
}

// Analyze runs both detection passes over the parsed ingredient tokens.
// Pass one scans for the user's declared allergens, pass two sweeps the
// reference definitions; the passes are independent, so a declared term that
// also exists in the reference tables produces two alerts. A nil profile
// disables the declared-allergen pass and all profile adjustments.
// The function is pure: identical inputs yield identical results.
func (a *AllergenAnalyzer) Analyze(ingredients []string, profile *UserSkinProfile) *AllergenAnalysisResult {
	result := &AllergenAnalysisResult{Alerts: []AllergenAlert{}}
	if len(ingredients) == 0 {
		result.OverallLevel = SeverityLow
		result.Recommendations = []string{lowRiskAffirmation}
		return result
	}

	if profile != nil {
		result.Alerts = append(result.Alerts, a.declaredAllergenAlerts(ingredients, profile)...)
	}
	result.Alerts = append(result.Alerts, a.referenceAlerts(ingredients, profile)...)

	a.aggregate(result, profile)
	return result
}

// declaredAllergenAlerts is the user-declared pass. A hit is always treated
// as high severity at a fixed score: the user's own history outranks any
// prevalence statistics.
func (a *AllergenAnalyzer) declaredAllergenAlerts(ingredients []string, profile *UserSkinProfile) []AllergenAlert {
	var alerts []AllergenAlert
	for _, declared := range profile.Allergens {
		term := strings.ToLower(strings.TrimSpace(declared))
		if term == "" {
			continue
		}

		var matched []string
		for _, token := range ingredients {
			if tokenMatchesTerm(token, term) {
				matched = append(matched, token)
			}
		}
		if len(matched) == 0 {
			continue
		}

		alert := AllergenAlert{
			Allergen:           term,
			Severity:           SeverityHigh,
			RiskScore:          UserAllergenRiskScore,
			Category:           CategoryUserSpecific,
			MatchedIngredients: matched,
			Description:        fmt.Sprintf("Contains %q, which is on your personal allergen list.", term),
		}
		if def, ok := a.store.DefinitionForTerm(term); ok {
			alert.CrossReactions = a.store.CrossReactionsFor(def.ID)
			alert.Alternative = def.Alternative
		}
		alerts = append(alerts, alert)
	}
	return alerts
}

// tokenMatchesTerm checks direct substring containment and the fixed variant
// templates for a declared allergen term against one ingredient token.
func tokenMatchesTerm(token, term string) bool {
	if strings.Contains(token, term) {
		return true
	}
	for _, tmpl := range allergenVariantTemplates {
		if strings.Contains(token, fmt.Sprintf(tmpl, term)) {
			return true
		}
	}
	return false
}

// referenceAlerts sweeps every reference definition's alias list over the
// token list and scores each definition with at least one hit.
func (a *AllergenAnalyzer) referenceAlerts(ingredients []string, profile *UserSkinProfile) []AllergenAlert {
	var alerts []AllergenAlert
	for _, def := range a.store.AllergenDefinitions() {
		var matched []string
		for _, token := range ingredients {
			for _, alias := range def.Aliases {
				if strings.Contains(token, alias) {
					matched = append(matched, token)
					break
				}
			}
		}
		if len(matched) == 0 {
			continue
		}

		occurrences := len(matched)
		score := baseRiskWeight*severityMultiplier(def.Severity)*(def.Prevalence*100) +
			float64(occurrences-1)*repeatHitBonus

		alert := AllergenAlert{
			Allergen:           def.ID,
			Severity:           def.Severity,
			Category:           def.Category,
			MatchedIngredients: matched,
			CrossReactions:     a.store.CrossReactionsFor(def.ID),
			Description:        def.Description,
			Alternative:        def.Alternative,
		}
		score = applyProfileAdjustments(profile, &alert, score)
		alert.RiskScore = clamp(score, 0, 100)
		alerts = append(alerts, alert)
	}
	return alerts
}

func severityMultiplier(s Severity) float64 {
	switch s {
	case SeverityHigh:
		return 2.0
	case SeverityMedium:
		return 1.5
	default:
		return 1.0
	}
}

// aggregate fills the overall score, level, patch-test flag and safety
// recommendations. The overall formula rewards a single severe hit while
// still penalizing many simultaneous lower-risk hits.
func (a *AllergenAnalyzer) aggregate(result *AllergenAnalysisResult, profile *UserSkinProfile) {
	var maxScore, sum float64
	for _, alert := range result.Alerts {
		if alert.RiskScore > maxScore {
			maxScore = alert.RiskScore
		}
		sum += alert.RiskScore
	}

	result.OverallScore = clamp(maxScore+overallSumWeight*sum, 0, 100)
	switch {
	case result.OverallScore >= overallHighThreshold:
		result.OverallLevel = SeverityHigh
	case result.OverallScore >= overallMediumThreshold:
		result.OverallLevel = SeverityMedium
	default:
		result.OverallLevel = SeverityLow
	}

	result.PatchTestRecommended = patchTestRecommended(result.Alerts, profile)
	result.Recommendations = safetyRecommendations(result.Alerts, profile)
}

func patchTestRecommended(alerts []AllergenAlert, profile *UserSkinProfile) bool {
	if len(alerts) > 2 {
		return true
	}
	sensitive := profile != nil && profile.SkinType == SkinSensitive
	for _, alert := range alerts {
		if alert.Category == CategoryUserSpecific {
			return true
		}
		if alert.Severity == SeverityHigh {
			return true
		}
		if sensitive && alert.Severity == SeverityMedium {
			return true
		}
	}
	return false
}

const lowRiskAffirmation = "No significant allergen risk detected for your profile."

// safetyRecommendations emits fixed-template guidance keyed on the alert mix
// and profile. Order matches the severity of the underlying condition.
func safetyRecommendations(alerts []AllergenAlert, profile *UserSkinProfile) []string {
	var recs []string

	var hasUserSpecific, hasHigh, hasFragrance bool
	for _, alert := range alerts {
		switch {
		case alert.Category == CategoryUserSpecific:
			hasUserSpecific = true
		case alert.Category == "fragrance":
			hasFragrance = true
		}
		if alert.Severity == SeverityHigh {
			hasHigh = true
		}
	}

	if hasUserSpecific {
		recs = append(recs, "This product contains ingredients on your personal allergen list. Avoid it or consult a dermatologist before use.")
	}
	if hasHigh {
		recs = append(recs, "High-risk allergens detected. Patch test on the inner forearm for 48 hours before applying to the face.")
	}
	if profile != nil && profile.SkinType == SkinSensitive && len(alerts) > 0 {
		recs = append(recs, "With sensitive skin, introduce this product on its own rather than alongside other new products.")
	}
	if profile != nil && profile.Experience == ExperienceBeginner && len(alerts) > 0 {
		recs = append(recs, "Start at a low frequency of use so any reaction is easy to attribute.")
	}
	if len(alerts) > 3 {
		recs = append(recs, "This formula carries several potential allergens at once; a shorter ingredient list would be safer.")
	}
	if hasFragrance {
		recs = append(recs, "Consider a fragrance-free alternative; fragrance is the most common contact allergen in cosmetics.")
	}

	if len(recs) == 0 {
		recs = append(recs, lowRiskAffirmation)
	}
	return recs
}
