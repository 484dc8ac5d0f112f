package engine

// adjustmentRule is one named profile-driven correction to a reference
// allergen alert. Rules are applied in the order they are listed; each may
// add to the raw score, escalate the alert's severity one level, or both.
// New adjustments are added here without touching the core scoring formula.
type adjustmentRule struct {
	name       string
	applies    func(profile *UserSkinProfile, alert *AllergenAlert) bool
	scoreDelta float64
	escalates  bool
}

// profileAdjustments is the fixed, ordered adjustment table. Sensitive skin
// runs before the beginner bump so escalation happens on the definition's
// declared severity.
var profileAdjustments = []adjustmentRule{
	{
		name: "sensitive_skin",
		applies: func(p *UserSkinProfile, _ *AllergenAlert) bool {
			return p.SkinType == SkinSensitive
		},
		scoreDelta: 20,
		escalates:  true,
	},
	{
		name: "beginner_experience",
		applies: func(p *UserSkinProfile, _ *AllergenAlert) bool {
			return p.Experience == ExperienceBeginner
		},
		scoreDelta: 10,
	},
}

// applyProfileAdjustments runs the adjustment table over one alert and
// returns the adjusted raw score. Clamping is the caller's responsibility.
func applyProfileAdjustments(profile *UserSkinProfile, alert *AllergenAlert, score float64) float64 {
	if profile == nil {
		return score
	}
	for _, rule := range profileAdjustments {
		if !rule.applies(profile, alert) {
			continue
		}
		score += rule.scoreDelta
		if rule.escalates {
			alert.Severity = escalate(alert.Severity)
		}
	}
	return score
}
