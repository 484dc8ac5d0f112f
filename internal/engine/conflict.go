package engine

import "sort"

// ConflictDetector finds pairwise incompatibilities between two ingredient
// sets, e.g. a newly scanned product against the user's existing routine.
type ConflictDetector struct {
	store *ReferenceDataStore
}

// NewConflictDetector creates a new ConflictDetector instance.
func NewConflictDetector(store *ReferenceDataStore) *ConflictDetector {
	return &ConflictDetector{store: store}
}

// Find checks every unordered pair with one ingredient drawn from each set
// against the conflict rule table. Self-pairs (the same ingredient appearing
// in both sets) are skipped, and each unordered pair is reported at most
// once, so Find(a, b) and Find(b, a) yield the same warnings. Severity comes
// verbatim from the rule; output is ordered severity descending, ties kept
// in first-encountered order.
func (d *ConflictDetector) Find(ingredientsA, ingredientsB []string) []ConflictWarning {
	warnings := []ConflictWarning{}
	seen := make(map[string]struct{})

	for _, x := range ingredientsA {
		for _, y := range ingredientsB {
			if x == y {
				continue
			}
			rule, ok := d.store.ConflictBetween(x, y)
			if !ok {
				continue
			}
			key := conflictKey(x, y)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			warnings = append(warnings, ConflictWarning{
				IngredientA:    rule.IngredientA,
				IngredientB:    rule.IngredientB,
				Severity:       rule.Severity,
				Description:    rule.Description,
				Recommendation: rule.Recommendation,
			})
		}
	}

	sort.SliceStable(warnings, func(i, j int) bool {
		return severityRank(warnings[i].Severity) > severityRank(warnings[j].Severity)
	})
	return warnings
}
