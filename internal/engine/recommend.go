package engine

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultRecommendationLimit caps the aggregated list when the caller
	// does not supply a limit.
	DefaultRecommendationLimit = 8

	// recommendFanOut bounds the number of products scored concurrently so a
	// very large catalog cannot grow memory without bound.
	recommendFanOut = 8

	// highRiskPenalty halves a candidate's score when a high-severity
	// reference allergen is present (user-declared hits remove it entirely).
	highRiskPenalty = 0.5
)

// Recommender orchestrates the three analyzers over a candidate product set
// to produce one ranked, personalized suggestion list.
type Recommender struct {
	allergens *AllergenAnalyzer
	concerns  *ConcernMatcher
	conflicts *ConflictDetector
	store     *ReferenceDataStore
}

// NewRecommender creates a new Recommender instance over the given store.
func NewRecommender(store *ReferenceDataStore) *Recommender {
	return &Recommender{
		allergens: NewAllergenAnalyzer(store),
		concerns:  NewConcernMatcher(store),
		conflicts: NewConflictDetector(store),
		store:     store,
	}
}

// Recommend scores every candidate product and returns the top entries by
// adjusted score, capped at limit (DefaultRecommendationLimit when <= 0).
// A product whose ingredients hit any of the user's declared allergens is
// removed outright; any other high-severity allergen hit halves its score.
// Conflicts against routineIngredients are surfaced on each entry, never
// used to filter, since severity context is user-dependent.
//
// Candidates are scored independently across a bounded worker pool and the
// final sort happens after all workers complete; equal scores keep the
// candidates' input order.
func (r *Recommender) Recommend(ctx context.Context, products []Product, profile *UserSkinProfile, routineIngredients []string, limit int) ([]Recommendation, error) {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	concerns := r.requestedConcerns(profile)
	scored := make([]*Recommendation, len(products))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(recommendFanOut)
	for i := range products {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			scored[i] = r.scoreCandidate(products[i], concerns, profile, routineIngredients)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recommendations := make([]Recommendation, 0, len(products))
	for _, rec := range scored {
		if rec != nil {
			recommendations = append(recommendations, *rec)
		}
	}
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})
	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations, nil
}

// requestedConcerns falls back to every known concern when the profile
// declares none, so an empty profile still yields a general ranking.
func (r *Recommender) requestedConcerns(profile *UserSkinProfile) []string {
	if profile != nil && len(profile.Concerns) > 0 {
		return profile.Concerns
	}
	return r.store.ConcernIDs()
}

// scoreCandidate evaluates one product. Returns nil when the product is
// excluded (declared-allergen hit) or matches no requested concern.
func (r *Recommender) scoreCandidate(p Product, concerns []string, profile *UserSkinProfile, routine []string) *Recommendation {
	tokens := ParseIngredients(p.Ingredients)

	analysis := r.allergens.Analyze(tokens, profile)
	var highRisk bool
	for _, alert := range analysis.Alerts {
		if alert.Category == CategoryUserSpecific {
			return nil
		}
		if alert.Severity == SeverityHigh {
			highRisk = true
		}
	}

	byConcern := r.concerns.Match([]Product{p}, concerns, profile)
	var best float64
	scores := make(map[string]float64, len(byConcern))
	var matches []ConcernMatch
	for concern, list := range byConcern {
		if len(list) == 0 {
			continue
		}
		match := list[0]
		scores[concern] = match.Score
		matches = append(matches, match)
		if match.Score > best {
			best = match.Score
		}
	}
	if best == 0 {
		return nil
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Concern < matches[j].Concern })

	if highRisk {
		best *= highRiskPenalty
	}

	rec := &Recommendation{
		Product:       p,
		Score:         best,
		ConcernScores: scores,
		Matches:       matches,
		HighRiskHit:   highRisk,
	}
	if len(routine) > 0 {
		rec.Conflicts = r.conflicts.Find(tokens, routine)
	}
	return rec
}
