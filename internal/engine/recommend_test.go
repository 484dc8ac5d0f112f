package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recommendProfile() *UserSkinProfile {
	return &UserSkinProfile{
		SkinType:   SkinNormal,
		Concerns:   []string{"acne"},
		Experience: ExperienceAdvanced,
	}
}

func TestRecommendRanksByAdjustedScore(t *testing.T) {
	recommender := NewRecommender(defaultStore(t))

	clean := acneSerum()
	clean.ID = "clean"

	scented := acneSerum()
	scented.ID = "scented"
	scented.Ingredients += ", Fragrance"

	recs, err := recommender.Recommend(context.Background(), []Product{scented, clean}, recommendProfile(), nil, 0)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// The fragranced product carries a high-severity reference alert and is
	// halved, so the clean formula wins despite equal concern scores.
	assert.Equal(t, "clean", recs[0].Product.ID)
	assert.Equal(t, "scented", recs[1].Product.ID)
	assert.True(t, recs[1].HighRiskHit)
	assert.InDelta(t, recs[0].Score*highRiskPenalty, recs[1].Score, 1e-9)
}

func TestRecommendExcludesDeclaredAllergenHits(t *testing.T) {
	recommender := NewRecommender(defaultStore(t))

	profile := recommendProfile()
	profile.Allergens = []string{"fragrance"}

	scented := acneSerum()
	scented.ID = "scented"
	scented.Ingredients += ", Fragrance"

	recs, err := recommender.Recommend(context.Background(), []Product{scented, acneSerum()}, profile, nil, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "p1", recs[0].Product.ID)
}

func TestRecommendAnnotatesConflictsWithoutFiltering(t *testing.T) {
	recommender := NewRecommender(defaultStore(t))

	// The routine contains retinol; salicylic acid in the candidate trips a
	// conflict rule, but the candidate must stay ranked.
	recs, err := recommender.Recommend(context.Background(), []Product{acneSerum()}, recommendProfile(), []string{"retinol"}, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Conflicts, 1)
	assert.Equal(t, SeverityMedium, recs[0].Conflicts[0].Severity)
}

func TestRecommendSkipsNonMatchingProducts(t *testing.T) {
	recommender := NewRecommender(defaultStore(t))

	dud := Product{ID: "dud", Category: "cleanser", Ingredients: "Water, Dimethicone"}
	recs, err := recommender.Recommend(context.Background(), []Product{dud}, recommendProfile(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendHonorsLimit(t *testing.T) {
	recommender := NewRecommender(defaultStore(t))

	products := make([]Product, 20)
	for i := range products {
		p := acneSerum()
		p.ID = fmt.Sprintf("p%d", i)
		products[i] = p
	}

	recs, err := recommender.Recommend(context.Background(), products, recommendProfile(), nil, 3)
	require.NoError(t, err)
	assert.Len(t, recs, 3)

	recs, err = recommender.Recommend(context.Background(), products, recommendProfile(), nil, 0)
	require.NoError(t, err)
	assert.Len(t, recs, DefaultRecommendationLimit)
}

func TestRecommendIsDeterministicAcrossParallelRuns(t *testing.T) {
	recommender := NewRecommender(defaultStore(t))

	products := make([]Product, 30)
	for i := range products {
		p := acneSerum()
		p.ID = fmt.Sprintf("p%d", i)
		p.Price = float64(10 + i)
		products[i] = p
	}
	profile := recommendProfile()
	profile.Budget = &BudgetRange{Min: 5, Max: 35}

	baseline, err := recommender.Recommend(context.Background(), products, profile, []string{"retinol"}, 10)
	require.NoError(t, err)

	results := make([][]Recommendation, 8)
	done := make(chan int, len(results))
	for i := range results {
		go func(i int) {
			recs, err := recommender.Recommend(context.Background(), products, profile, []string{"retinol"}, 10)
			assert.NoError(t, err)
			results[i] = recs
			done <- i
		}(i)
	}
	for range results {
		<-done
	}
	for _, recs := range results {
		assert.Equal(t, baseline, recs)
	}
}

func TestRecommendCancelledContext(t *testing.T) {
	recommender := NewRecommender(defaultStore(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	products := make([]Product, 50)
	for i := range products {
		p := acneSerum()
		p.ID = fmt.Sprintf("p%d", i)
		products[i] = p
	}

	_, err := recommender.Recommend(ctx, products, recommendProfile(), nil, 0)
	assert.Error(t, err)
}
