package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSingleRuleHit(t *testing.T) {
	detector := NewConflictDetector(fixtureStore(t))

	warnings := detector.Find([]string{"retinol"}, []string{"vitamin c", "niacinamide"})

	require.Len(t, warnings, 1)
	assert.Equal(t, SeverityMedium, warnings[0].Severity)
	assert.Equal(t, "retinol", warnings[0].IngredientA)
	assert.Equal(t, "vitamin c", warnings[0].IngredientB)
	assert.NotEmpty(t, warnings[0].Recommendation)
}

func TestFindIsSymmetric(t *testing.T) {
	detector := NewConflictDetector(defaultStore(t))

	a := []string{"retinol", "glycolic acid"}
	b := []string{"vitamin c", "salicylic acid", "niacinamide"}

	forward := detector.Find(a, b)
	backward := detector.Find(b, a)
	assert.ElementsMatch(t, forward, backward)
}

func TestFindOrdersBySeverityDescending(t *testing.T) {
	detector := NewConflictDetector(defaultStore(t))

	// retinol x glycolic acid is high, retinol x vitamin c is medium,
	// vitamin c x niacinamide is low.
	warnings := detector.Find(
		[]string{"retinol", "niacinamide"},
		[]string{"glycolic acid", "vitamin c"},
	)

	require.Len(t, warnings, 3)
	assert.Equal(t, SeverityHigh, warnings[0].Severity)
	assert.Equal(t, SeverityMedium, warnings[1].Severity)
	assert.Equal(t, SeverityLow, warnings[2].Severity)
}

func TestFindSkipsSelfPairs(t *testing.T) {
	detector := NewConflictDetector(defaultStore(t))

	warnings := detector.Find([]string{"retinol"}, []string{"retinol"})
	assert.Empty(t, warnings)
}

func TestFindReportsEachPairOnce(t *testing.T) {
	detector := NewConflictDetector(defaultStore(t))

	// The pair appears from both directions; one warning only.
	warnings := detector.Find(
		[]string{"retinol", "vitamin c"},
		[]string{"vitamin c", "retinol"},
	)
	require.Len(t, warnings, 1)
}

func TestFindEmptySets(t *testing.T) {
	detector := NewConflictDetector(defaultStore(t))

	assert.Empty(t, detector.Find(nil, []string{"retinol"}))
	assert.Empty(t, detector.Find([]string{"retinol"}, nil))
	assert.Empty(t, detector.Find(nil, nil))
}
