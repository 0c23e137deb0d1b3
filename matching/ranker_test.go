package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/365days/tribematch/quiz"
)

// rankingFixture builds a profile and three tribes whose combined scores are
// strictly ordered B > C > A regardless of input order.
func rankingFixture() (UserProfile, []TribeProfile) {
	profile := neutralProfile()
	profile.PrimaryGoal = quiz.GoalFitness
	profile.SecondaryGoals = []quiz.GoalTag{quiz.GoalHealth}

	tribes := []TribeProfile{
		{ID: "tribe-a", Name: "A", Goal: quiz.GoalFinancial, ActivityLevel: ActivityLow},
		{ID: "tribe-b", Name: "B", Goal: quiz.GoalFitness, ActivityLevel: ActivityMedium},
		{ID: "tribe-c", Name: "C", Goal: quiz.GoalHealth, ActivityLevel: ActivityMedium},
	}
	return profile, tribes
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	profile, tribes := rankingFixture()

	results := Rank(profile, tribes, nil, 3)
	require.Len(t, results, 3)
	assert.Equal(t, "tribe-b", results[0].TribeID)
	assert.Equal(t, "tribe-c", results[1].TribeID)
	assert.Equal(t, "tribe-a", results[2].TribeID)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].MatchScore, results[i].MatchScore)
	}
}

func TestRankOrderIndependentOfInputOrder(t *testing.T) {
	profile, tribes := rankingFixture()
	reversed := []TribeProfile{tribes[2], tribes[1], tribes[0]}

	forward := Rank(profile, tribes, nil, 3)
	backward := Rank(profile, reversed, nil, 3)
	assert.Equal(t, forward, backward)
}

func TestRankTruncatesToLimit(t *testing.T) {
	profile, tribes := rankingFixture()
	tribes = append(tribes,
		TribeProfile{ID: "tribe-d", Goal: quiz.GoalCreative, ActivityLevel: ActivityLow},
		TribeProfile{ID: "tribe-e", Goal: quiz.GoalCareer, ActivityLevel: ActivityLow},
	)

	results := Rank(profile, tribes, nil, 2)
	require.Len(t, results, 2)
	assert.Equal(t, "tribe-b", results[0].TribeID)
	assert.Equal(t, "tribe-c", results[1].TribeID)
}

func TestRankDefaultLimit(t *testing.T) {
	profile := neutralProfile()
	tribes := make([]TribeProfile, 8)
	for i := range tribes {
		tribes[i] = TribeProfile{
			ID:            fmt.Sprintf("tribe-%02d", i),
			Goal:          quiz.GoalLearning,
			ActivityLevel: ActivityMedium,
		}
	}

	assert.Len(t, Rank(profile, tribes, nil, 0), DefaultLimit)
	assert.Len(t, Rank(profile, tribes, nil, -1), DefaultLimit)
}

func TestRankBreaksTiesByTribeID(t *testing.T) {
	profile := neutralProfile()
	// Identical tribes except for id: every combined score ties exactly.
	tribes := []TribeProfile{
		{ID: "tribe-c", Goal: quiz.GoalLearning, ActivityLevel: ActivityMedium},
		{ID: "tribe-a", Goal: quiz.GoalLearning, ActivityLevel: ActivityMedium},
		{ID: "tribe-b", Goal: quiz.GoalLearning, ActivityLevel: ActivityMedium},
	}

	results := Rank(profile, tribes, nil, 3)
	require.Len(t, results, 3)
	assert.Equal(t, "tribe-a", results[0].TribeID)
	assert.Equal(t, "tribe-b", results[1].TribeID)
	assert.Equal(t, "tribe-c", results[2].TribeID)
}

func TestRankIdempotentUnderReRanking(t *testing.T) {
	profile, tribes := rankingFixture()

	first := Rank(profile, tribes, nil, 3)

	// Re-rank the same tribes restricted to the previous output's order.
	byID := make(map[string]TribeProfile, len(tribes))
	for _, tribe := range tribes {
		byID[tribe.ID] = tribe
	}
	survivors := make([]TribeProfile, 0, len(first))
	for _, result := range first {
		survivors = append(survivors, byID[result.TribeID])
	}

	second := Rank(profile, survivors, nil, 3)
	assert.Equal(t, first, second)
}

func TestRankLargeCandidateSetIsDeterministic(t *testing.T) {
	// Above the parallel threshold scoring fans out across goroutines; the
	// output order must not depend on scheduling.
	profile := neutralProfile()
	profile.PrimaryGoal = quiz.GoalFitness

	goals := []quiz.GoalTag{quiz.GoalFitness, quiz.GoalHealth, quiz.GoalLearning, quiz.GoalCareer}
	activities := []ActivityLevel{ActivityLow, ActivityMedium, ActivityHigh}
	tribes := make([]TribeProfile, 0, 60)
	for i := 0; i < 60; i++ {
		tribes = append(tribes, TribeProfile{
			ID:            fmt.Sprintf("tribe-%02d", i),
			Goal:          goals[i%len(goals)],
			ActivityLevel: activities[i%len(activities)],
			IsVerified:    i%2 == 0,
		})
	}
	require.GreaterOrEqual(t, len(tribes), parallelThreshold)

	first := Rank(profile, tribes, nil, len(tribes))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Rank(profile, tribes, nil, len(tribes)))
	}
}

func TestRankDoesNotMutateCandidates(t *testing.T) {
	profile, tribes := rankingFixture()
	original := make([]TribeProfile, len(tribes))
	copy(original, tribes)

	Rank(profile, tribes, nil, 2)
	assert.Equal(t, original, tribes)
}
