package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/365days/tribematch/quiz"
)

// Combination weights per scoring factor. They sum to 1.0.
var factorWeights = struct {
	goal, interest, learningStyle, personality, engagement float64
}{
	goal:          0.40,
	interest:      0.25,
	learningStyle: 0.15,
	personality:   0.15,
	engagement:    0.05,
}

// Recommendation tier thresholds on the combined score.
const (
	highlyRecommendedAt = 75
	recommendedAt       = 60
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Score computes the full match result for one user/tribe pair. goalWeights
// is the accumulated answer-weight map from ExtractGoalWeights and may be
// nil, in which case goal matching falls back to the coarse primary/secondary
// check alone. The function is total: missing optional tribe fields resolve
// to neutral defaults rather than errors.
func Score(profile UserProfile, tribe TribeProfile, goalWeights map[quiz.GoalTag]float64) MatchResult {
	goalMatch := clamp(goalMatchScore(profile, tribe, goalWeights), 0, 100)
	interestMatch := clamp(interestMatchScore(profile.Interests, tribe.Interests), 0, 100)
	learningStyleMatch := clamp(learningStyleMatchScore(profile.LearningStyle, tribe.PreferredLearningStyle), 0, 100)
	personalityMatch := clamp(personalityMatchScore(profile, tribe), 0, 100)
	engagementMatch := clamp(engagementMatchScore(profile.Commitment, tribe.ActivityLevel), 0, 100)

	combined := clamp(
		goalMatch*factorWeights.goal+
			interestMatch*factorWeights.interest+
			learningStyleMatch*factorWeights.learningStyle+
			personalityMatch*factorWeights.personality+
			engagementMatch*factorWeights.engagement,
		0, 100)

	recommendation := Marginal
	switch {
	case combined >= highlyRecommendedAt:
		recommendation = HighlyRecommended
	case combined >= recommendedAt:
		recommendation = Recommended
	}

	rounded := int(math.Round(combined))

	return MatchResult{
		TribeID:         tribe.ID,
		TribeName:       tribe.Name,
		MatchScore:      rounded,
		MatchPercentage: fmt.Sprintf("%d%%", rounded),
		Recommendation:  recommendation,
		MatchBreakdown: Breakdown{
			GoalMatch:          int(math.Round(goalMatch)),
			InterestMatch:      int(math.Round(interestMatch)),
			LearningStyleMatch: int(math.Round(learningStyleMatch)),
			PersonalityMatch:   int(math.Round(personalityMatch)),
			EngagementMatch:    int(math.Round(engagementMatch)),
		},
		ReasonsToJoin: reasonsToJoin(tribe, goalMatch, interestMatch),
		combined:      combined,
	}
}

// goalMatchScore: primary goal 70, secondary 40, any other goal a 10-point
// baseline. Accumulated answer weight for the tribe's goal adds up to 20 more
// (weight/10 * 20), and commitment adds a flat bonus. Capped at 100 by the
// caller's clamp.
func goalMatchScore(profile UserProfile, tribe TribeProfile, goalWeights map[quiz.GoalTag]float64) float64 {
	score := 10.0
	if profile.PrimaryGoal == tribe.Goal {
		score = 70
	} else if containsGoal(profile.SecondaryGoals, tribe.Goal) {
		score = 40
	}

	if weight, ok := goalWeights[tribe.Goal]; ok {
		score += (weight / 10) * 20
	}

	switch profile.Commitment {
	case CommitmentObsessed:
		score += 15
	case CommitmentSerious:
		score += 10
	case CommitmentModerate:
		score += 5
	}

	return score
}

func containsGoal(goals []quiz.GoalTag, goal quiz.GoalTag) bool {
	for _, g := range goals {
		if g == goal {
			return true
		}
	}
	return false
}

// interestMatchScore: neutral 50 when either side has no interests. Otherwise
// the overlap percentage (matches over the user's interest count) maps
// piecewise: 100% -> 100, [50,100) -> [80,100), [0,50) -> [0,40).
func interestMatchScore(userInterests, tribeInterests []string) float64 {
	if len(userInterests) == 0 || len(tribeInterests) == 0 {
		return 50
	}

	tribeSet := make(map[string]struct{}, len(tribeInterests))
	for _, interest := range tribeInterests {
		tribeSet[strings.ToLower(interest)] = struct{}{}
	}

	matches := 0
	for _, interest := range userInterests {
		if _, ok := tribeSet[strings.ToLower(interest)]; ok {
			matches++
		}
	}

	overlapPct := float64(matches) / float64(len(userInterests)) * 100
	switch {
	case overlapPct == 100:
		return 100
	case overlapPct >= 50:
		return 80 + (overlapPct-50)*0.4
	default:
		return overlapPct * 0.8
	}
}

// compatibleStyles lists learning-style pairs that still work well together.
var compatibleStyles = map[LearningStyle][]LearningStyle{
	StyleVisual:      {StyleMixed},
	StyleAuditory:    {StyleMixed},
	StyleReading:     {StyleVisual, StyleMixed},
	StyleKinesthetic: {StyleMixed, StyleAuditory},
	StyleMixed:       {StyleVisual, StyleAuditory, StyleReading, StyleKinesthetic},
}

// learningStyleMatchScore: 70 when the tribe states no style (or mixed),
// 100 on an exact match, 80 for a compatible pair, 60 otherwise. A mismatch
// never scores near zero since members still benefit from the community.
func learningStyleMatchScore(userStyle, tribeStyle LearningStyle) float64 {
	if tribeStyle == "" || tribeStyle == StyleMixed {
		return 70
	}
	if strings.EqualFold(string(userStyle), string(tribeStyle)) {
		return 100
	}
	for _, compatible := range compatibleStyles[userStyle] {
		if compatible == tribeStyle {
			return 80
		}
	}
	return 60
}

// personalityMatchScore starts from a neutral 50 and adds per-axis bonuses:
// social energy vs. activity level, planning style vs. tribe structure, and a
// verified-tribe bonus for beginners. Capped at 100 by the caller's clamp.
func personalityMatchScore(profile UserProfile, tribe TribeProfile) float64 {
	score := 50.0

	introvert := profile.Personality.Introvert
	switch {
	case introvert < 3: // extrovert leaning
		if tribe.ActivityLevel == ActivityHigh {
			score += 20
		} else if tribe.ActivityLevel == ActivityMedium {
			score += 10
		}
	case introvert > 7: // introvert leaning
		if tribe.ActivityLevel == ActivityLow || tribe.ActivityLevel == ActivityMedium {
			score += 20
		}
	default: // ambivert, comfortable anywhere
		score += 15
	}

	if profile.Personality.Planner > 6 {
		if tribe.Rules != "" {
			score += 10
		}
	} else if profile.Personality.Planner < 4 {
		// Spontaneous users are not penalized by structure.
		score += 10
	}

	if profile.Experience == ExperienceBeginner && tribe.IsVerified {
		score += 15
	}

	return score
}

// engagementTable maps (commitment, activity level) to a fit score.
var engagementTable = map[Commitment]map[ActivityLevel]float64{
	CommitmentCasual:   {ActivityLow: 90, ActivityMedium: 60, ActivityHigh: 30},
	CommitmentModerate: {ActivityLow: 60, ActivityMedium: 90, ActivityHigh: 60},
	CommitmentSerious:  {ActivityLow: 40, ActivityMedium: 80, ActivityHigh: 100},
	CommitmentObsessed: {ActivityLow: 20, ActivityMedium: 70, ActivityHigh: 100},
}

// engagementMatchScore looks up the fixed fit table; values outside the
// enumeration resolve to a neutral 50.
func engagementMatchScore(commitment Commitment, activity ActivityLevel) float64 {
	if row, ok := engagementTable[commitment]; ok {
		if score, ok := row[activity]; ok {
			return score
		}
	}
	return 50
}
