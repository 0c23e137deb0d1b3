package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/365days/tribematch/quiz"
)

func TestReasonsToJoin(t *testing.T) {
	tests := []struct {
		name          string
		tribe         TribeProfile
		goalMatch     float64
		interestMatch float64
		expected      []string
	}{
		{
			name:          "strong goal alignment phrasing",
			tribe:         TribeProfile{Goal: quiz.GoalFitness},
			goalMatch:     85,
			interestMatch: 50,
			expected:      []string{"Perfectly aligned with your fitness goals"},
		},
		{
			name:          "moderate goal alignment phrasing",
			tribe:         TribeProfile{Goal: quiz.GoalLearning},
			goalMatch:     65,
			interestMatch: 50,
			expected:      []string{"Supports your learning journey"},
		},
		{
			name:          "no reasons for a weak match",
			tribe:         TribeProfile{Goal: quiz.GoalCareer, ActivityLevel: ActivityLow},
			goalMatch:     40,
			interestMatch: 50,
			expected:      []string{},
		},
		{
			name: "priority order is fixed and capped at three",
			tribe: TribeProfile{
				Goal:          quiz.GoalHealth,
				ActivityLevel: ActivityHigh,
				IsVerified:    true,
				AvgEngagement: 9,
			},
			goalMatch:     90,
			interestMatch: 95,
			expected: []string{
				"Perfectly aligned with your health goals",
				"Shares your core interests and passions",
				"Very active community for daily engagement",
			},
		},
		{
			name: "medium activity phrasing",
			tribe: TribeProfile{
				Goal:          quiz.GoalMindfulness,
				ActivityLevel: ActivityMedium,
				AvgEngagement: 8,
			},
			goalMatch:     50,
			interestMatch: 50,
			expected: []string{
				"Balanced activity level with consistent support",
				"High member engagement and supportive atmosphere",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reasons := reasonsToJoin(tt.tribe, tt.goalMatch, tt.interestMatch)
			assert.Equal(t, tt.expected, reasons)
			assert.LessOrEqual(t, len(reasons), maxReasons)
		})
	}
}
