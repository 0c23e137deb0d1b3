package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/365days/tribematch/quiz"
)

func TestBuildProfileFullAnswerSet(t *testing.T) {
	catalog := quiz.DefaultCatalog()
	answers := quiz.Answers{
		"q1":  quiz.Single("q1_career"),
		"q2":  quiz.Multi("q2_programming", "q2_business"),
		"q3":  quiz.Single("q3_serious"),
		"q4":  quiz.Single("q4_reading"),
		"q5":  quiz.Single("q5_discuss"),
		"q6":  quiz.Single("q6_planner"),
		"q7":  quiz.Single("q7_achievement"),
		"q9":  quiz.Single("q9_introvert"),
		"q10": quiz.Single("q10_big_picture"),
		"q11": quiz.Single("q11_advanced"),
		"q15": quiz.Single("q15_time"),
	}

	profile := BuildProfile(answers, catalog)

	assert.Equal(t, quiz.GoalCareer, profile.PrimaryGoal)
	assert.Equal(t, []string{"programming", "entrepreneurship"}, profile.Interests)
	assert.Equal(t, CommitmentSerious, profile.Commitment)
	assert.Equal(t, StyleReading, profile.LearningStyle)
	assert.Equal(t, MotivationAchievement, profile.Motivation)
	assert.Equal(t, ExperienceAdvanced, profile.Experience)
	assert.Equal(t, Personality{Introvert: 2, DetailOriented: 2, Planner: 8}, profile.Personality)
	assert.Equal(t, "q5_discuss", profile.PreferredCommunityStyle)
	assert.Equal(t, "q15_time", profile.ChallengeArea)
}

func TestBuildProfileDefaults(t *testing.T) {
	profile := BuildProfile(quiz.Answers{}, quiz.DefaultCatalog())

	assert.Equal(t, quiz.GoalPersonalGrowth, profile.PrimaryGoal)
	assert.Empty(t, profile.Interests)
	assert.NotNil(t, profile.Interests)
	assert.Equal(t, CommitmentModerate, profile.Commitment)
	assert.Equal(t, StyleMixed, profile.LearningStyle)
	assert.Equal(t, MotivationGrowth, profile.Motivation)
	assert.Equal(t, ExperienceBeginner, profile.Experience)
	assert.Equal(t, Personality{Introvert: 5, DetailOriented: 5, Planner: 5}, profile.Personality)
	assert.Empty(t, profile.ChallengeArea)
	assert.Empty(t, profile.PreferredCommunityStyle)
}

func TestBuildProfileUnrecognizedAnswers(t *testing.T) {
	answers := quiz.Answers{
		"q1":   quiz.Single("q1_time_travel"),
		"q2":   quiz.Multi("q2_programming", "q2_underwater_basket_weaving"),
		"q3":   quiz.Single("q3_fanatical"),
		"q99":  quiz.Single("anything"), // unknown question ids are ignored
		"misc": quiz.Multi("a", "b"),
	}

	profile := BuildProfile(answers, quiz.DefaultCatalog())

	assert.Equal(t, quiz.GoalPersonalGrowth, profile.PrimaryGoal)
	assert.Equal(t, []string{"programming"}, profile.Interests)
	assert.Equal(t, CommitmentModerate, profile.Commitment)
}

func TestBuildProfileMultiAnswerForSingleChoiceIsIgnored(t *testing.T) {
	// A multi-selection where a single choice is expected yields no Value()
	// and therefore falls back to the default.
	answers := quiz.Answers{
		"q1": quiz.Multi("q1_health", "q1_fitness"),
	}

	profile := BuildProfile(answers, quiz.DefaultCatalog())
	assert.Equal(t, quiz.GoalPersonalGrowth, profile.PrimaryGoal)
}
