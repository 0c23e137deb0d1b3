package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogShape(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, 1, catalog.Version)
	require.Len(t, catalog.Questions, 18)

	for i, question := range catalog.Questions {
		assert.Equal(t, i+1, question.Order, question.ID)
		assert.True(t, question.Required, question.ID)
		assert.NotEmpty(t, question.Prompt, question.ID)
		assert.NotEmpty(t, question.Category, question.ID)
		assert.NotEmpty(t, question.Options, question.ID)
	}

	// q2 and q18 are the only multi-select questions.
	multi := []string{}
	for _, question := range catalog.Questions {
		if question.Type == MultipleChoice {
			multi = append(multi, question.ID)
		}
	}
	assert.Equal(t, []string{"q2", "q18"}, multi)
}

func TestDefaultCatalogIDsAreUnique(t *testing.T) {
	catalog := DefaultCatalog()

	questionIDs := map[string]bool{}
	optionIDs := map[string]bool{}
	for _, question := range catalog.Questions {
		assert.False(t, questionIDs[question.ID], "duplicate question id %s", question.ID)
		questionIDs[question.ID] = true
		for _, option := range question.Options {
			assert.False(t, optionIDs[option.ID], "duplicate option id %s", option.ID)
			optionIDs[option.ID] = true
		}
	}
}

func TestDefaultCatalogWeightsAreWellFormed(t *testing.T) {
	for _, question := range DefaultCatalog().Questions {
		for _, option := range question.Options {
			assert.GreaterOrEqual(t, option.Value, 0, option.ID)
			assert.LessOrEqual(t, option.Value, 10, option.ID)
			for goal, weight := range option.GoalWeights {
				assert.True(t, goal.Valid(), "option %s weights unknown goal %q", option.ID, goal)
				assert.GreaterOrEqual(t, weight, 0, option.ID)
				assert.LessOrEqual(t, weight, 10, option.ID)
			}
		}
	}
}

func TestCatalogLookups(t *testing.T) {
	catalog := DefaultCatalog()

	q1, ok := catalog.Question("q1")
	require.True(t, ok)
	assert.Equal(t, SingleChoice, q1.Type)

	opt, ok := q1.Option("q1_purpose")
	require.True(t, ok)
	assert.Equal(t, 10, opt.Weight(GoalSpirituality))
	assert.Zero(t, opt.Weight(GoalFitness)) // absent entries read as zero

	_, ok = catalog.Question("q99")
	assert.False(t, ok)
	_, ok = q1.Option("q1_nonexistent")
	assert.False(t, ok)
}

func TestDefaultCatalogReturnsFreshCopies(t *testing.T) {
	first := DefaultCatalog()
	first.Questions[0].Prompt = "tampered"
	first.Questions[0].Options[0].GoalWeights[GoalHealth] = 0

	second := DefaultCatalog()
	assert.NotEqual(t, "tampered", second.Questions[0].Prompt)
	assert.Equal(t, 10, second.Questions[0].Options[0].GoalWeights[GoalHealth])
}

func TestGoalTagValid(t *testing.T) {
	for _, goal := range AllGoals {
		assert.True(t, goal.Valid())
	}
	assert.False(t, GoalTag("crossfit").Valid())
	assert.False(t, GoalTag("").Valid())
}
