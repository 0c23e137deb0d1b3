package matching

import "github.com/365days/tribematch/quiz"

// ExtractGoalWeights sums the per-goal weight contributions of every selected
// option across every answered question. Multiple-choice selections all
// contribute; options without a weight for a goal contribute zero there.
//
// The result sharpens goal-match scoring beyond the single stated primary
// goal: a user whose answers lean toward a goal throughout the quiz
// accumulates weight for it even when it is not their primary choice. Every
// GoalTag is present in the returned map, so lookups never need a nil check.
func ExtractGoalWeights(answers quiz.Answers, catalog quiz.Catalog) map[quiz.GoalTag]float64 {
	weights := make(map[quiz.GoalTag]float64, len(quiz.AllGoals))
	for _, goal := range quiz.AllGoals {
		weights[goal] = 0
	}

	for questionID, answer := range answers {
		question, ok := catalog.Question(questionID)
		if !ok {
			continue
		}
		for _, optionID := range answer.Selected() {
			option, ok := question.Option(optionID)
			if !ok {
				continue
			}
			for goal, weight := range option.GoalWeights {
				weights[goal] += float64(weight)
			}
		}
	}

	return weights
}
