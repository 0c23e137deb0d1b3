package quiz

import (
	"encoding/json"
	"strconv"
)

// Answer is a user's response to one question: a single option id for
// single_choice and scale questions, or several for multiple_choice. Its
// JSON form is a bare string or an array of strings, matching the shape the
// quiz frontend submits.
type Answer struct {
	optionIDs []string
	multi     bool
}

// Single builds a single-selection answer.
func Single(optionID string) Answer {
	return Answer{optionIDs: []string{optionID}}
}

// Multi builds a multiple-selection answer.
func Multi(optionIDs ...string) Answer {
	ids := make([]string, len(optionIDs))
	copy(ids, optionIDs)
	return Answer{optionIDs: ids, multi: true}
}

// Selected returns the selected option ids in submission order.
func (a Answer) Selected() []string {
	return a.optionIDs
}

// IsMulti reports whether the answer carries multiple selections.
func (a Answer) IsMulti() bool {
	return a.multi
}

// Value returns the single selected id, empty when the answer is a
// multi-selection or empty.
func (a Answer) Value() string {
	if a.multi || len(a.optionIDs) == 0 {
		return ""
	}
	return a.optionIDs[0]
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.multi {
		return json.Marshal(a.optionIDs)
	}
	return json.Marshal(a.Value())
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*a = Single(one)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*a = Multi(many...)
	return nil
}

// Answers maps question ids to the user's responses. Question ids not in the
// catalogue are carried but ignored by scoring and validation.
type Answers map[string]Answer

// ScoreAnswers computes the raw per-question score for a submission: the
// selected option's value for single_choice, the sum of selected option
// values for multiple_choice, and the integer value itself for scale
// questions. Unknown questions and unknown option ids contribute nothing.
func ScoreAnswers(catalog Catalog, answers Answers) map[string]int {
	scores := make(map[string]int, len(answers))
	for questionID, answer := range answers {
		question, ok := catalog.Question(questionID)
		if !ok {
			continue
		}

		score := 0
		switch question.Type {
		case SingleChoice:
			if opt, ok := question.Option(answer.Value()); ok {
				score = opt.Value
			}
		case MultipleChoice:
			for _, id := range answer.Selected() {
				if opt, ok := question.Option(id); ok {
					score += opt.Value
				}
			}
		case Scale:
			score, _ = strconv.Atoi(answer.Value())
		}

		scores[questionID] = score
	}
	return scores
}
