package quiz

import (
	"errors"
	"fmt"

	errbuilder "github.com/ZanzyTHEbar/errbuilder-go"
)

// ValidateAnswers checks a submission against the catalogue before it is fed
// to the matching engine: the answer set must be non-empty, every required
// question must be answered, selected option ids must exist, and the
// selection arity must fit the question type. Question ids absent from the
// catalogue are ignored so older clients keep working against newer quizzes.
//
// The returned error is an errbuilder invalid-argument error whose details
// map one entry per offending question.
func ValidateAnswers(catalog Catalog, answers Answers) error {
	if len(answers) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("quiz submission has no answers")
	}

	problems := errbuilder.ErrorMap{}
	invalid := 0
	flag := func(questionID string, err error) {
		problems.Set(questionID, err)
		invalid++
	}

	for _, question := range catalog.Questions {
		answer, answered := answers[question.ID]
		if !answered {
			if question.Required {
				flag(question.ID, errors.New("required question not answered"))
			}
			continue
		}

		switch question.Type {
		case SingleChoice:
			if answer.IsMulti() {
				flag(question.ID, errors.New("expected a single selection"))
				continue
			}
			if _, ok := question.Option(answer.Value()); !ok {
				flag(question.ID, fmt.Errorf("unknown option %q", answer.Value()))
			}
		case MultipleChoice:
			selected := answer.Selected()
			if len(selected) == 0 {
				flag(question.ID, errors.New("no options selected"))
				continue
			}
			for _, id := range selected {
				if _, ok := question.Option(id); !ok {
					flag(question.ID, fmt.Errorf("unknown option %q", id))
					break
				}
			}
		}
	}

	if invalid == 0 {
		return nil
	}

	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("quiz submission failed validation").
		WithDetails(errbuilder.NewErrDetails(problems))
}
