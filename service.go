// Package tribematch recommends community tribes from a user's quiz answers.
//
// The heavy lifting lives in the matching and quiz packages, which stay pure;
// this package provides the Recommender facade the surrounding application
// calls after persisting a quiz submission: validate the answers, derive the
// profile and goal weights, and rank the candidate tribes.
package tribematch

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/365days/tribematch/matching"
	"github.com/365days/tribematch/quiz"
)

// Recommendation is the full outcome of one quiz submission.
type Recommendation struct {
	SubmissionID string                 `json:"submissionId"`
	Profile      matching.UserProfile   `json:"userProfile"`
	AnswerScores map[string]int         `json:"answerScores"`
	Matches      []matching.MatchResult `json:"recommendations"`
}

// Recommender wires a quiz catalogue to the matching engine.
type Recommender struct {
	catalog quiz.Catalog
	logger  *slog.Logger
}

// Option configures a Recommender.
type Option func(*Recommender)

// WithLogger sets the structured logger used for per-request log lines.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recommender) {
		r.logger = logger
	}
}

// New creates a Recommender for the given catalogue. Without WithLogger it
// uses slog's default logger.
func New(catalog quiz.Catalog, opts ...Option) *Recommender {
	r := &Recommender{
		catalog: catalog,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog returns the catalogue the recommender was built with.
func (r *Recommender) Catalog() quiz.Catalog {
	return r.catalog
}

// Recommend validates the submitted answers, builds the user profile,
// extracts accumulated goal weights, and ranks the candidate tribes. Tribes
// whose ids appear in exclude (typically the user's current memberships) are
// dropped before ranking so the limit stays meaningful. limit <= 0 falls back
// to matching.DefaultLimit.
func (r *Recommender) Recommend(answers quiz.Answers, tribes []matching.TribeProfile, exclude map[string]bool, limit int) (*Recommendation, error) {
	if err := quiz.ValidateAnswers(r.catalog, answers); err != nil {
		return nil, err
	}

	candidates := tribes
	if len(exclude) > 0 {
		candidates = make([]matching.TribeProfile, 0, len(tribes))
		for _, tribe := range tribes {
			if !exclude[tribe.ID] {
				candidates = append(candidates, tribe)
			}
		}
	}

	profile := matching.BuildProfile(answers, r.catalog)
	goalWeights := matching.ExtractGoalWeights(answers, r.catalog)
	matches := matching.Rank(profile, candidates, goalWeights, limit)

	rec := &Recommendation{
		SubmissionID: uuid.NewString(),
		Profile:      profile,
		AnswerScores: quiz.ScoreAnswers(r.catalog, answers),
		Matches:      matches,
	}

	topScore := 0
	if len(matches) > 0 {
		topScore = matches[0].MatchScore
	}
	r.logger.Info("tribe recommendations computed",
		"submission_id", rec.SubmissionID,
		"primary_goal", profile.PrimaryGoal,
		"candidates", len(candidates),
		"matches", len(matches),
		"top_score", topScore,
	)

	return rec, nil
}
