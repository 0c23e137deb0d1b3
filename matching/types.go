// Package matching scores and ranks tribes against a user profile derived
// from quiz answers. Every function is deterministic and side-effect free:
// the engine consumes in-memory snapshots, never touches storage or the
// network, and never mutates its inputs.
package matching

import "github.com/365days/tribematch/quiz"

// LearningStyle is how a user prefers to learn.
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleReading     LearningStyle = "reading"
	StyleKinesthetic LearningStyle = "kinesthetic"
	StyleMixed       LearningStyle = "mixed"
)

// Motivation is a user's primary driver.
type Motivation string

const (
	MotivationAchievement Motivation = "achievement"
	MotivationCommunity   Motivation = "community"
	MotivationGrowth      Motivation = "growth"
	MotivationPurpose     Motivation = "purpose"
	MotivationAutonomy    Motivation = "autonomy"
)

// Commitment is a user's self-reported engagement intensity.
type Commitment string

const (
	CommitmentCasual   Commitment = "casual"
	CommitmentModerate Commitment = "moderate"
	CommitmentSerious  Commitment = "serious"
	CommitmentObsessed Commitment = "obsessed"
)

// Experience is a user's level in their primary interest.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// ActivityLevel is a tribe's posting cadence.
type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityMedium ActivityLevel = "medium"
	ActivityHigh   ActivityLevel = "high"
)

// Personality holds three 0-10 trait scores. 0 is the low end of the trait
// (extroverted, big-picture, spontaneous), 10 the high end.
type Personality struct {
	Introvert      int `json:"introvert"`
	DetailOriented int `json:"detailOriented"`
	Planner        int `json:"planner"`
}

// UserProfile is the derived, ephemeral summary of a user's quiz answers.
// It is rebuilt on every scoring request and never persisted here.
type UserProfile struct {
	UserID                  string         `json:"userId,omitempty"`
	PrimaryGoal             quiz.GoalTag   `json:"primaryGoal"`
	SecondaryGoals          []quiz.GoalTag `json:"secondaryGoals,omitempty"`
	Interests               []string       `json:"interests"`
	LearningStyle           LearningStyle  `json:"learningStyle"`
	Motivation              Motivation     `json:"motivation"`
	Commitment              Commitment     `json:"commitment"`
	Personality             Personality    `json:"personality"`
	Experience              Experience     `json:"experience"`
	ChallengeArea           string         `json:"challengeArea,omitempty"`
	PreferredCommunityStyle string         `json:"preferredCommunityStyle,omitempty"`
}

// TribeProfile is the snapshot of a candidate tribe the engine scores
// against. Rules content is never inspected, only its presence.
type TribeProfile struct {
	ID                     string        `json:"id"`
	Name                   string        `json:"name"`
	Goal                   quiz.GoalTag  `json:"goal"`
	Interests              []string      `json:"interests"`
	Description            string        `json:"description,omitempty"`
	MembersCount           int           `json:"membersCount"`
	ActivityLevel          ActivityLevel `json:"activityLevel"`
	PreferredLearningStyle LearningStyle `json:"preferredLearningStyle,omitempty"`
	Rules                  string        `json:"rules,omitempty"`
	IsVerified             bool          `json:"isVerified"`
	AvgEngagement          float64       `json:"avgEngagement"`
}

// Recommendation tiers, keyed off the combined score.
type Recommendation string

const (
	HighlyRecommended Recommendation = "highly_recommended" // combined >= 75
	Recommended       Recommendation = "recommended"        // 60 <= combined < 75
	Marginal          Recommendation = "marginal"           // combined < 60
)

// Breakdown carries the five rounded sub-scores that went into the weighted
// combination, each already clamped to [0,100].
type Breakdown struct {
	GoalMatch          int `json:"goalMatch"`
	InterestMatch      int `json:"interestMatch"`
	LearningStyleMatch int `json:"learningStyleMatch"`
	PersonalityMatch   int `json:"personalityMatch"`
	EngagementMatch    int `json:"engagementMatch"`
}

// MatchResult is the scored outcome for one tribe.
type MatchResult struct {
	TribeID         string         `json:"tribeId"`
	TribeName       string         `json:"tribeName"`
	MatchScore      int            `json:"matchScore"`      // 0-100
	MatchPercentage string         `json:"matchPercentage"` // e.g. "82%"
	Recommendation  Recommendation `json:"recommendation"`
	MatchBreakdown  Breakdown      `json:"matchBreakdown"`
	ReasonsToJoin   []string       `json:"reasonsToJoin"`

	// combined keeps the pre-rounding score for rank ordering.
	combined float64
}
