package matching

import "github.com/365days/tribematch/quiz"

// Fixed answer-to-attribute tables. Option ids come from the standard
// catalogue (quiz.DefaultCatalog); ids missing from a table fall back to the
// documented default for that attribute.
var (
	primaryGoalByOption = map[string]quiz.GoalTag{
		"q1_health":        quiz.GoalHealth,
		"q1_fitness":       quiz.GoalFitness,
		"q1_learning":      quiz.GoalLearning,
		"q1_career":        quiz.GoalCareer,
		"q1_mindfulness":   quiz.GoalMindfulness,
		"q1_relationships": quiz.GoalRelationships,
		"q1_financial":     quiz.GoalFinancial,
		"q1_creative":      quiz.GoalCreative,
		"q1_purpose":       quiz.GoalPersonalGrowth,
	}

	interestByOption = map[string]string{
		"q2_nutrition":     "nutrition",
		"q2_workout":       "fitness-training",
		"q2_sleep":         "sleep-optimization",
		"q2_stress":        "stress-management",
		"q2_meditation":    "meditation",
		"q2_programming":   "programming",
		"q2_language":      "language-learning",
		"q2_business":      "entrepreneurship",
		"q2_finance":       "personal-finance",
		"q2_relationships": "relationships",
		"q2_creative":      "creative-arts",
		"q2_spirituality":  "spirituality",
	}

	commitmentByOption = map[string]Commitment{
		"q3_casual":   CommitmentCasual,
		"q3_moderate": CommitmentModerate,
		"q3_serious":  CommitmentSerious,
		"q3_obsessed": CommitmentObsessed,
	}

	learningStyleByOption = map[string]LearningStyle{
		"q4_visual":      StyleVisual,
		"q4_auditory":    StyleAuditory,
		"q4_reading":     StyleReading,
		"q4_kinesthetic": StyleKinesthetic,
		"q4_mixed":       StyleMixed,
	}

	motivationByOption = map[string]Motivation{
		"q7_achievement": MotivationAchievement,
		"q7_community":   MotivationCommunity,
		"q7_growth":      MotivationGrowth,
		"q7_purpose":     MotivationPurpose,
		"q7_autonomy":    MotivationAutonomy,
	}

	introvertByOption = map[string]int{
		"q9_introvert": 2,
		"q9_ambivert":  5,
		"q9_extrovert": 8,
	}

	detailByOption = map[string]int{
		"q10_details":     8,
		"q10_balanced":    5,
		"q10_big_picture": 2,
	}

	plannerByOption = map[string]int{
		"q6_planner":     8,
		"q6_hybrid":      5,
		"q6_spontaneous": 2,
	}

	experienceByOption = map[string]Experience{
		"q11_beginner":     ExperienceBeginner,
		"q11_intermediate": ExperienceIntermediate,
		"q11_advanced":     ExperienceAdvanced,
	}
)

// BuildProfile converts raw quiz answers into a fully populated UserProfile.
// Every attribute has a default, so a sparse or partially unrecognized answer
// set still yields a usable profile: primary goal personal_growth, commitment
// moderate, learning style mixed, motivation growth, experience beginner,
// personality traits 5 (neutral). Unknown question ids are ignored.
//
// The catalogue argument is accepted for interface symmetry with the other
// engine entry points; the attribute tables above are keyed on the standard
// catalogue's option ids.
func BuildProfile(answers quiz.Answers, catalog quiz.Catalog) UserProfile {
	profile := UserProfile{
		PrimaryGoal:   quiz.GoalPersonalGrowth,
		Interests:     []string{},
		LearningStyle: StyleMixed,
		Motivation:    MotivationGrowth,
		Commitment:    CommitmentModerate,
		Experience:    ExperienceBeginner,
		Personality:   Personality{Introvert: 5, DetailOriented: 5, Planner: 5},
	}

	if goal, ok := primaryGoalByOption[answers["q1"].Value()]; ok {
		profile.PrimaryGoal = goal
	}

	for _, optionID := range answers["q2"].Selected() {
		if interest, ok := interestByOption[optionID]; ok {
			profile.Interests = append(profile.Interests, interest)
		}
	}

	if commitment, ok := commitmentByOption[answers["q3"].Value()]; ok {
		profile.Commitment = commitment
	}
	if style, ok := learningStyleByOption[answers["q4"].Value()]; ok {
		profile.LearningStyle = style
	}
	if motivation, ok := motivationByOption[answers["q7"].Value()]; ok {
		profile.Motivation = motivation
	}
	if experience, ok := experienceByOption[answers["q11"].Value()]; ok {
		profile.Experience = experience
	}

	if score, ok := introvertByOption[answers["q9"].Value()]; ok {
		profile.Personality.Introvert = score
	}
	if score, ok := detailByOption[answers["q10"].Value()]; ok {
		profile.Personality.DetailOriented = score
	}
	if score, ok := plannerByOption[answers["q6"].Value()]; ok {
		profile.Personality.Planner = score
	}

	// Carried through verbatim, not scored numerically.
	profile.PreferredCommunityStyle = answers["q5"].Value()
	profile.ChallengeArea = answers["q15"].Value()

	return profile
}
