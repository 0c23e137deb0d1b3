package quiz

// DefaultCatalog returns the standard 18-question tribe-matching quiz. The
// returned value is a fresh copy, so callers may hold it without aliasing
// package state. Question ids (q1..q18) and option ids are stable and are
// what the matching engine's profile tables key on.
func DefaultCatalog() Catalog {
	return Catalog{
		Version:              1,
		Title:                "Find Your Perfect Tribe",
		Description:          "Answer 18 quick questions to discover tribes that align with your goals, interests, and learning style.",
		EstimatedTimeMinutes: 5,
		Questions: []Question{
			{
				ID:          "q1",
				Order:       1,
				Prompt:      "What's your primary reason for joining 365Days?",
				Description: "Choose the one that resonates most with you right now",
				Type:        SingleChoice,
				Category:    "primary_goal",
				Required:    true,
				Options: []Option{
					{ID: "q1_health", Text: "Improve my physical and mental health", Value: 10,
						GoalWeights: map[GoalTag]int{GoalHealth: 10, GoalFitness: 8, GoalMindfulness: 7, GoalPersonalGrowth: 5}},
					{ID: "q1_fitness", Text: "Get fit and build muscle/lose weight", Value: 10,
						GoalWeights: map[GoalTag]int{GoalFitness: 10, GoalHealth: 7, GoalPersonalGrowth: 5}},
					{ID: "q1_learning", Text: "Learn new skills and expand knowledge", Value: 10,
						GoalWeights: map[GoalTag]int{GoalLearning: 10, GoalCareer: 6, GoalCreative: 5, GoalPersonalGrowth: 7}},
					{ID: "q1_career", Text: "Advance my career and professional goals", Value: 10,
						GoalWeights: map[GoalTag]int{GoalCareer: 10, GoalLearning: 7, GoalPersonalGrowth: 6, GoalFinancial: 6}},
					{ID: "q1_mindfulness", Text: "Find peace, practice mindfulness, and reduce stress", Value: 10,
						GoalWeights: map[GoalTag]int{GoalMindfulness: 10, GoalHealth: 8, GoalSpirituality: 7, GoalPersonalGrowth: 6}},
					{ID: "q1_relationships", Text: "Improve relationships and social connections", Value: 10,
						GoalWeights: map[GoalTag]int{GoalRelationships: 10, GoalPersonalGrowth: 7, GoalMindfulness: 4}},
					{ID: "q1_financial", Text: "Achieve financial stability and growth", Value: 10,
						GoalWeights: map[GoalTag]int{GoalFinancial: 10, GoalCareer: 7, GoalPersonalGrowth: 6}},
					{ID: "q1_creative", Text: "Express creativity and pursue artistic goals", Value: 10,
						GoalWeights: map[GoalTag]int{GoalCreative: 10, GoalPersonalGrowth: 8, GoalLearning: 6}},
					{ID: "q1_purpose", Text: "Find purpose and spiritual growth", Value: 10,
						GoalWeights: map[GoalTag]int{GoalSpirituality: 10, GoalMindfulness: 8, GoalPersonalGrowth: 9, GoalRelationships: 5}},
				},
			},
			{
				ID:          "q2",
				Order:       2,
				Prompt:      "Which areas are you interested in improving? (Select all that apply)",
				Description: "Check all that apply to your journey",
				Type:        MultipleChoice,
				Category:    "interests",
				Required:    true,
				Options: []Option{
					{ID: "q2_nutrition", Text: "Nutrition and diet", Value: 8,
						GoalWeights: map[GoalTag]int{GoalHealth: 8, GoalFitness: 6}},
					{ID: "q2_workout", Text: "Exercise and workouts", Value: 8,
						GoalWeights: map[GoalTag]int{GoalFitness: 9, GoalHealth: 5}},
					{ID: "q2_sleep", Text: "Sleep quality and recovery", Value: 7,
						GoalWeights: map[GoalTag]int{GoalHealth: 8, GoalMindfulness: 6}},
					{ID: "q2_stress", Text: "Stress management and anxiety", Value: 8,
						GoalWeights: map[GoalTag]int{GoalMindfulness: 9, GoalHealth: 7}},
					{ID: "q2_meditation", Text: "Meditation and mindfulness practices", Value: 8,
						GoalWeights: map[GoalTag]int{GoalMindfulness: 10, GoalSpirituality: 8}},
					{ID: "q2_programming", Text: "Programming and tech skills", Value: 8,
						GoalWeights: map[GoalTag]int{GoalLearning: 9, GoalCareer: 8}},
					{ID: "q2_language", Text: "Language learning", Value: 7,
						GoalWeights: map[GoalTag]int{GoalLearning: 9, GoalCareer: 5}},
					{ID: "q2_business", Text: "Business and entrepreneurship", Value: 8,
						GoalWeights: map[GoalTag]int{GoalCareer: 9, GoalFinancial: 8, GoalLearning: 6}},
					{ID: "q2_finance", Text: "Personal finance and investing", Value: 8,
						GoalWeights: map[GoalTag]int{GoalFinancial: 10, GoalCareer: 5}},
					{ID: "q2_relationships", Text: "Relationships and communication", Value: 8,
						GoalWeights: map[GoalTag]int{GoalRelationships: 10, GoalPersonalGrowth: 7}},
					{ID: "q2_creative", Text: "Creative pursuits (art, music, writing)", Value: 8,
						GoalWeights: map[GoalTag]int{GoalCreative: 10, GoalPersonalGrowth: 8}},
					{ID: "q2_spirituality", Text: "Spirituality and philosophy", Value: 8,
						GoalWeights: map[GoalTag]int{GoalSpirituality: 10, GoalMindfulness: 7}},
				},
			},
			{
				ID:          "q3",
				Order:       3,
				Prompt:      "How committed are you to your goals?",
				Description: "Be honest about your availability and dedication",
				Type:        SingleChoice,
				Category:    "commitment",
				Required:    true,
				Options: []Option{
					{ID: "q3_casual", Text: "Just exploring, no major commitment yet", Value: 5,
						GoalWeights: map[GoalTag]int{GoalHealth: 3, GoalFitness: 3, GoalLearning: 4, GoalCareer: 2, GoalMindfulness: 4, GoalRelationships: 4, GoalFinancial: 2, GoalCreative: 4, GoalPersonalGrowth: 3, GoalSpirituality: 4}},
					{ID: "q3_moderate", Text: "2-3 hours per week for my goals", Value: 7,
						GoalWeights: map[GoalTag]int{GoalHealth: 6, GoalFitness: 7, GoalLearning: 7, GoalCareer: 5, GoalMindfulness: 7, GoalRelationships: 6, GoalFinancial: 5, GoalCreative: 7, GoalPersonalGrowth: 6, GoalSpirituality: 7}},
					{ID: "q3_serious", Text: "5+ hours per week, I'm serious about this", Value: 9,
						GoalWeights: map[GoalTag]int{GoalHealth: 9, GoalFitness: 9, GoalLearning: 9, GoalCareer: 9, GoalMindfulness: 8, GoalRelationships: 7, GoalFinancial: 8, GoalCreative: 9, GoalPersonalGrowth: 9, GoalSpirituality: 8}},
					{ID: "q3_obsessed", Text: "This is my top priority, 10+ hours weekly", Value: 10,
						GoalWeights: map[GoalTag]int{GoalHealth: 10, GoalFitness: 10, GoalLearning: 10, GoalCareer: 10, GoalMindfulness: 9, GoalRelationships: 8, GoalFinancial: 9, GoalCreative: 10, GoalPersonalGrowth: 10, GoalSpirituality: 9}},
				},
			},
			{
				ID:          "q4",
				Order:       4,
				Prompt:      "How do you learn best?",
				Description: "Understanding your learning style helps match you with similar people",
				Type:        SingleChoice,
				Category:    "learning_style",
				Required:    true,
				Options: []Option{
					{ID: "q4_visual", Text: "Visual (charts, diagrams, videos, infographics)", Value: 8,
						GoalWeights: map[GoalTag]int{GoalLearning: 8, GoalCreative: 7}},
					{ID: "q4_auditory", Text: "Auditory (podcasts, discussions, lectures)", Value: 8,
						GoalWeights: map[GoalTag]int{GoalLearning: 8, GoalRelationships: 6}},
					{ID: "q4_reading", Text: "Reading & writing (books, articles, notes)", Value: 8,
						GoalWeights: map[GoalTag]int{GoalLearning: 9, GoalCreative: 6}},
					{ID: "q4_kinesthetic", Text: "Kinesthetic (hands-on, practice, doing)", Value: 8,
						GoalWeights: map[GoalTag]int{GoalFitness: 8, GoalLearning: 8, GoalCreative: 7}},
					{ID: "q4_mixed", Text: "Mixed (combination of all styles)", Value: 7,
						GoalWeights: map[GoalTag]int{GoalLearning: 7, GoalPersonalGrowth: 7}},
				},
			},
			{
				ID:          "q5",
				Order:       5,
				Prompt:      "What's your preferred way to engage with a community?",
				Description: "How do you like to interact with others?",
				Type:        SingleChoice,
				Category:    "community_style",
				Required:    true,
				Options: []Option{
					{ID: "q5_observe", Text: "I like to observe and learn from others", Value: 6,
						GoalWeights: map[GoalTag]int{GoalLearning: 8, GoalMindfulness: 6}},
					{ID: "q5_share", Text: "I prefer sharing my knowledge and helping others", Value: 8,
						GoalWeights: map[GoalTag]int{GoalRelationships: 8, GoalCareer: 6, GoalPersonalGrowth: 7}},
					{ID: "q5_discuss", Text: "I enjoy in-depth discussions and debates", Value: 8,
						GoalWeights: map[GoalTag]int{GoalLearning: 8, GoalRelationships: 7}},
					{ID: "q5_accountability", Text: "I need accountability and regular check-ins", Value: 8,
						GoalWeights: map[GoalTag]int{GoalFitness: 7, GoalRelationships: 8, GoalPersonalGrowth: 8}},
					{ID: "q5_solo", Text: "I'm more of a solo learner but like periodic tips", Value: 5,
						GoalWeights: map[GoalTag]int{GoalLearning: 6, GoalMindfulness: 7}},
				},
			},
			{
				ID:          "q6",
				Order:       6,
				Prompt:      "How do you approach goals?",
				Description: "Your planning style",
				Type:        SingleChoice,
				Category:    "planning_style",
				Required:    true,
				Options: []Option{
					{ID: "q6_planner", Text: "I'm a planner - detailed roadmap, milestones, tracking", Value: 8,
						GoalWeights: map[GoalTag]int{GoalCareer: 8, GoalLearning: 7, GoalPersonalGrowth: 8}},
					{ID: "q6_hybrid", Text: "Hybrid - some planning, but flexible and adaptable", Value: 7,
						GoalWeights: map[GoalTag]int{GoalLearning: 7, GoalPersonalGrowth: 7, GoalMindfulness: 6}},
					{ID: "q6_spontaneous", Text: "Spontaneous - I adapt as I go, no rigid plans", Value: 6,
						GoalWeights: map[GoalTag]int{GoalCreative: 8, GoalPersonalGrowth: 6}},
				},
			},
			{
				ID:          "q7",
				Order:       7,
				Prompt:      "What motivates you most?",
				Description: "Your primary driver",
				Type:        SingleChoice,
				Category:    "motivation",
				Required:    true,
				Options: []Option{
					{ID: "q7_achievement", Text: "Achieving goals and seeing measurable progress", Value: 9,
						GoalWeights: map[GoalTag]int{GoalCareer: 8, GoalFitness: 8, GoalLearning: 8, GoalPersonalGrowth: 8}},
					{ID: "q7_community", Text: "Community support and accountability", Value: 8,
						GoalWeights: map[GoalTag]int{GoalRelationships: 9, GoalFitness: 7, GoalHealth: 7, GoalPersonalGrowth: 7}},
					{ID: "q7_growth", Text: "Personal growth and self-improvement", Value: 8,
						GoalWeights: map[GoalTag]int{GoalPersonalGrowth: 10, GoalLearning: 8, GoalMindfulness: 7}},
					{ID: "q7_purpose", Text: "Finding purpose and deeper meaning", Value: 8,
						GoalWeights: map[GoalTag]int{GoalSpirituality: 10, GoalMindfulness: 8, GoalPersonalGrowth: 9}},
					{ID: "q7_autonomy", Text: "Independence and doing things my way", Value: 7,
						GoalWeights: map[GoalTag]int{GoalCreative: 8, GoalLearning: 7, GoalCareer: 7}},
				},
			},
			{
				ID:          "q8",
				Order:       8,
				Prompt:      "How do you typically handle challenges?",
				Description: "Your resilience approach",
				Type:        SingleChoice,
				Category:    "resilience",
				Required:    true,
				Options: []Option{
					{ID: "q8_analytical", Text: "Analyze, problem-solve, find logical solutions", Value: 8,
						GoalWeights: map[GoalTag]int{GoalLearning: 8, GoalCareer: 8}},
					{ID: "q8_supportive", Text: "Seek advice from mentors or community", Value: 8,
						GoalWeights: map[GoalTag]int{GoalRelationships: 9, GoalPersonalGrowth: 8}},
					{ID: "q8_mindful", Text: "Take a step back, meditate, find perspective", Value: 8,
						GoalWeights: map[GoalTag]int{GoalMindfulness: 9, GoalSpirituality: 8}},
					{ID: "q8_action", Text: "Push through with determination and action", Value: 8,
						GoalWeights: map[GoalTag]int{GoalFitness: 8, GoalCareer: 8, GoalPersonalGrowth: 8}},
				},
			},
			{
				ID:          "q9",
				Order:       9,
				Prompt:      "Are you more introverted or extroverted?",
				Description: "Your social energy preference",
				Type:        SingleChoice,
				Category:    "personality",
				Required:    true,
				Options: []Option{
					{ID: "q9_introvert", Text: "Introvert - I recharge alone, one-on-one conversations", Value: 6,
						GoalWeights: map[GoalTag]int{GoalLearning: 7, GoalMindfulness: 7, GoalCreative: 7}},
					{ID: "q9_ambivert", Text: "Ambivert - I enjoy both social and alone time equally", Value: 7,
						GoalWeights: map[GoalTag]int{GoalPersonalGrowth: 8, GoalLearning: 7, GoalRelationships: 7}},
					{ID: "q9_extrovert", Text: "Extrovert - I thrive in group settings and discussions", Value: 8,
						GoalWeights: map[GoalTag]int{GoalRelationships: 9, GoalFitness: 7, GoalLearning: 7, GoalCareer: 7}},
				},
			},
			{
				ID:          "q10",
				Order:       10,
				Prompt:      "What's your attention to detail level?",
				Description: "Big picture vs. fine details",
				Type:        SingleChoice,
				Category:    "detail_orientation",
				Required:    true,
				Options: []Option{
					{ID: "q10_details", Text: "Detail-oriented - precision and accuracy matter", Value: 7,
						GoalWeights: map[GoalTag]int{GoalLearning: 8, GoalCareer: 8, GoalFinancial: 8}},
					{ID: "q10_balanced", Text: "Balanced - I focus on important details, not everything", Value: 7,
						GoalWeights: map[GoalTag]int{GoalPersonalGrowth: 8, GoalLearning: 7, GoalCareer: 7}},
					{ID: "q10_big_picture", Text: "Big picture - I focus on overall vision and strategy", Value: 7,
						GoalWeights: map[GoalTag]int{GoalCreative: 8, GoalSpirituality: 7, GoalPersonalGrowth: 8}},
				},
			},
			{
				ID:          "q11",
				Order:       11,
				Prompt:      "What's your experience level in your primary interest?",
				Description: "Be realistic about where you're starting from",
				Type:        SingleChoice,
				Category:    "experience",
				Required:    true,
				Options: []Option{
					{ID: "q11_beginner", Text: "Complete beginner - just starting out", Value: 8,
						GoalWeights: map[GoalTag]int{GoalLearning: 9, GoalHealth: 8, GoalFitness: 8, GoalMindfulness: 8, GoalCreative: 8, GoalPersonalGrowth: 9}},
					{ID: "q11_intermediate", Text: "Some experience - I've made progress", Value: 8,
						GoalWeights: map[GoalTag]int{GoalLearning: 8, GoalFitness: 8, GoalCareer: 7, GoalPersonalGrowth: 8}},
					{ID: "q11_advanced", Text: "Advanced - I'm quite experienced", Value: 7,
						GoalWeights: map[GoalTag]int{GoalCareer: 9, GoalLearning: 7, GoalCreative: 8}},
				},
			},
			{
				ID:          "q12",
				Order:       12,
				Prompt:      "How long have you been working on your primary goal?",
				Description: "Your journey timeline",
				Type:        SingleChoice,
				Category:    "goal_history",
				Required:    true,
				Options: []Option{
					{ID: "q12_new", Text: "This is new for me (less than 1 month)", Value: 8,
						GoalWeights: map[GoalTag]int{GoalLearning: 8, GoalPersonalGrowth: 8}},
					{ID: "q12_growing", Text: "I've been at it for 1-6 months", Value: 8,
						GoalWeights: map[GoalTag]int{GoalFitness: 8, GoalLearning: 7, GoalPersonalGrowth: 8}},
					{ID: "q12_established", Text: "I've been consistent for 6+ months", Value: 8,
						GoalWeights: map[GoalTag]int{GoalCareer: 8, GoalFitness: 8, GoalHealth: 8}},
				},
			},
			{
				ID:          "q13",
				Order:       13,
				Prompt:      "How do you measure success?",
				Description: "What counts as progress to you?",
				Type:        SingleChoice,
				Category:    "success_metrics",
				Required:    true,
				Options: []Option{
					{ID: "q13_numbers", Text: "Quantifiable metrics (pounds lost, hours logged, money earned)", Value: 8,
						GoalWeights: map[GoalTag]int{GoalFitness: 8, GoalFinancial: 9, GoalCareer: 8}},
					{ID: "q13_feeling", Text: "How I feel (energy, confidence, peace of mind)", Value: 8,
						GoalWeights: map[GoalTag]int{GoalHealth: 8, GoalMindfulness: 9, GoalPersonalGrowth: 8}},
					{ID: "q13_impact", Text: "Impact on others (helping, inspiring, contributing)", Value: 8,
						GoalWeights: map[GoalTag]int{GoalRelationships: 9, GoalCareer: 7, GoalPersonalGrowth: 8}},
					{ID: "q13_progress", Text: "Personal growth (learning, improving, evolving)", Value: 8,
						GoalWeights: map[GoalTag]int{GoalPersonalGrowth: 10, GoalLearning: 9, GoalCreative: 8}},
				},
			},
			{
				ID:          "q14",
				Order:       14,
				Prompt:      "What's your current life situation?",
				Description: "Helps match you with people in similar phases",
				Type:        SingleChoice,
				Category:    "life_phase",
				Required:    true,
				Options: []Option{
					{ID: "q14_student", Text: "Student or early career", Value: 6,
						GoalWeights: map[GoalTag]int{GoalLearning: 9, GoalCareer: 7, GoalPersonalGrowth: 8}},
					{ID: "q14_employed", Text: "Employed full-time/part-time", Value: 7,
						GoalWeights: map[GoalTag]int{GoalCareer: 8, GoalHealth: 7, GoalFinancial: 8}},
					{ID: "q14_parent", Text: "Parent or caregiver", Value: 6,
						GoalWeights: map[GoalTag]int{GoalHealth: 7, GoalRelationships: 8, GoalPersonalGrowth: 7}},
					{ID: "q14_entrepreneur", Text: "Entrepreneur or self-employed", Value: 7,
						GoalWeights: map[GoalTag]int{GoalCareer: 9, GoalFinancial: 8, GoalLearning: 8}},
					{ID: "q14_retired", Text: "Retired or transitioning", Value: 6,
						GoalWeights: map[GoalTag]int{GoalMindfulness: 8, GoalSpirituality: 8, GoalCreative: 7, GoalPersonalGrowth: 8}},
				},
			},
			{
				ID:          "q15",
				Order:       15,
				Prompt:      "What's your biggest challenge right now?",
				Description: "Understanding your pain point helps find the right tribe",
				Type:        SingleChoice,
				Category:    "challenge",
				Required:    true,
				Options: []Option{
					{ID: "q15_motivation", Text: "Staying motivated and consistent", Value: 8,
						GoalWeights: map[GoalTag]int{GoalRelationships: 8, GoalMindfulness: 6, GoalPersonalGrowth: 9}},
					{ID: "q15_knowledge", Text: "Lack of knowledge or guidance", Value: 8,
						GoalWeights: map[GoalTag]int{GoalLearning: 10, GoalCareer: 8}},
					{ID: "q15_time", Text: "Time management and finding time", Value: 7,
						GoalWeights: map[GoalTag]int{GoalMindfulness: 7, GoalPersonalGrowth: 8}},
					{ID: "q15_support", Text: "Lack of support or accountability", Value: 8,
						GoalWeights: map[GoalTag]int{GoalRelationships: 10, GoalFitness: 8, GoalHealth: 7}},
					{ID: "q15_balance", Text: "Work-life balance and burnout", Value: 8,
						GoalWeights: map[GoalTag]int{GoalMindfulness: 9, GoalHealth: 8, GoalRelationships: 7}},
				},
			},
			{
				ID:          "q16",
				Order:       16,
				Prompt:      "How do you prefer to receive feedback?",
				Description: "Your feedback preference",
				Type:        SingleChoice,
				Category:    "feedback_style",
				Required:    true,
				Options: []Option{
					{ID: "q16_direct", Text: "Direct and honest, no sugar-coating", Value: 8,
						GoalWeights: map[GoalTag]int{GoalCareer: 8, GoalLearning: 7}},
					{ID: "q16_supportive", Text: "Supportive with constructive criticism", Value: 8,
						GoalWeights: map[GoalTag]int{GoalRelationships: 8, GoalPersonalGrowth: 8}},
					{ID: "q16_light", Text: "Light and encouraging, focus on wins", Value: 7,
						GoalWeights: map[GoalTag]int{GoalFitness: 7, GoalHealth: 7, GoalMindfulness: 7}},
					{ID: "q16_mentor", Text: "One-on-one mentorship and guidance", Value: 8,
						GoalWeights: map[GoalTag]int{GoalLearning: 8, GoalCareer: 9, GoalPersonalGrowth: 8}},
				},
			},
			{
				ID:          "q17",
				Order:       17,
				Prompt:      "Which value resonates most with you?",
				Description: "Your core value",
				Type:        SingleChoice,
				Category:    "core_values",
				Required:    true,
				Options: []Option{
					{ID: "q17_excellence", Text: "Excellence and continuous improvement", Value: 8,
						GoalWeights: map[GoalTag]int{GoalCareer: 9, GoalFitness: 8, GoalLearning: 9, GoalCreative: 8}},
					{ID: "q17_community", Text: "Community and connection", Value: 8,
						GoalWeights: map[GoalTag]int{GoalRelationships: 10, GoalFitness: 7, GoalPersonalGrowth: 8}},
					{ID: "q17_wellness", Text: "Wellness and balance", Value: 8,
						GoalWeights: map[GoalTag]int{GoalHealth: 9, GoalMindfulness: 9, GoalPersonalGrowth: 8}},
					{ID: "q17_autonomy", Text: "Freedom and independence", Value: 8,
						GoalWeights: map[GoalTag]int{GoalCreative: 9, GoalCareer: 8, GoalFinancial: 7}},
					{ID: "q17_purpose", Text: "Purpose and meaning", Value: 8,
						GoalWeights: map[GoalTag]int{GoalSpirituality: 10, GoalMindfulness: 8, GoalPersonalGrowth: 9}},
				},
			},
			{
				ID:          "q18",
				Order:       18,
				Prompt:      "What would make the perfect tribe for you?",
				Description: "Your ideal tribe characteristics",
				Type:        MultipleChoice,
				Category:    "ideal_tribe",
				Required:    true,
				Options: []Option{
					{ID: "q18_active", Text: "Very active community (daily posts and discussions)", Value: 7,
						GoalWeights: map[GoalTag]int{GoalRelationships: 8, GoalFitness: 7, GoalLearning: 7}},
					{ID: "q18_supportive", Text: "Deeply supportive and encouraging", Value: 8,
						GoalWeights: map[GoalTag]int{GoalRelationships: 9, GoalHealth: 8, GoalMindfulness: 8, GoalPersonalGrowth: 8}},
					{ID: "q18_expert", Text: "Led by experts and experienced mentors", Value: 8,
						GoalWeights: map[GoalTag]int{GoalLearning: 9, GoalCareer: 9}},
					{ID: "q18_accountability", Text: "Strong accountability and tracking systems", Value: 8,
						GoalWeights: map[GoalTag]int{GoalFitness: 8, GoalCareer: 7, GoalPersonalGrowth: 8}},
					{ID: "q18_diverse", Text: "Diverse backgrounds and perspectives", Value: 7,
						GoalWeights: map[GoalTag]int{GoalLearning: 8, GoalRelationships: 7, GoalCreative: 8}},
					{ID: "q18_smallniche", Text: "Small and niche with like-minded people", Value: 7,
						GoalWeights: map[GoalTag]int{GoalCreative: 8, GoalSpirituality: 8, GoalPersonalGrowth: 8}},
					{ID: "q18_flexible", Text: "Flexible with no rigid structure", Value: 6,
						GoalWeights: map[GoalTag]int{GoalCreative: 7, GoalMindfulness: 6}},
				},
			},
		},
	}
}
