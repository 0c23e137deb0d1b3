// Package quiz defines the tribe-matching quiz catalogue: questions, options
// and the per-option goal weights the matching engine consumes. The catalogue
// is plain immutable data; it is passed explicitly to the engine rather than
// read from a global.
package quiz

// GoalTag is one of the ten fixed life-goal categories. Tribes carry exactly
// one, and quiz options weight their contribution per goal.
type GoalTag string

const (
	GoalHealth         GoalTag = "health"
	GoalFitness        GoalTag = "fitness"
	GoalLearning       GoalTag = "learning"
	GoalCareer         GoalTag = "career"
	GoalMindfulness    GoalTag = "mindfulness"
	GoalRelationships  GoalTag = "relationships"
	GoalFinancial      GoalTag = "financial"
	GoalCreative       GoalTag = "creative"
	GoalPersonalGrowth GoalTag = "personal_growth"
	GoalSpirituality   GoalTag = "spirituality"
)

// AllGoals lists every GoalTag in a stable order.
var AllGoals = []GoalTag{
	GoalHealth,
	GoalFitness,
	GoalLearning,
	GoalCareer,
	GoalMindfulness,
	GoalRelationships,
	GoalFinancial,
	GoalCreative,
	GoalPersonalGrowth,
	GoalSpirituality,
}

// Valid reports whether g is one of the ten known goals.
func (g GoalTag) Valid() bool {
	for _, tag := range AllGoals {
		if g == tag {
			return true
		}
	}
	return false
}

// AnswerType describes how a question is answered.
type AnswerType string

const (
	SingleChoice   AnswerType = "single_choice"
	MultipleChoice AnswerType = "multiple_choice"
	Scale          AnswerType = "scale"
	Text           AnswerType = "text"
)

// Option is one selectable answer. Value is the raw answer score on a 0-10
// scale. GoalWeights is sparse: goals without an entry contribute zero.
type Option struct {
	ID          string          `json:"id"`
	Text        string          `json:"text"`
	Value       int             `json:"value"`
	GoalWeights map[GoalTag]int `json:"goalWeights,omitempty"`
}

// Weight returns the option's weight for a goal, zero when absent.
func (o Option) Weight(goal GoalTag) int {
	return o.GoalWeights[goal]
}

// Question is one quiz question with its ordered options.
type Question struct {
	ID          string     `json:"id"`
	Order       int        `json:"order"`
	Prompt      string     `json:"question"`
	Description string     `json:"description,omitempty"`
	Type        AnswerType `json:"type"`
	Category    string     `json:"category"`
	Required    bool       `json:"isRequired"`
	Options     []Option   `json:"options,omitempty"`
}

// Option returns the option with the given id, or false when unknown.
func (q Question) Option(id string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Catalog is an ordered, read-only set of quiz questions. Callers load one
// (usually DefaultCatalog) and thread it through the engine functions.
type Catalog struct {
	Version              int        `json:"version"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	EstimatedTimeMinutes int        `json:"estimatedTimeMinutes"`
	Questions            []Question `json:"questions"`
}

// Question returns the question with the given id, or false when unknown.
func (c Catalog) Question(id string) (Question, bool) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
