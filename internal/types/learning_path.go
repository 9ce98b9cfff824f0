package types

// Confidence is the model's self-reported certainty about a recommendation.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Valid reports whether c is one of the declared confidence levels.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// NsqfStep is one mapped step of a learning path.
type NsqfStep struct {
	Step          string  `json:"step"`
	NsqfLevel     FlexInt `json:"nsqf_level"`
	CourseID      string  `json:"course_id"`
	Provider      string  `json:"provider"`
	DurationWeeks FlexInt `json:"duration_weeks"`
	CostINR       FlexInt `json:"cost_inr"`
}

// SkillGap describes one skill the learner must close.
type SkillGap struct {
	Skill             string `json:"skill"`
	CurrentLevel      string `json:"current_level"`
	RequiredLevel     string `json:"required_level"`
	RecommendedAction string `json:"recommended_action"`
}

// LabourMarketSignals is the labour-market context attached to a path.
// Demand index is 0-100; salary is annual INR.
type LabourMarketSignals struct {
	DemandIndex  FlexInt  `json:"demand_index"`
	AvgSalaryINR FlexInt  `json:"avg_salary_inr"`
	TopLocations []string `json:"top_locations"`
	SampleJobs   []string `json:"sample_jobs,omitempty"`
}

// NextAction is one suggested follow-up, bound to a step by index.
type NextAction struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Label string `json:"label"`
}

// LearningPath is the validated model output for a generation request.
// The UI binds to these field names positionally; explainability[i] and
// next_actions[i] describe nsqf_mapping[i] and must never be reordered
// independently.
type LearningPath struct {
	UserID              string              `json:"user_id"`
	Timestamp           string              `json:"timestamp"`
	CareerGoal          string              `json:"career_goal"`
	CareerMatchScore    FlexInt             `json:"career_match_score"`
	NsqfMapping         []NsqfStep          `json:"nsqf_mapping"`
	SkillGap            []SkillGap          `json:"skill_gap"`
	AlternativePaths    []string            `json:"alternative_paths"`
	LabourMarketSignals LabourMarketSignals `json:"labour_market_signals"`
	Confidence          Confidence          `json:"confidence"`
	Explainability      []string            `json:"explainability"`
	NextActions         []NextAction        `json:"next_actions"`
	SummaryEN           string              `json:"summary_en"`
	SummaryHI           string              `json:"summary_hi"`
}

// PathSummary is the standalone bilingual summarization output.
type PathSummary struct {
	EnglishSummary string `json:"english_summary"`
	HindiSummary   string `json:"hindi_summary"`
}

// CourseExplanation is the output of the explanation task.
type CourseExplanation struct {
	Explanation string `json:"explanation"`
}
