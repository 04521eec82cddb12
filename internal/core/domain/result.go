package domain

// StressLevel is the categorical outcome of an assessment.
type StressLevel string

const (
	LevelLow    StressLevel = "Low"
	LevelMedium StressLevel = "Medium"
	LevelHigh   StressLevel = "High"
)

// ValidLevel reports whether s is one of the known stress levels.
func ValidLevel(s string) bool {
	switch StressLevel(s) {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// TaskType categorizes a wellness task by the app feature it points at.
type TaskType string

const (
	TaskArticle   TaskType = "article"
	TaskTool      TaskType = "tool"
	TaskLifestyle TaskType = "lifestyle"
)

// WellnessTask is a single actionable item inside a wellness plan.
type WellnessTask struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Type   TaskType `json:"type"`
	Link   string   `json:"link"`
	Reward int      `json:"reward"`
}

// WellnessPlan groups tasks under a title and summary. A result always
// carries a plan; Tasks may be empty but the plan itself is never nil.
type WellnessPlan struct {
	Title   string         `json:"title"`
	Summary string         `json:"summary"`
	Tasks   []WellnessTask `json:"tasks"`
}

// PredictionResult is what the prediction client hands back to the app.
// It is structurally complete in every code path: real predictions and
// degraded-mode fallbacks share the same shape, so callers never branch
// on failure or null-check the plan.
type PredictionResult struct {
	Level           StressLevel  `json:"level"`
	Score           int          `json:"score"`
	Confidence      float64      `json:"confidence"`
	Insights        []string     `json:"insights"`
	Recommendations []string     `json:"recommendations"`
	WellnessPlan    WellnessPlan `json:"wellnessPlan"`
	ModelName       string       `json:"modelName,omitempty"`
	ModelScore      *float64     `json:"modelScore,omitempty"`
}
