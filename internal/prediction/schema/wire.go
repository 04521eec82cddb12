package schema

// WireRequest is the request shape the inference service expects: the same
// 13 assessment fields under their snake_case wire names. It has no identity
// of its own and is derived deterministically from an AssessmentInput.
type WireRequest struct {
	Age                int     `json:"age"`
	Gender             string  `json:"gender"`
	SleepDuration      float64 `json:"sleep_duration"`
	SleepQuality       int     `json:"sleep_quality"`
	PhysicalActivity   int     `json:"physical_activity"`
	ScreenTime         float64 `json:"screen_time"`
	CaffeineIntake     int     `json:"caffeine_intake"`
	SmokingHabit       string  `json:"smoking_habit"`
	WorkHours          float64 `json:"work_hours"`
	TravelTime         float64 `json:"travel_time"`
	SocialInteractions int     `json:"social_interactions"`
	MeditationPractice string  `json:"meditation_practice"`
	ExerciseType       string  `json:"exercise_type"`
}

// wireTask and wirePlan mirror the service's wellness plan JSON.
type wireTask struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Type   string `json:"type"`
	Link   string `json:"link"`
	Reward int    `json:"reward"`
}

type wirePlan struct {
	Title   string     `json:"title"`
	Summary string     `json:"summary"`
	Tasks   []wireTask `json:"tasks"`
}

// wireResult tolerates both field-naming conventions the service has used
// for the plan and model metadata. Decoding keeps both spellings and the
// transform picks them in order of preference.
type wireResult struct {
	Level           string   `json:"level"`
	Score           *float64 `json:"score"`
	Confidence      float64  `json:"confidence"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`

	PlanCamel *wirePlan `json:"wellnessPlan"`
	PlanSnake *wirePlan `json:"wellness_plan"`

	ModelNameCamel string `json:"modelName"`
	ModelNameSnake string `json:"model_name"`

	ModelScoreCamel *float64 `json:"modelScore"`
	ModelScoreSnake *float64 `json:"model_score"`
}
