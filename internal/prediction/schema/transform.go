// Package schema maps assessment inputs to the inference service's wire
// shape and wire responses back to domain results. The service's response
// schema has drifted over time, so the reverse transform accepts either of
// two field-naming conventions and normalizes to one.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/pulseai/gateway/internal/core/domain"
)

// Defaults substituted when the service omits optional list fields. The
// result contract guarantees these are never empty or absent.
var (
	defaultInsights        = []string{"Your assessment was processed successfully."}
	defaultRecommendations = []string{"Keep up your current wellness routine."}
)

// ToWire renames the 13 input fields to the wire convention. Pure copy, no
// value transformation, no loss.
func ToWire(input domain.AssessmentInput) WireRequest {
	return WireRequest{
		Age:                input.Age,
		Gender:             input.Gender,
		SleepDuration:      input.SleepDuration,
		SleepQuality:       input.SleepQuality,
		PhysicalActivity:   input.PhysicalActivity,
		ScreenTime:         input.ScreenTime,
		CaffeineIntake:     input.CaffeineIntake,
		SmokingHabit:       input.SmokingHabit,
		WorkHours:          input.WorkHours,
		TravelTime:         input.TravelTime,
		SocialInteractions: input.SocialInteractions,
		MeditationPractice: input.MeditationPractice,
		ExerciseType:       input.ExerciseType,
	}
}

// FromWire decodes a success body into a PredictionResult. A body without a
// level, with a non-numeric score, or with a level outside the known set is
// malformed: a schema mismatch must surface as an unknown-kind failure, not
// degrade silently into a default level.
func FromWire(body []byte) (domain.PredictionResult, error) {
	var raw wireResult
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.PredictionResult{}, domain.NewUnknownError("malformed prediction response", err)
	}

	if raw.Level == "" {
		return domain.PredictionResult{}, domain.NewUnknownError("prediction response missing level", nil)
	}
	if !domain.ValidLevel(raw.Level) {
		return domain.PredictionResult{}, domain.NewUnknownError(
			fmt.Sprintf("prediction response has unrecognized level %q", raw.Level), nil)
	}
	if raw.Score == nil {
		return domain.PredictionResult{}, domain.NewUnknownError("prediction response missing numeric score", nil)
	}

	result := domain.PredictionResult{
		Level:           domain.StressLevel(raw.Level),
		Score:           int(*raw.Score),
		Confidence:      raw.Confidence,
		Insights:        raw.Insights,
		Recommendations: raw.Recommendations,
		WellnessPlan:    pickPlan(raw),
		ModelName:       firstNonEmpty(raw.ModelNameCamel, raw.ModelNameSnake),
		ModelScore:      firstScore(raw.ModelScoreCamel, raw.ModelScoreSnake),
	}

	if len(result.Insights) == 0 {
		result.Insights = defaultInsights
	}
	if len(result.Recommendations) == 0 {
		result.Recommendations = defaultRecommendations
	}

	return result, nil
}

// pickPlan prefers the camelCase spelling, falls back to snake_case, and
// synthesizes a minimal plan when the service sent neither. A present plan
// with zero tasks keeps its empty task list.
func pickPlan(raw wireResult) domain.WellnessPlan {
	src := raw.PlanCamel
	if src == nil {
		src = raw.PlanSnake
	}
	if src == nil {
		return domain.WellnessPlan{
			Title:   "Wellness Plan",
			Summary: "General wellness recommendations based on your assessment.",
			Tasks:   []domain.WellnessTask{},
		}
	}

	tasks := make([]domain.WellnessTask, 0, len(src.Tasks))
	for _, t := range src.Tasks {
		tasks = append(tasks, domain.WellnessTask{
			ID:     t.ID,
			Title:  t.Title,
			Type:   domain.TaskType(t.Type),
			Link:   t.Link,
			Reward: t.Reward,
		})
	}

	return domain.WellnessPlan{
		Title:   src.Title,
		Summary: src.Summary,
		Tasks:   tasks,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstScore(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
