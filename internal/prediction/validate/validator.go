// Package validate checks assessment inputs against the bounds the remote
// model was trained on, before any network call is made.
package validate

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pulseai/gateway/internal/core/domain"
)

// Validate checks every field of the input and returns a field → message
// map. An empty map means the input is valid. It is pure and never fails:
// cross-field rules produce a single synthetic "general" entry.
func Validate(input domain.AssessmentInput) map[string]string {
	errs := make(map[string]string)

	numeric := numericValues(input)
	for _, r := range NumericRanges {
		v := numeric[r.Field]
		if v < r.Min || v > r.Max {
			errs[r.Field] = rangeMessage(r)
		}
	}

	categorical := categoricalValues(input)
	for _, s := range CategoricalSets {
		if !slices.Contains(s.Values, categorical[s.Field]) {
			errs[s.Field] = fmt.Sprintf("%s must be one of: %s", s.Label, strings.Join(s.Values, ", "))
		}
	}

	// A day only has 24 hours. The screen-time rule is weaker and must not
	// overwrite the time-allocation error.
	total := input.WorkHours + input.SleepDuration + input.TravelTime
	if total > 24 {
		errs["general"] = fmt.Sprintf(
			"Total time allocation (work: %sh, sleep: %sh, travel: %sh) exceeds 24 hours per day (total: %sh)",
			num(input.WorkHours), num(input.SleepDuration), num(input.TravelTime), num(total),
		)
	} else if input.ScreenTime > input.WorkHours+6 {
		errs["general"] = fmt.Sprintf(
			"Screen time (%sh) significantly exceeds work hours (%sh)",
			num(input.ScreenTime), num(input.WorkHours),
		)
	}

	return errs
}

func rangeMessage(r Range) string {
	msg := fmt.Sprintf("%s must be between %s and %s", r.Label, num(r.Min), num(r.Max))
	if r.Unit != "" {
		msg += " " + r.Unit
	}
	return msg
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func numericValues(input domain.AssessmentInput) map[string]float64 {
	return map[string]float64{
		"age":                float64(input.Age),
		"sleepDuration":      input.SleepDuration,
		"sleepQuality":       float64(input.SleepQuality),
		"physicalActivity":   float64(input.PhysicalActivity),
		"screenTime":         input.ScreenTime,
		"caffeineIntake":     float64(input.CaffeineIntake),
		"workHours":          input.WorkHours,
		"travelTime":         input.TravelTime,
		"socialInteractions": float64(input.SocialInteractions),
	}
}

func categoricalValues(input domain.AssessmentInput) map[string]string {
	return map[string]string{
		"gender":             input.Gender,
		"smokingHabit":       input.SmokingHabit,
		"meditationPractice": input.MeditationPractice,
		"exerciseType":       input.ExerciseType,
	}
}
