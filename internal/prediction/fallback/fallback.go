// Package fallback builds the degraded-mode results served when the
// inference service cannot be reached or rejects a request. Every scenario
// yields a complete PredictionResult: neutral level and score, insights
// explaining why a fallback was served, and a small wellness plan pointing
// at features that work without the remote service.
package fallback

import (
	"sort"

	"github.com/pulseai/gateway/internal/core/domain"
)

const (
	fallbackLevel      = domain.LevelMedium
	fallbackScore      = 50
	fallbackConfidence = 0.5
	fallbackModelName  = "Fallback Response"

	// Validation fallbacks fold at most this many field errors into insights.
	maxFieldInsights = 3
)

// Offline is served when the host itself has no network connectivity.
func Offline() domain.PredictionResult {
	return build(
		[]string{
			"You appear to be offline, so we could not run a personalized analysis.",
			"This is a neutral baseline assessment; submit again once you are back online.",
		},
		[]string{
			"Reconnect to the internet and resubmit your assessment.",
			"In the meantime, basic wellness practices below still apply.",
		},
	)
}

// ServiceUnavailable is served when the health belief says the service is
// down and the call was skipped entirely.
func ServiceUnavailable() domain.PredictionResult {
	return build(
		[]string{
			"Our analysis service is temporarily unavailable, so this is a baseline assessment.",
			"We check the service regularly and will use it again as soon as it recovers.",
		},
		[]string{
			"Try again in a few minutes for a personalized assessment.",
			"Keep up your regular sleep and exercise routines meanwhile.",
		},
	)
}

// NetworkError is served after connection or timeout failures exhausted
// their retries.
func NetworkError() domain.PredictionResult {
	return build(
		[]string{
			"We could not reach the analysis service because of a network problem.",
			"Your answers were not lost; resubmitting later will run the full analysis.",
		},
		[]string{
			"Check your connection and try again shortly.",
			"Use the breathing tool below while you wait.",
		},
	)
}

// ServerError is served when the service answered but failed.
func ServerError() domain.PredictionResult {
	return build(
		[]string{
			"The analysis service hit an internal error while processing your assessment.",
			"We served a neutral baseline instead; please try again in a few minutes.",
		},
		[]string{
			"Resubmit your assessment later for personalized results.",
			"Focus on the basic wellness tasks below for now.",
		},
	)
}

// ValidationError is served when local checks (or the service's own
// validation) rejected the input. Up to three field messages are folded
// into the insights so the user sees what to fix.
func ValidationError(fieldErrors map[string]string) domain.PredictionResult {
	insights := []string{
		"Some of your answers were outside the ranges we can analyze.",
	}

	fields := make([]string, 0, len(fieldErrors))
	for f := range fieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for i, f := range fields {
		if i == maxFieldInsights {
			break
		}
		insights = append(insights, fieldErrors[f])
	}

	return build(
		insights,
		[]string{
			"Correct the highlighted answers and submit again.",
			"All values should reflect a typical day.",
		},
	)
}

// Generic covers everything else, including malformed service responses.
func Generic() domain.PredictionResult {
	return build(
		[]string{
			"We're experiencing technical difficulties with our analysis.",
			"Please try again in a few minutes for a personalized assessment.",
		},
		[]string{
			"Focus on basic wellness practices.",
			"Maintain regular sleep and exercise routines.",
		},
	)
}

func build(insights, recommendations []string) domain.PredictionResult {
	return domain.PredictionResult{
		Level:           fallbackLevel,
		Score:           fallbackScore,
		Confidence:      fallbackConfidence,
		Insights:        insights,
		Recommendations: recommendations,
		WellnessPlan:    basicPlan(),
		ModelName:       fallbackModelName,
	}
}

// basicPlan points at app features that work without the remote service.
func basicPlan() domain.WellnessPlan {
	return domain.WellnessPlan{
		Title:   "Basic Wellness Plan",
		Summary: "General wellness recommendations while personalized analysis is unavailable.",
		Tasks: []domain.WellnessTask{
			{
				ID:     "fallback-1",
				Title:  "Practice Deep Breathing",
				Type:   domain.TaskTool,
				Link:   "/tools/breathing",
				Reward: 10,
			},
			{
				ID:     "fallback-2",
				Title:  "Take a Short Walk",
				Type:   domain.TaskLifestyle,
				Link:   "/wellness/walking",
				Reward: 10,
			},
			{
				ID:     "fallback-3",
				Title:  "Read: Managing Everyday Stress",
				Type:   domain.TaskArticle,
				Link:   "/articles/managing-everyday-stress",
				Reward: 5,
			},
		},
	}
}
