package fallback

import (
	"strings"
	"testing"

	"github.com/pulseai/gateway/internal/core/domain"
)

func TestAllScenariosAreComplete(t *testing.T) {
	scenarios := map[string]domain.PredictionResult{
		"offline":             Offline(),
		"service_unavailable": ServiceUnavailable(),
		"network":             NetworkError(),
		"server":              ServerError(),
		"validation":          ValidationError(map[string]string{"age": "Age must be between 18 and 65"}),
		"generic":             Generic(),
	}

	for name, result := range scenarios {
		if result.Level != domain.LevelMedium {
			t.Errorf("%s: level = %s, want Medium", name, result.Level)
		}
		if result.Score != 50 {
			t.Errorf("%s: score = %d, want 50", name, result.Score)
		}
		if result.Confidence != 0.5 {
			t.Errorf("%s: confidence = %v, want 0.5", name, result.Confidence)
		}
		if len(result.Insights) == 0 {
			t.Errorf("%s: insights must explain why a fallback was served", name)
		}
		if len(result.Recommendations) == 0 {
			t.Errorf("%s: recommendations must not be empty", name)
		}
		if result.WellnessPlan.Title == "" || result.WellnessPlan.Summary == "" {
			t.Errorf("%s: wellness plan must carry a title and summary", name)
		}
		if n := len(result.WellnessPlan.Tasks); n < 2 || n > 3 {
			t.Errorf("%s: plan has %d tasks, want 2-3", name, n)
		}
	}
}

func TestOfflineMentionsOfflineStatus(t *testing.T) {
	result := Offline()
	found := false
	for _, insight := range result.Insights {
		if strings.Contains(strings.ToLower(insight), "offline") {
			found = true
		}
	}
	if !found {
		t.Errorf("offline insights must mention offline status: %v", result.Insights)
	}
}

func TestValidationErrorFoldsFieldMessages(t *testing.T) {
	result := ValidationError(map[string]string{
		"age": "Age must be between 18 and 65",
	})

	found := false
	for _, insight := range result.Insights {
		if insight == "Age must be between 18 and 65" {
			found = true
		}
	}
	if !found {
		t.Errorf("field message missing from insights: %v", result.Insights)
	}
}

func TestValidationErrorCapsFieldMessages(t *testing.T) {
	result := ValidationError(map[string]string{
		"age":           "a",
		"sleepDuration": "b",
		"screenTime":    "c",
		"workHours":     "d",
		"travelTime":    "e",
	})

	// One intro line plus at most three field messages.
	if len(result.Insights) != 1+maxFieldInsights {
		t.Errorf("insights = %v, want intro + %d field messages", result.Insights, maxFieldInsights)
	}
}

func TestPlanTasksPointAtLocalFeatures(t *testing.T) {
	for _, task := range Generic().WellnessPlan.Tasks {
		if task.Link == "" || task.Link[0] != '/' {
			t.Errorf("task %q must link to an app-local feature, got %q", task.ID, task.Link)
		}
		switch task.Type {
		case domain.TaskArticle, domain.TaskTool, domain.TaskLifestyle:
		default:
			t.Errorf("task %q has unknown type %q", task.ID, task.Type)
		}
		if task.Reward <= 0 {
			t.Errorf("task %q has no reward", task.ID)
		}
	}
}
