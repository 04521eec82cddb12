package validate

// Range declares the inclusive numeric bounds for one input field.
type Range struct {
	Field string
	Label string
	Min   float64
	Max   float64
	Unit  string
}

// CategoricalSet declares the allowed values for one categorical field.
type CategoricalSet struct {
	Field  string
	Label  string
	Values []string
}

// Declared bounds match the remote model's training data. They are
// process-wide constants and must stay in sync with the inference service.
var NumericRanges = []Range{
	{Field: "age", Label: "Age", Min: 18, Max: 65},
	{Field: "sleepDuration", Label: "Sleep duration", Min: 4, Max: 12, Unit: "hours"},
	{Field: "sleepQuality", Label: "Sleep quality", Min: 1, Max: 5},
	{Field: "physicalActivity", Label: "Physical activity", Min: 0, Max: 5},
	{Field: "screenTime", Label: "Screen time", Min: 1, Max: 14, Unit: "hours"},
	{Field: "caffeineIntake", Label: "Caffeine intake", Min: 0, Max: 8, Unit: "cups"},
	{Field: "workHours", Label: "Work hours", Min: 4, Max: 16, Unit: "hours"},
	{Field: "travelTime", Label: "Travel time", Min: 0, Max: 4, Unit: "hours"},
	{Field: "socialInteractions", Label: "Social interactions", Min: 1, Max: 5},
}

var CategoricalSets = []CategoricalSet{
	{Field: "gender", Label: "Gender", Values: []string{"Male", "Female"}},
	{Field: "smokingHabit", Label: "Smoking habit", Values: []string{"Yes", "No"}},
	{Field: "meditationPractice", Label: "Meditation practice", Values: []string{"Yes", "No"}},
	{Field: "exerciseType", Label: "Exercise type", Values: []string{
		"Cardio", "Yoga", "Strength Training", "Aerobics", "Walking", "Pilates",
	}},
}
