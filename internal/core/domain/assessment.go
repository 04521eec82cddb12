package domain

// AssessmentInput is a single stress-assessment submission. It is owned by
// the caller and treated as immutable once handed to the prediction client.
type AssessmentInput struct {
	Age                int     `json:"age"`
	Gender             string  `json:"gender"`
	SleepDuration      float64 `json:"sleepDuration"`
	SleepQuality       int     `json:"sleepQuality"`
	PhysicalActivity   int     `json:"physicalActivity"`
	ScreenTime         float64 `json:"screenTime"`
	CaffeineIntake     int     `json:"caffeineIntake"`
	SmokingHabit       string  `json:"smokingHabit"`
	WorkHours          float64 `json:"workHours"`
	TravelTime         float64 `json:"travelTime"`
	SocialInteractions int     `json:"socialInteractions"`
	MeditationPractice string  `json:"meditationPractice"`
	ExerciseType       string  `json:"exerciseType"`
}

type Gender string
type YesNo string
type ExerciseType string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"

	Yes YesNo = "Yes"
	No  YesNo = "No"

	ExerciseCardio   ExerciseType = "Cardio"
	ExerciseYoga     ExerciseType = "Yoga"
	ExerciseStrength ExerciseType = "Strength Training"
	ExerciseAerobics ExerciseType = "Aerobics"
	ExerciseWalking  ExerciseType = "Walking"
	ExercisePilates  ExerciseType = "Pilates"
)
