package domain

// RecommendationType classifies a canned recommendation.
type RecommendationType string

const (
	RecommendExercise    RecommendationType = "exercise"
	RecommendWorkout     RecommendationType = "workout"
	RecommendRest        RecommendationType = "rest"
	RecommendProgression RecommendationType = "progression"
)

// AiRecommendation is one piece of recommendation text shown to the user.
// Despite the name there is no inference behind it; see the recommendation
// service for how these are selected.
type AiRecommendation struct {
	Type        RecommendationType `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
}

// ExerciseSuggestion is a named exercise offered for a goal.
type ExerciseSuggestion struct {
	Name     string           `json:"name"`
	Category ExerciseCategory `json:"category"`
}

// Progression is a suggested next step for an exercise.
type Progression struct {
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}
