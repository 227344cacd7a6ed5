package domain

import "time"

// CompletedSet records one performed set within a session.
type CompletedSet struct {
	SetNumber int     `json:"setNumber"` // 1-based
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
}

// CompletedExercise is an exercise template plus the sets actually performed.
type CompletedExercise struct {
	Exercise
	CompletedSets []CompletedSet `json:"completedSets"`
}

// TotalWeightLifted sums weight x reps across all completed sets.
func (e CompletedExercise) TotalWeightLifted() float64 {
	var total float64
	for _, set := range e.CompletedSets {
		total += set.Weight * float64(set.Reps)
	}
	return total
}

// WorkoutSession is one completed pass through a workout. Sessions are
// immutable once recorded; history is append-only. WorkoutID is a reference,
// not ownership: it may dangle if the workout is deleted later.
type WorkoutSession struct {
	ID        string              `json:"id"`
	WorkoutID string              `json:"workoutId"`
	Date      time.Time           `json:"date"`
	Completed bool                `json:"completed"`
	Exercises []CompletedExercise `json:"exercises"`
	Duration  int                 `json:"duration"` // actual elapsed minutes
	Calories  int                 `json:"calories"` // copied from the source workout
	Notes     string              `json:"notes,omitempty"`
}

// TotalWeightLifted sums weight x reps across the whole session.
func (s WorkoutSession) TotalWeightLifted() float64 {
	var total float64
	for _, ex := range s.Exercises {
		total += ex.TotalWeightLifted()
	}
	return total
}
