package domain

import "time"

// ExerciseCategory classifies an exercise template.
type ExerciseCategory string

const (
	CategoryStrength    ExerciseCategory = "strength"
	CategoryCardio      ExerciseCategory = "cardio"
	CategoryFlexibility ExerciseCategory = "flexibility"
	CategoryBalance     ExerciseCategory = "balance"
	CategoryRecovery    ExerciseCategory = "recovery"
)

func (c ExerciseCategory) Valid() bool {
	switch c {
	case CategoryStrength, CategoryCardio, CategoryFlexibility, CategoryBalance, CategoryRecovery:
		return true
	}
	return false
}

// Exercise is a template within a workout: how many sets of how many reps
// at what weight, and how long to rest between sets.
type Exercise struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Sets     int              `json:"sets"`
	Reps     int              `json:"reps"`
	Weight   float64          `json:"weight"`   // 0 = bodyweight
	RestTime int              `json:"restTime"` // seconds
	Category ExerciseCategory `json:"category"`
}

// Workout is a user-authored template. Exercise order defines execution
// order. Duration and Calories are estimates fixed at creation time and are
// not recomputed when the workout is edited.
type Workout struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Exercises     []Exercise `json:"exercises"`
	Duration      int        `json:"duration"` // minutes, estimated
	Calories      int        `json:"calories"` // estimated
	CreatedAt     time.Time  `json:"createdAt"`
	LastPerformed *time.Time `json:"lastPerformed,omitempty"`
	NextScheduled *time.Time `json:"nextScheduled,omitempty"`
}

// Clone returns a deep copy; exercises and the optional timestamps are the
// only reference fields.
func (w Workout) Clone() Workout {
	out := w
	if w.Exercises != nil {
		out.Exercises = make([]Exercise, len(w.Exercises))
		copy(out.Exercises, w.Exercises)
	}
	if w.LastPerformed != nil {
		t := *w.LastPerformed
		out.LastPerformed = &t
	}
	if w.NextScheduled != nil {
		t := *w.NextScheduled
		out.NextScheduled = &t
	}
	return out
}

// WorkoutPatch carries the fields UpdateWorkout may merge into an existing
// workout. Nil means "leave unchanged".
type WorkoutPatch struct {
	Name          *string     `json:"name,omitempty"`
	Exercises     *[]Exercise `json:"exercises,omitempty"`
	Duration      *int        `json:"duration,omitempty"`
	Calories      *int        `json:"calories,omitempty"`
	LastPerformed *time.Time  `json:"lastPerformed,omitempty"`
	NextScheduled *time.Time  `json:"nextScheduled,omitempty"`
}
