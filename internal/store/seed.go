package store

import (
	"time"

	"fittrack/internal/domain"

	"github.com/google/uuid"
)

// SampleWorkouts returns the starter catalog used when no workouts slot has
// been persisted yet, so a fresh install has something to run.
func SampleWorkouts(now time.Time) []domain.Workout {
	return []domain.Workout{
		{
			ID:   uuid.NewString(),
			Name: "Full Body Strength",
			Exercises: []domain.Exercise{
				{ID: uuid.NewString(), Name: "Squats", Sets: 3, Reps: 12, Weight: 20, RestTime: 60, Category: domain.CategoryStrength},
				{ID: uuid.NewString(), Name: "Push-ups", Sets: 3, Reps: 15, Weight: 0, RestTime: 45, Category: domain.CategoryStrength},
				{ID: uuid.NewString(), Name: "Bent Over Rows", Sets: 3, Reps: 12, Weight: 15, RestTime: 60, Category: domain.CategoryStrength},
			},
			Duration:  45,
			Calories:  320,
			CreatedAt: now,
		},
		{
			ID:   uuid.NewString(),
			Name: "Cardio Blast",
			Exercises: []domain.Exercise{
				{ID: uuid.NewString(), Name: "Running", Sets: 1, Reps: 1, Weight: 0, RestTime: 0, Category: domain.CategoryCardio},
				{ID: uuid.NewString(), Name: "Jumping Jacks", Sets: 3, Reps: 30, Weight: 0, RestTime: 30, Category: domain.CategoryCardio},
			},
			Duration:  30,
			Calories:  250,
			CreatedAt: now,
		},
	}
}
