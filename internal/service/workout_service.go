package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/store"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrValidationFailed = errors.New("workout validation failed")
)

// Estimation constants, fixed at authoring time. Duration assumes three
// seconds per rep plus the configured rest after every set; calories use the
// standard MET formula with a moderate-effort MET and a reference body weight.
const (
	secondsPerRep   = 3
	estimationMET   = 5.0
	referenceWeight = 70.0 // kg
)

// WorkoutService validates and enriches workout authoring before anything
// reaches the store. Invalid input never mutates state.
type WorkoutService interface {
	CreateWorkout(name string, exercises []domain.Exercise) (domain.Workout, error)
	UpdateWorkout(id string, patch domain.WorkoutPatch) (domain.Workout, error)
	DeleteWorkout(id string)
	ScheduleWorkout(id string, date time.Time) (domain.Workout, error)
}

type workoutService struct {
	store *store.Store
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(s *store.Store) WorkoutService {
	return &workoutService{store: s}
}

// CreateWorkout validates the draft, clamps exercise parameters to sane
// ranges, estimates duration and calories, and appends to the catalog.
func (s *workoutService) CreateWorkout(name string, exercises []domain.Exercise) (domain.Workout, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Workout{}, fmt.Errorf("%w: name is required", ErrValidationFailed)
	}
	if len(exercises) == 0 {
		return domain.Workout{}, fmt.Errorf("%w: at least one exercise is required", ErrValidationFailed)
	}

	clamped := make([]domain.Exercise, len(exercises))
	for i, ex := range exercises {
		ex.Name = strings.TrimSpace(ex.Name)
		if ex.Name == "" {
			return domain.Workout{}, fmt.Errorf("%w: exercise %d has no name", ErrValidationFailed, i+1)
		}
		if !ex.Category.Valid() {
			return domain.Workout{}, fmt.Errorf("%w: exercise %q has invalid category %q", ErrValidationFailed, ex.Name, ex.Category)
		}
		ex.Sets = max(1, ex.Sets)
		ex.Reps = max(1, ex.Reps)
		ex.Weight = math.Max(0, ex.Weight)
		ex.RestTime = max(0, ex.RestTime)
		clamped[i] = ex
	}

	duration := estimateDuration(clamped)
	workout := domain.Workout{
		Name:      name,
		Exercises: clamped,
		Duration:  duration,
		Calories:  estimateCalories(duration),
	}

	id := s.store.AddWorkout(workout)
	created, ok := s.store.Workout(id)
	if !ok {
		return domain.Workout{}, ErrWorkoutNotFound
	}
	return created, nil
}

// UpdateWorkout merges the patch after validating any supplied fields.
// Duration and calories are deliberately not re-estimated on edit.
func (s *workoutService) UpdateWorkout(id string, patch domain.WorkoutPatch) (domain.Workout, error) {
	if _, ok := s.store.Workout(id); !ok {
		return domain.Workout{}, ErrWorkoutNotFound
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return domain.Workout{}, fmt.Errorf("%w: name cannot be empty", ErrValidationFailed)
	}
	if patch.Exercises != nil {
		if len(*patch.Exercises) == 0 {
			return domain.Workout{}, fmt.Errorf("%w: at least one exercise is required", ErrValidationFailed)
		}
		for i, ex := range *patch.Exercises {
			if strings.TrimSpace(ex.Name) == "" {
				return domain.Workout{}, fmt.Errorf("%w: exercise %d has no name", ErrValidationFailed, i+1)
			}
		}
	}

	s.store.UpdateWorkout(id, patch)
	updated, ok := s.store.Workout(id)
	if !ok {
		return domain.Workout{}, ErrWorkoutNotFound
	}
	return updated, nil
}

// DeleteWorkout removes the workout and its calendar events. Deleting an
// unknown id is benign.
func (s *workoutService) DeleteWorkout(id string) {
	s.store.DeleteWorkout(id)
}

// ScheduleWorkout records a calendar event for the workout on the given date.
func (s *workoutService) ScheduleWorkout(id string, date time.Time) (domain.Workout, error) {
	if _, ok := s.store.Workout(id); !ok {
		return domain.Workout{}, ErrWorkoutNotFound
	}
	s.store.ScheduleWorkout(id, date)
	scheduled, ok := s.store.Workout(id)
	if !ok {
		return domain.Workout{}, ErrWorkoutNotFound
	}
	return scheduled, nil
}

// estimateDuration returns the estimated minutes for a full pass: every set
// costs its reps at secondsPerRep plus the exercise's rest time.
func estimateDuration(exercises []domain.Exercise) int {
	totalSeconds := 0
	for _, ex := range exercises {
		setSeconds := ex.Reps*secondsPerRep + ex.RestTime
		totalSeconds += setSeconds * ex.Sets
	}
	return int(math.Round(float64(totalSeconds) / 60.0))
}

// estimateCalories applies calories = MET * 3.5 * kg * minutes / 200.
func estimateCalories(durationMinutes int) int {
	return int(math.Round(estimationMET * 3.5 * referenceWeight * float64(durationMinutes) / 200.0))
}
