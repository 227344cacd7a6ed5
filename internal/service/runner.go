package service

import (
	"errors"
	"math"
	"time"

	"fittrack/internal/domain"
)

// --- Error Definitions ---
var (
	ErrRunFinalized = errors.New("workout run already finalized")
	ErrNotResting   = errors.New("no rest phase to skip")
	ErrNoExercises  = errors.New("workout has no exercises")
)

// RunnerStore is the slice of the store a workout run needs: the source
// workout, the rest timer, and session recording.
type RunnerStore interface {
	Workout(id string) (domain.Workout, bool)
	StartTimer(seconds int)
	AddSession(sess domain.WorkoutSession) string
}

// WorkoutRunner drives one pass through a workout: set by set, exercise by
// exercise, with a rest phase between sets. All progress lives here and only
// here until finalization writes exactly one session to the store; dropping
// the runner mid-run loses the progress by design.
//
// A runner is bound to a single goroutine and must not be reused after the
// final set completes.
type WorkoutRunner struct {
	store RunnerStore
	now   func() time.Time

	workout       domain.Workout
	exerciseIndex int
	setIndex      int
	completedSets map[string][]domain.CompletedSet // keyed by exercise id
	resting       bool
	startedAt     time.Time
	finalized     bool
}

// RunnerOption configures a WorkoutRunner at construction time.
type RunnerOption func(*WorkoutRunner)

// WithRunnerClock replaces the time source. Used by tests.
func WithRunnerClock(now func() time.Time) RunnerOption {
	return func(r *WorkoutRunner) { r.now = now }
}

// NewWorkoutRunner starts a run of the given workout. The workout is copied
// out of the store once; edits made to the catalog mid-run do not affect the
// run in flight.
func NewWorkoutRunner(s RunnerStore, workoutID string, opts ...RunnerOption) (*WorkoutRunner, error) {
	workout, ok := s.Workout(workoutID)
	if !ok {
		return nil, ErrWorkoutNotFound
	}
	if len(workout.Exercises) == 0 {
		return nil, ErrNoExercises
	}

	r := &WorkoutRunner{
		store:         s,
		now:           time.Now,
		workout:       workout,
		completedSets: make(map[string][]domain.CompletedSet),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.startedAt = r.now()
	return r, nil
}

// Workout returns the workout this run executes.
func (r *WorkoutRunner) Workout() domain.Workout { return r.workout }

// ExerciseIndex returns the index of the exercise currently up.
func (r *WorkoutRunner) ExerciseIndex() int { return r.exerciseIndex }

// SetIndex returns the zero-based set within the current exercise.
func (r *WorkoutRunner) SetIndex() int { return r.setIndex }

// IsResting reports whether the run is waiting out a rest phase.
func (r *WorkoutRunner) IsResting() bool { return r.resting }

// Finalized reports whether the run has completed and recorded its session.
func (r *WorkoutRunner) Finalized() bool { return r.finalized }

// CurrentExercise returns the exercise currently up.
func (r *WorkoutRunner) CurrentExercise() domain.Exercise {
	return r.workout.Exercises[r.exerciseIndex]
}

// CompleteSet records the current set as performed and advances the run.
// Unless this was the final set of the final exercise, a rest phase begins
// and the store's rest timer starts with the current exercise's rest time.
// The final set finalizes the run: elapsed duration is computed, one
// CompletedExercise is built per workout exercise, and the session is added
// to the store. After that every transition returns ErrRunFinalized.
func (r *WorkoutRunner) CompleteSet() error {
	if r.finalized {
		return ErrRunFinalized
	}

	exercise := r.CurrentExercise()
	r.completedSets[exercise.ID] = append(r.completedSets[exercise.ID], domain.CompletedSet{
		SetNumber: r.setIndex + 1,
		Reps:      exercise.Reps,
		Weight:    exercise.Weight,
	})

	lastSet := r.setIndex == exercise.Sets-1
	lastExercise := r.exerciseIndex == len(r.workout.Exercises)-1

	if !lastSet || !lastExercise {
		r.resting = true
		r.store.StartTimer(exercise.RestTime)
	}

	switch {
	case !lastSet:
		r.setIndex++
	case !lastExercise:
		r.exerciseIndex++
		r.setIndex = 0
	default:
		r.finalize()
	}
	return nil
}

// SkipRest ends the rest phase early. The underlying countdown keeps
// running; callers that also want the timer stopped reset it on the store.
func (r *WorkoutRunner) SkipRest() error {
	if r.finalized {
		return ErrRunFinalized
	}
	if !r.resting {
		return ErrNotResting
	}
	r.resting = false
	return nil
}

func (r *WorkoutRunner) finalize() {
	now := r.now()
	elapsed := now.Sub(r.startedAt)
	duration := int(math.Round(elapsed.Minutes()))

	completed := make([]domain.CompletedExercise, len(r.workout.Exercises))
	for i, ex := range r.workout.Exercises {
		completed[i] = domain.CompletedExercise{
			Exercise:      ex,
			CompletedSets: r.completedSets[ex.ID],
		}
	}

	r.store.AddSession(domain.WorkoutSession{
		WorkoutID: r.workout.ID,
		Date:      now,
		Completed: true,
		Exercises: completed,
		Duration:  duration,
		Calories:  r.workout.Calories,
	})

	r.resting = false
	r.finalized = true
}
