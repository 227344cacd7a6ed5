package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSlotStorage is a mock type for the storage.SlotStorage interface.
type MockSlotStorage struct {
	mock.Mock
}

func (m *MockSlotStorage) Save(slot string, v any) error {
	args := m.Called(slot, v)
	return args.Error(0)
}

func (m *MockSlotStorage) Load(slot string, v any) error {
	args := m.Called(slot, v)
	return args.Error(0)
}

func (m *MockSlotStorage) Exists(slot string) bool {
	args := m.Called(slot)
	return args.Bool(0)
}

// emptyMockStorage behaves like a first run: nothing persisted, every save
// accepted.
func emptyMockStorage() *MockSlotStorage {
	m := new(MockSlotStorage)
	m.On("Load", mock.Anything, mock.Anything).Return(storage.ErrSlotNotFound)
	m.On("Save", mock.Anything, mock.Anything).Return(nil)
	return m
}

func saveCount(m *MockSlotStorage, slot string) int {
	count := 0
	for _, call := range m.Calls {
		if call.Method == "Save" && call.Arguments.String(0) == slot {
			count++
		}
	}
	return count
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNewSeedsDefaults(t *testing.T) {
	s := New(emptyMockStorage(), WithClock(fixedClock(testTime)))
	snap := s.Snapshot()

	assert.Equal(t, "User", snap.Profile.Name)
	assert.Equal(t, domain.GoalStrength, snap.Profile.Goal)
	assert.Equal(t, testTime, snap.Profile.Stats.StartDate)
	require.Len(t, snap.Workouts, 2)
	assert.Equal(t, "Full Body Strength", snap.Workouts[0].Name)
	assert.Equal(t, "Cardio Blast", snap.Workouts[1].Name)
	assert.Empty(t, snap.Sessions)
	assert.Empty(t, snap.Events)
	assert.Nil(t, snap.TimerSeconds)
	assert.False(t, snap.TimerRunning)
}

func TestUpdateProfileMergesOnlySuppliedFields(t *testing.T) {
	m := emptyMockStorage()
	s := New(m, WithClock(fixedClock(testTime)))
	before := s.Snapshot().Profile

	name := "Alex"
	s.UpdateProfile(domain.ProfilePatch{Name: &name})

	after := s.Snapshot().Profile
	assert.Equal(t, "Alex", after.Name)
	assert.Equal(t, before.Goal, after.Goal)
	assert.Equal(t, before.Preferences, after.Preferences)
	assert.Equal(t, before.Stats, after.Stats)

	// Exactly one slot write, to the profile slot.
	assert.Equal(t, 1, saveCount(m, storage.SlotProfile))
	assert.Equal(t, 0, saveCount(m, storage.SlotWorkouts))
	assert.Equal(t, 0, saveCount(m, storage.SlotSessions))
	assert.Equal(t, 0, saveCount(m, storage.SlotEvents))
}

func TestUpdatePreferencesMergesOnlySuppliedFields(t *testing.T) {
	m := emptyMockStorage()
	s := New(m)
	before := s.Snapshot().Profile.Preferences

	unit := domain.UnitLbs
	rest := 90
	s.UpdatePreferences(domain.PreferencesPatch{WeightUnit: &unit, DefaultRestTime: &rest})

	after := s.Snapshot().Profile.Preferences
	assert.Equal(t, domain.UnitLbs, after.WeightUnit)
	assert.Equal(t, 90, after.DefaultRestTime)
	assert.Equal(t, before.AiRecommendations, after.AiRecommendations)
	assert.Equal(t, before.DarkMode, after.DarkMode)
	assert.Equal(t, before.NotificationsEnabled, after.NotificationsEnabled)
	assert.Equal(t, 1, saveCount(m, storage.SlotProfile))
}

func TestUpdateGoal(t *testing.T) {
	m := emptyMockStorage()
	s := New(m)

	s.UpdateGoal(domain.GoalEndurance)

	assert.Equal(t, domain.GoalEndurance, s.Snapshot().Profile.Goal)
	assert.Equal(t, 1, saveCount(m, storage.SlotProfile))
}

func TestAddWorkoutAssignsUniqueIDs(t *testing.T) {
	s := New(emptyMockStorage())
	initial := len(s.Snapshot().Workouts)

	seen := map[string]bool{}
	for _, w := range s.Snapshot().Workouts {
		seen[w.ID] = true
	}

	for i := 0; i < 50; i++ {
		id := s.AddWorkout(domain.Workout{
			Name:      "Workout",
			Exercises: []domain.Exercise{{Name: "Squats", Sets: 3, Reps: 10, Category: domain.CategoryStrength}},
		})
		assert.False(t, seen[id], "id %q reused", id)
		seen[id] = true
	}
	assert.Len(t, s.Snapshot().Workouts, initial+50)
}

func TestAddWorkoutAssignsExerciseIDsAndTimestamp(t *testing.T) {
	s := New(emptyMockStorage(), WithClock(fixedClock(testTime)))

	id := s.AddWorkout(domain.Workout{
		Name:      "Upper",
		Exercises: []domain.Exercise{{Name: "Push-ups", Sets: 3, Reps: 15, Category: domain.CategoryStrength}},
	})

	created, ok := s.Workout(id)
	require.True(t, ok)
	assert.Equal(t, testTime, created.CreatedAt)
	assert.NotEmpty(t, created.Exercises[0].ID)
}

func TestUpdateWorkoutUnknownIDIsNoop(t *testing.T) {
	m := emptyMockStorage()
	s := New(m)
	before := s.Snapshot().Workouts

	name := "Renamed"
	s.UpdateWorkout("missing", domain.WorkoutPatch{Name: &name})

	assert.Equal(t, before, s.Snapshot().Workouts)
	assert.Equal(t, 0, saveCount(m, storage.SlotWorkouts))
}

func TestDeleteWorkoutCascadesToEvents(t *testing.T) {
	m := emptyMockStorage()
	s := New(m)

	id := s.AddWorkout(domain.Workout{
		Name:      "Doomed",
		Exercises: []domain.Exercise{{Name: "Squats", Sets: 1, Reps: 1, Category: domain.CategoryStrength}},
	})
	s.ScheduleWorkout(id, testTime)
	s.ScheduleWorkout(id, testTime.AddDate(0, 0, 7))
	require.Len(t, s.Snapshot().Events, 2)

	s.DeleteWorkout(id)

	snap := s.Snapshot()
	_, ok := s.Workout(id)
	assert.False(t, ok)
	assert.Empty(t, snap.Events)
	assert.Equal(t, 3, saveCount(m, storage.SlotEvents)) // 2 schedules + 1 cascade

	// Second delete is a no-op, not an error.
	workoutSaves := saveCount(m, storage.SlotWorkouts)
	s.DeleteWorkout(id)
	assert.Equal(t, workoutSaves, saveCount(m, storage.SlotWorkouts))
}

func TestAddSessionAccumulatesStats(t *testing.T) {
	s := New(emptyMockStorage(), WithClock(fixedClock(testTime)))

	session := domain.WorkoutSession{
		WorkoutID: "w1",
		Date:      testTime,
		Completed: true,
		Exercises: []domain.CompletedExercise{
			{
				Exercise: domain.Exercise{ID: "e1", Name: "Squats", Sets: 2, Reps: 10, Weight: 20, Category: domain.CategoryStrength},
				CompletedSets: []domain.CompletedSet{
					{SetNumber: 1, Reps: 10, Weight: 20},
					{SetNumber: 2, Reps: 10, Weight: 20},
				},
			},
		},
		Duration: 30,
		Calories: 250,
	}

	for i := 0; i < 3; i++ {
		s.AddSession(session)
	}

	stats := s.Snapshot().Profile.Stats
	assert.Equal(t, 3, stats.WorkoutsCompleted)
	assert.Equal(t, 90, stats.TotalWorkoutDuration)
	assert.Equal(t, 750, stats.TotalCaloriesBurned)
	assert.Equal(t, 3*400.0, stats.TotalWeightLifted) // 2 sets x 10 reps x 20
	assert.Equal(t, 3, stats.StreakDays)
	assert.Equal(t, testTime, stats.StartDate)
	assert.Len(t, s.Snapshot().Sessions, 3)
}

func TestAddSessionStampsLastPerformed(t *testing.T) {
	s := New(emptyMockStorage())
	id := s.AddWorkout(domain.Workout{
		Name:      "Tracked",
		Exercises: []domain.Exercise{{Name: "Rows", Sets: 1, Reps: 10, Category: domain.CategoryStrength}},
	})

	s.AddSession(domain.WorkoutSession{WorkoutID: id, Date: testTime, Completed: true, Duration: 20, Calories: 100})

	w, ok := s.Workout(id)
	require.True(t, ok)
	require.NotNil(t, w.LastPerformed)
	assert.Equal(t, testTime, *w.LastPerformed)
}

func TestScheduleWorkout(t *testing.T) {
	s := New(emptyMockStorage())
	id := s.AddWorkout(domain.Workout{
		Name:      "Leg Day",
		Exercises: []domain.Exercise{{Name: "Squats", Sets: 3, Reps: 10, Category: domain.CategoryStrength}},
	})

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s.ScheduleWorkout(id, date)

	events := s.Snapshot().Events
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventWorkout, events[0].Type)
	assert.Equal(t, "Leg Day", events[0].Title)
	assert.Equal(t, id, events[0].WorkoutID)
	assert.Equal(t, date, events[0].Date)

	w, ok := s.Workout(id)
	require.True(t, ok)
	require.NotNil(t, w.NextScheduled)
	assert.Equal(t, date, *w.NextScheduled)
}

func TestScheduleUnknownWorkoutIsNoop(t *testing.T) {
	m := emptyMockStorage()
	s := New(m)

	s.ScheduleWorkout("missing", testTime)

	assert.Empty(t, s.Snapshot().Events)
	assert.Equal(t, 0, saveCount(m, storage.SlotEvents))
}

func TestSnapshotReturnsDeepCopies(t *testing.T) {
	s := New(emptyMockStorage())

	snap := s.Snapshot()
	snap.Profile.Name = "Mutated"
	snap.Workouts[0].Name = "Mutated"
	snap.Workouts[0].Exercises[0].Name = "Mutated"

	fresh := s.Snapshot()
	assert.Equal(t, "User", fresh.Profile.Name)
	assert.Equal(t, "Full Body Strength", fresh.Workouts[0].Name)
	assert.Equal(t, "Squats", fresh.Workouts[0].Exercises[0].Name)
}

func TestStoreReloadsPersistedState(t *testing.T) {
	dir := t.TempDir()
	slots, err := storage.NewFileSlotStorage(dir)
	require.NoError(t, err)

	first := New(slots, WithClock(fixedClock(testTime)))
	name := "Alex"
	first.UpdateProfile(domain.ProfilePatch{Name: &name})
	id := first.AddWorkout(domain.Workout{
		Name:      "Persisted",
		Exercises: []domain.Exercise{{Name: "Rows", Sets: 2, Reps: 8, Weight: 30, Category: domain.CategoryStrength}},
	})
	first.ScheduleWorkout(id, testTime)
	first.AddSession(domain.WorkoutSession{WorkoutID: id, Date: testTime, Completed: true, Duration: 25, Calories: 180})

	second := New(slots)
	snap := second.Snapshot()
	assert.Equal(t, "Alex", snap.Profile.Name)
	assert.Equal(t, 1, snap.Profile.Stats.WorkoutsCompleted)
	assert.Len(t, snap.Sessions, 1)
	assert.Len(t, snap.Events, 1)
	_, ok := second.Workout(id)
	assert.True(t, ok)
}

func TestCorruptSlotFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	slots, err := storage.NewFileSlotStorage(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, storage.SlotWorkouts+".json"), []byte("garbage"), 0o600))

	s := New(slots)
	snap := s.Snapshot()
	require.Len(t, snap.Workouts, 2)
	assert.Equal(t, "Full Body Strength", snap.Workouts[0].Name)
}
