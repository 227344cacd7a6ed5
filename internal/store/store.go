package store

import (
	"log"
	"sync"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/storage"

	"github.com/google/uuid"
)

// Store is the single source of truth for all durable entities. Every
// mutation goes through it and immediately persists the collection it
// touched; reads hand out deep copies so callers cannot mutate shared state.
//
// Construct one Store at process start and pass it to every collaborator.
type Store struct {
	mu      sync.Mutex
	storage storage.SlotStorage

	now             func() time.Time
	tickInterval    time.Duration
	notifier        TimerNotifier
	defaultRestTime *int

	profile  domain.UserProfile
	workouts []domain.Workout
	sessions []domain.WorkoutSession
	events   []domain.CalendarEvent

	// Timer state is ephemeral: never persisted, reset on restart.
	timerSeconds *int
	timerRunning bool
	timerStop    chan struct{}
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithClock replaces the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithTickInterval replaces the one-second countdown interval. Used by tests.
func WithTickInterval(d time.Duration) Option {
	return func(s *Store) { s.tickInterval = d }
}

// WithNotifier sets the collaborator invoked when a countdown reaches zero.
func WithNotifier(n TimerNotifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithDefaultRestTime overrides the default rest seconds used when a profile
// is created on first run. A persisted profile wins over this value.
func WithDefaultRestTime(seconds int) Option {
	return func(s *Store) { s.defaultRestTime = &seconds }
}

// New builds a Store backed by the given slot storage and loads every slot.
// A slot that is missing or fails to decode falls back to its default value;
// corruption never prevents startup.
func New(slots storage.SlotStorage, opts ...Option) *Store {
	s := &Store{
		storage:      slots,
		now:          time.Now,
		tickInterval: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	now := s.now()
	s.profile = domain.DefaultProfile(now)
	if s.defaultRestTime != nil {
		s.profile.Preferences.DefaultRestTime = *s.defaultRestTime
	}
	s.workouts = SampleWorkouts(now)
	s.sessions = nil
	s.events = nil

	loadSlot(slots, storage.SlotProfile, &s.profile)
	loadSlot(slots, storage.SlotWorkouts, &s.workouts)
	loadSlot(slots, storage.SlotSessions, &s.sessions)
	loadSlot(slots, storage.SlotEvents, &s.events)

	return s
}

// loadSlot loads one slot into dst, leaving the default in place on any
// failure. An absent slot is the normal first-run case and is not logged.
func loadSlot(slots storage.SlotStorage, slot string, dst any) {
	err := slots.Load(slot, dst)
	if err == nil || err == storage.ErrSlotNotFound {
		return
	}
	log.Printf("WARN: could not load slot %s, using defaults: %v", slot, err)
}

// persist writes one collection to its slot. Failures are logged and
// swallowed: the in-memory state stays authoritative for the session, and
// the worst case is loss of this one write.
func (s *Store) persist(slot string, v any) {
	if err := s.storage.Save(slot, v); err != nil {
		log.Printf("ERROR: failed to persist slot %s: %v", slot, err)
	}
}

// Snapshot is a read-only view of every collection plus timer state.
type Snapshot struct {
	Profile      domain.UserProfile
	Workouts     []domain.Workout
	Sessions     []domain.WorkoutSession
	Events       []domain.CalendarEvent
	TimerSeconds *int
	TimerRunning bool
}

// Snapshot returns deep copies of the current state. Mutating the returned
// value has no effect on the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Profile:      s.profile,
		Workouts:     cloneWorkouts(s.workouts),
		Sessions:     cloneSessions(s.sessions),
		Events:       cloneEvents(s.events),
		TimerRunning: s.timerRunning,
	}
	if s.timerSeconds != nil {
		sec := *s.timerSeconds
		snap.TimerSeconds = &sec
	}
	return snap
}

// Workout returns a copy of the workout with the given id, if present.
func (s *Store) Workout(id string) (domain.Workout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.workouts {
		if w.ID == id {
			return w.Clone(), true
		}
	}
	return domain.Workout{}, false
}

// UpdateProfile shallow-merges the supplied fields into the profile.
func (s *Store) UpdateProfile(patch domain.ProfilePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Name != nil {
		s.profile.Name = *patch.Name
	}
	if patch.Goal != nil {
		s.profile.Goal = *patch.Goal
	}
	s.persist(storage.SlotProfile, s.profile)
}

// UpdatePreferences shallow-merges the supplied fields into the profile's
// preferences.
func (s *Store) UpdatePreferences(patch domain.PreferencesPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := &s.profile.Preferences
	if patch.WeightUnit != nil {
		prefs.WeightUnit = *patch.WeightUnit
	}
	if patch.AiRecommendations != nil {
		prefs.AiRecommendations = *patch.AiRecommendations
	}
	if patch.DefaultRestTime != nil {
		prefs.DefaultRestTime = *patch.DefaultRestTime
	}
	if patch.DarkMode != nil {
		prefs.DarkMode = *patch.DarkMode
	}
	if patch.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *patch.NotificationsEnabled
	}
	s.persist(storage.SlotProfile, s.profile)
}

// UpdateGoal sets the training goal. Past sessions and recommendations
// already shown are untouched.
func (s *Store) UpdateGoal(goal domain.UserGoal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.Goal = goal
	s.persist(storage.SlotProfile, s.profile)
}

// AddWorkout assigns a fresh id and creation timestamp, appends the workout
// to the catalog and returns the new id.
func (s *Store) AddWorkout(w domain.Workout) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.ID = uuid.NewString()
	w.CreatedAt = s.now()
	for i := range w.Exercises {
		if w.Exercises[i].ID == "" {
			w.Exercises[i].ID = uuid.NewString()
		}
	}
	s.workouts = append(s.workouts, w)
	s.persist(storage.SlotWorkouts, s.workouts)
	return w.ID
}

// UpdateWorkout merges the patch into the workout with the given id.
// Silently a no-op when the id is unknown.
func (s *Store) UpdateWorkout(id string, patch domain.WorkoutPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateWorkoutLocked(id, patch)
}

func (s *Store) updateWorkoutLocked(id string, patch domain.WorkoutPatch) {
	for i := range s.workouts {
		if s.workouts[i].ID != id {
			continue
		}
		w := &s.workouts[i]
		if patch.Name != nil {
			w.Name = *patch.Name
		}
		if patch.Exercises != nil {
			w.Exercises = *patch.Exercises
		}
		if patch.Duration != nil {
			w.Duration = *patch.Duration
		}
		if patch.Calories != nil {
			w.Calories = *patch.Calories
		}
		if patch.LastPerformed != nil {
			t := *patch.LastPerformed
			w.LastPerformed = &t
		}
		if patch.NextScheduled != nil {
			t := *patch.NextScheduled
			w.NextScheduled = &t
		}
		s.persist(storage.SlotWorkouts, s.workouts)
		return
	}
}

// DeleteWorkout removes the workout and every calendar event referencing it.
// Calling it again with the same id is a no-op.
func (s *Store) DeleteWorkout(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	kept := s.workouts[:0]
	for _, w := range s.workouts {
		if w.ID == id {
			found = true
			continue
		}
		kept = append(kept, w)
	}
	if !found {
		return
	}
	s.workouts = kept

	keptEvents := s.events[:0]
	for _, e := range s.events {
		if e.WorkoutID == id {
			continue
		}
		keptEvents = append(keptEvents, e)
	}
	s.events = keptEvents

	s.persist(storage.SlotWorkouts, s.workouts)
	s.persist(storage.SlotEvents, s.events)
}

// AddSession appends a completed session to the history and accumulates the
// profile stats. This is the only mutation that touches more than one
// collection; both are updated before either persists.
func (s *Store) AddSession(sess domain.WorkoutSession) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.ID = uuid.NewString()
	s.sessions = append(s.sessions, sess)

	stats := &s.profile.Stats
	stats.WorkoutsCompleted++
	stats.TotalWorkoutDuration += sess.Duration
	stats.TotalCaloriesBurned += sess.Calories
	stats.TotalWeightLifted += sess.TotalWeightLifted()
	// Naive streak: one per completed session, not calendar-aware.
	stats.StreakDays++

	s.persist(storage.SlotSessions, s.sessions)
	s.persist(storage.SlotProfile, s.profile)

	if sess.WorkoutID != "" {
		date := sess.Date
		s.updateWorkoutLocked(sess.WorkoutID, domain.WorkoutPatch{LastPerformed: &date})
	}
	return sess.ID
}

// ScheduleWorkout appends a calendar event for the workout and records the
// date as the workout's next scheduled time. No-op for an unknown workout.
func (s *Store) ScheduleWorkout(workoutID string, date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var workout *domain.Workout
	for i := range s.workouts {
		if s.workouts[i].ID == workoutID {
			workout = &s.workouts[i]
			break
		}
	}
	if workout == nil {
		return
	}

	s.events = append(s.events, domain.CalendarEvent{
		ID:        uuid.NewString(),
		Title:     workout.Name,
		Date:      date,
		Type:      domain.EventWorkout,
		WorkoutID: workoutID,
	})
	s.persist(storage.SlotEvents, s.events)

	s.updateWorkoutLocked(workoutID, domain.WorkoutPatch{NextScheduled: &date})
}

func cloneWorkouts(in []domain.Workout) []domain.Workout {
	if in == nil {
		return nil
	}
	out := make([]domain.Workout, len(in))
	for i, w := range in {
		out[i] = w.Clone()
	}
	return out
}

func cloneSessions(in []domain.WorkoutSession) []domain.WorkoutSession {
	if in == nil {
		return nil
	}
	out := make([]domain.WorkoutSession, len(in))
	for i, sess := range in {
		out[i] = sess
		if sess.Exercises != nil {
			out[i].Exercises = make([]domain.CompletedExercise, len(sess.Exercises))
			for j, ex := range sess.Exercises {
				out[i].Exercises[j] = ex
				if ex.CompletedSets != nil {
					out[i].Exercises[j].CompletedSets = make([]domain.CompletedSet, len(ex.CompletedSets))
					copy(out[i].Exercises[j].CompletedSets, ex.CompletedSets)
				}
			}
		}
	}
	return out
}

func cloneEvents(in []domain.CalendarEvent) []domain.CalendarEvent {
	if in == nil {
		return nil
	}
	out := make([]domain.CalendarEvent, len(in))
	for i, e := range in {
		out[i] = e
		if e.Completed != nil {
			done := *e.Completed
			out[i].Completed = &done
		}
	}
	return out
}
