package domain

import "time"

// EventType classifies a calendar entry.
type EventType string

const (
	EventWorkout EventType = "workout"
	EventRest    EventType = "rest"
	EventGoal    EventType = "goal"
)

func (t EventType) Valid() bool {
	return t == EventWorkout || t == EventRest || t == EventGoal
}

// CalendarEvent is a scheduled entry. Scheduling the same workout again adds
// another event; events are only removed as a cascade of workout deletion.
type CalendarEvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Type      EventType `json:"type"`
	WorkoutID string    `json:"workoutId,omitempty"`
	Completed *bool     `json:"completed,omitempty"`
}
