package storage

// Slot names for the four durable collections. Each slot is one named blob;
// the store persists a whole collection into its slot after every mutation
// that touches it.
const (
	SlotProfile  = "userProfile"
	SlotWorkouts = "workouts"
	SlotSessions = "sessions"
	SlotEvents   = "events"
)

// SlotStorage defines the interface for durable local slot persistence.
// Implementations serialize/deserialize and check existence; nothing more.
type SlotStorage interface {
	// Save serializes v and durably replaces the slot's contents.
	Save(slot string, v any) error

	// Load deserializes the slot's contents into v. Returns ErrSlotNotFound
	// if the slot has never been written.
	Load(slot string, v any) error

	// Exists reports whether the slot has been written before.
	Exists(slot string) bool
}

// Error constants for the storage layer.
var (
	ErrSlotNotFound = StorageError("slot not found")
)

// StorageError helps distinguish storage errors.
type StorageError string

func (e StorageError) Error() string {
	return string(e)
}
