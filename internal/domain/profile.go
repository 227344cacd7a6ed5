package domain

import "time"

// UserGoal is the training goal driving recommendation selection.
type UserGoal string

const (
	GoalMuscleGain  UserGoal = "muscle_gain"
	GoalWeightLoss  UserGoal = "weight_loss"
	GoalEndurance   UserGoal = "endurance"
	GoalStrength    UserGoal = "strength"
	GoalFlexibility UserGoal = "flexibility"
	GoalMaintenance UserGoal = "maintenance"
)

// AllGoals lists every valid goal, in a stable order.
var AllGoals = []UserGoal{
	GoalMuscleGain,
	GoalWeightLoss,
	GoalEndurance,
	GoalStrength,
	GoalFlexibility,
	GoalMaintenance,
}

func (g UserGoal) Valid() bool {
	for _, goal := range AllGoals {
		if g == goal {
			return true
		}
	}
	return false
}

// WeightUnit is the display/accumulation unit for weights.
type WeightUnit string

const (
	UnitKg  WeightUnit = "kg"
	UnitLbs WeightUnit = "lbs"
)

func (u WeightUnit) Valid() bool {
	return u == UnitKg || u == UnitLbs
}

const kgToLbs = 2.20462

// ConvertWeight converts a weight value between kg and lbs.
// Stored stats are never converted retroactively; this is for display.
func ConvertWeight(weight float64, from, to WeightUnit) float64 {
	if from == to {
		return weight
	}
	if from == UnitKg {
		return weight * kgToLbs
	}
	return weight / kgToLbs
}

// UserPreferences holds per-user configuration. Partial updates merge
// field-by-field via PreferencesPatch.
type UserPreferences struct {
	WeightUnit           WeightUnit `json:"weightUnit"`
	AiRecommendations    bool       `json:"aiRecommendations"`
	DefaultRestTime      int        `json:"defaultRestTime"` // seconds
	DarkMode             bool       `json:"darkMode"`
	NotificationsEnabled bool       `json:"notificationsEnabled"`
}

// UserStats accumulates across completed sessions. All counters only grow;
// StartDate is fixed at profile creation.
type UserStats struct {
	WorkoutsCompleted    int       `json:"workoutsCompleted"`
	TotalWorkoutDuration int       `json:"totalWorkoutDuration"` // minutes
	TotalCaloriesBurned  int       `json:"totalCaloriesBurned"`
	TotalWeightLifted    float64   `json:"totalWeightLifted"`
	StreakDays           int       `json:"streakDays"`
	StartDate            time.Time `json:"startDate"`
}

// UserProfile is the single per-installation user record.
type UserProfile struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Goal        UserGoal        `json:"goal"`
	Preferences UserPreferences `json:"preferences"`
	Stats       UserStats       `json:"stats"`
}

// ProfilePatch carries the fields UpdateProfile may merge. Nil means
// "leave unchanged". Preferences and stats have their own paths.
type ProfilePatch struct {
	Name *string   `json:"name,omitempty"`
	Goal *UserGoal `json:"goal,omitempty"`
}

// PreferencesPatch carries the fields UpdatePreferences may merge.
type PreferencesPatch struct {
	WeightUnit           *WeightUnit `json:"weightUnit,omitempty"`
	AiRecommendations    *bool       `json:"aiRecommendations,omitempty"`
	DefaultRestTime      *int        `json:"defaultRestTime,omitempty"`
	DarkMode             *bool       `json:"darkMode,omitempty"`
	NotificationsEnabled *bool       `json:"notificationsEnabled,omitempty"`
}

// DefaultProfile returns the profile created on first launch.
func DefaultProfile(now time.Time) UserProfile {
	return UserProfile{
		ID:   "user1",
		Name: "User",
		Goal: GoalStrength,
		Preferences: UserPreferences{
			WeightUnit:           UnitKg,
			AiRecommendations:    true,
			DefaultRestTime:      60,
			DarkMode:             true,
			NotificationsEnabled: true,
		},
		Stats: UserStats{
			StartDate: now,
		},
	}
}
