package service

import (
	_ "embed"
	"fmt"
	"math"
	"math/rand"
	"time"

	"fittrack/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed recommendations.yaml
var recommendationCatalogYAML []byte

// Thresholds mirroring the original selection rules.
const (
	consistentSessionCount = 3
	maxRecommendations     = 3
	crossGoalSuggestions   = 2
	bodyweightRepCap       = 30
)

// RecommendationService produces canned recommendation text keyed by goal.
// There is no inference: selection is table lookup plus history heuristics,
// with randomized shuffling. Callers must not assume stable ordering across
// calls; pass a seeded source to make it deterministic.
type RecommendationService interface {
	GetWorkoutRecommendations(goal domain.UserGoal, history []domain.WorkoutSession, catalog []domain.Workout) []domain.AiRecommendation
	GetExerciseRecommendations(goal domain.UserGoal) []domain.ExerciseSuggestion
	SuggestProgression(exercise domain.Exercise) domain.Progression
}

// recommendationCatalog is the embedded YAML catalog.
type recommendationCatalog struct {
	WorkoutRecommendations map[domain.UserGoal][]domain.AiRecommendation `yaml:"workout_recommendations"`
	History                struct {
		Consistency     domain.AiRecommendation `yaml:"consistency"`
		MissingStrength domain.AiRecommendation `yaml:"missing_strength"`
		MissingCardio   domain.AiRecommendation `yaml:"missing_cardio"`
		NewUser         domain.AiRecommendation `yaml:"new_user"`
	} `yaml:"history"`
	ExerciseSuggestions map[domain.UserGoal][]domain.ExerciseSuggestion `yaml:"exercise_suggestions"`
}

type recommendationService struct {
	catalog recommendationCatalog
	rng     *rand.Rand
}

// NewRecommendationService parses the embedded catalog. A nil rng gets a
// time-seeded source; tests pass a fixed seed for deterministic ordering.
func NewRecommendationService(rng *rand.Rand) (RecommendationService, error) {
	var cat recommendationCatalog
	if err := yaml.Unmarshal(recommendationCatalogYAML, &cat); err != nil {
		return nil, fmt.Errorf("parse recommendation catalog: %w", err)
	}
	for _, goal := range domain.AllGoals {
		if len(cat.WorkoutRecommendations[goal]) == 0 {
			return nil, fmt.Errorf("recommendation catalog has no workout entries for goal %q", goal)
		}
		if len(cat.ExerciseSuggestions[goal]) == 0 {
			return nil, fmt.Errorf("recommendation catalog has no exercise entries for goal %q", goal)
		}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &recommendationService{catalog: cat, rng: rng}, nil
}

// GetWorkoutRecommendations returns up to three recommendations: the goal's
// base entries plus history-driven extras, shuffled. The workout catalog is
// part of the collaborator contract but the current rules only consult the
// session history.
func (s *recommendationService) GetWorkoutRecommendations(goal domain.UserGoal, history []domain.WorkoutSession, catalog []domain.Workout) []domain.AiRecommendation {
	recommendations := append([]domain.AiRecommendation(nil), s.catalog.WorkoutRecommendations[goal]...)

	if len(history) == 0 {
		recommendations = append(recommendations, s.catalog.History.NewUser)
	} else {
		if len(history) >= consistentSessionCount {
			recommendations = append(recommendations, s.catalog.History.Consistency)
		}

		seen := map[domain.ExerciseCategory]bool{}
		for _, session := range history {
			for _, ex := range session.Exercises {
				seen[ex.Category] = true
			}
		}
		if !seen[domain.CategoryStrength] {
			recommendations = append(recommendations, s.catalog.History.MissingStrength)
		}
		if !seen[domain.CategoryCardio] {
			recommendations = append(recommendations, s.catalog.History.MissingCardio)
		}
	}

	s.rng.Shuffle(len(recommendations), func(i, j int) {
		recommendations[i], recommendations[j] = recommendations[j], recommendations[i]
	})
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

// GetExerciseRecommendations returns the goal's suggested exercises plus a
// couple from a randomly chosen other goal for variety.
func (s *recommendationService) GetExerciseRecommendations(goal domain.UserGoal) []domain.ExerciseSuggestion {
	suggestions := append([]domain.ExerciseSuggestion(nil), s.catalog.ExerciseSuggestions[goal]...)

	others := make([]domain.UserGoal, 0, len(domain.AllGoals)-1)
	for _, g := range domain.AllGoals {
		if g != goal {
			others = append(others, g)
		}
	}
	extra := s.catalog.ExerciseSuggestions[others[s.rng.Intn(len(others))]]
	if len(extra) > crossGoalSuggestions {
		extra = extra[:crossGoalSuggestions]
	}
	return append(suggestions, extra...)
}

// SuggestProgression proposes the next step for an exercise: bodyweight work
// progresses by reps (capped), weighted work by a coin flip between a small
// weight bump and one more rep.
func (s *recommendationService) SuggestProgression(exercise domain.Exercise) domain.Progression {
	if exercise.Weight == 0 {
		return domain.Progression{
			Sets:   exercise.Sets,
			Reps:   min(exercise.Reps+2, bodyweightRepCap),
			Weight: 0,
		}
	}

	if s.rng.Float64() > 0.5 {
		increased := exercise.Weight * 1.05
		return domain.Progression{
			Sets:   exercise.Sets,
			Reps:   exercise.Reps,
			Weight: math.Round(increased*10) / 10,
		}
	}
	return domain.Progression{
		Sets:   exercise.Sets,
		Reps:   exercise.Reps + 1,
		Weight: exercise.Weight,
	}
}
