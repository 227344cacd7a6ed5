package api

import (
	"net/http"

	"fittrack/internal/domain"
	"fittrack/internal/service"
	"fittrack/internal/store"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler exposes the canned recommendation collaborator.
type RecommendationHandler struct {
	recommendations service.RecommendationService
	store           *store.Store
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendations service.RecommendationService, s *store.Store) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations, store: s}
}

// ProgressionRequest defines the expected JSON for a progression suggestion.
type ProgressionRequest struct {
	Name   string  `json:"name" binding:"required"`
	Sets   int     `json:"sets" binding:"required,min=1"`
	Reps   int     `json:"reps" binding:"required,min=1"`
	Weight float64 `json:"weight" binding:"min=0"`
}

// GetWorkoutRecommendations returns recommendations for the stored goal,
// personalized by session history. Respects the AI-recommendations toggle.
func (h *RecommendationHandler) GetWorkoutRecommendations(c *gin.Context) {
	snap := h.store.Snapshot()
	if !snap.Profile.Preferences.AiRecommendations {
		c.JSON(http.StatusOK, []domain.AiRecommendation{})
		return
	}
	recs := h.recommendations.GetWorkoutRecommendations(snap.Profile.Goal, snap.Sessions, snap.Workouts)
	c.JSON(http.StatusOK, recs)
}

// GetExerciseRecommendations returns suggested exercises for the stored goal.
func (h *RecommendationHandler) GetExerciseRecommendations(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, h.recommendations.GetExerciseRecommendations(snap.Profile.Goal))
}

// SuggestProgression returns a next-step suggestion for one exercise.
func (h *RecommendationHandler) SuggestProgression(c *gin.Context) {
	var req ProgressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	progression := h.recommendations.SuggestProgression(domain.Exercise{
		Name:   req.Name,
		Sets:   req.Sets,
		Reps:   req.Reps,
		Weight: req.Weight,
	})
	c.JSON(http.StatusOK, progression)
}
