package api

import (
	"net/http"

	"fittrack/internal/domain"
	"fittrack/internal/store"

	"github.com/gin-gonic/gin"
)

// ProfileHandler exposes the user profile, preferences and goal.
type ProfileHandler struct {
	store *store.Store
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(s *store.Store) *ProfileHandler {
	return &ProfileHandler{store: s}
}

// UpdateGoalRequest defines the expected JSON for setting the goal.
type UpdateGoalRequest struct {
	Goal domain.UserGoal `json:"goal" binding:"required"`
}

// GetProfile returns the full profile including stats.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().Profile)
}

// UpdateProfile merges the supplied profile fields.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var patch domain.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if patch.Goal != nil && !patch.Goal.Valid() {
		abortWithError(c, http.StatusBadRequest, "Invalid goal: "+string(*patch.Goal))
		return
	}

	h.store.UpdateProfile(patch)
	c.JSON(http.StatusOK, h.store.Snapshot().Profile)
}

// UpdatePreferences merges the supplied preference fields.
func (h *ProfileHandler) UpdatePreferences(c *gin.Context) {
	var patch domain.PreferencesPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if patch.WeightUnit != nil && !patch.WeightUnit.Valid() {
		abortWithError(c, http.StatusBadRequest, "Invalid weight unit: "+string(*patch.WeightUnit))
		return
	}
	if patch.DefaultRestTime != nil && *patch.DefaultRestTime < 0 {
		abortWithError(c, http.StatusBadRequest, "Default rest time must not be negative")
		return
	}

	h.store.UpdatePreferences(patch)
	c.JSON(http.StatusOK, h.store.Snapshot().Profile.Preferences)
}

// UpdateGoal sets the training goal.
func (h *ProfileHandler) UpdateGoal(c *gin.Context) {
	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if !req.Goal.Valid() {
		abortWithError(c, http.StatusBadRequest, "Invalid goal: "+string(req.Goal))
		return
	}

	h.store.UpdateGoal(req.Goal)
	c.JSON(http.StatusOK, h.store.Snapshot().Profile)
}
