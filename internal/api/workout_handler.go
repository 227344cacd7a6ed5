package api

import (
	"errors"
	"net/http"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/service"
	"fittrack/internal/store"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler exposes the workout catalog and scheduling.
type WorkoutHandler struct {
	workoutService service.WorkoutService
	store          *store.Store
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService, s *store.Store) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService, store: s}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateWorkoutRequest defines the expected JSON for authoring a workout.
// Duration and calories are estimated server-side, ids assigned by the store.
type CreateWorkoutRequest struct {
	Name      string            `json:"name" binding:"required"`
	Exercises []domain.Exercise `json:"exercises" binding:"required"`
}

// ScheduleWorkoutRequest defines the expected JSON for scheduling.
type ScheduleWorkoutRequest struct {
	Date time.Time `json:"date" binding:"required"`
}

// --- Handler Methods ---

// ListWorkouts returns the full catalog.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().Workouts)
}

// GetWorkout returns one workout by id.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, ok := h.store.Workout(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, "Workout not found")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// CreateWorkout validates and adds a workout to the catalog.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.CreateWorkout(req.Name, req.Exercises)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create workout")
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// UpdateWorkout merges partial fields into an existing workout.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var patch domain.WorkoutPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.UpdateWorkout(c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, "Workout not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout")
		}
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout removes a workout and its calendar events. Deleting an
// already-deleted workout still returns 204.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	h.workoutService.DeleteWorkout(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// ScheduleWorkout adds a calendar event for the workout.
func (h *WorkoutHandler) ScheduleWorkout(c *gin.Context) {
	var req ScheduleWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.ScheduleWorkout(c.Param("id"), req.Date)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to schedule workout")
		return
	}
	c.JSON(http.StatusOK, workout)
}
