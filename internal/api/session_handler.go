package api

import (
	"net/http"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/store"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the completed-session history.
type SessionHandler struct {
	store *store.Store
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(s *store.Store) *SessionHandler {
	return &SessionHandler{store: s}
}

// AddSessionRequest defines the expected JSON for recording a finished
// session. The presentation layer drives the workout run and posts the
// result here; the id is assigned by the store.
type AddSessionRequest struct {
	WorkoutID string                     `json:"workoutId" binding:"required"`
	Date      time.Time                  `json:"date" binding:"required"`
	Completed bool                       `json:"completed"`
	Exercises []domain.CompletedExercise `json:"exercises" binding:"required"`
	Duration  int                        `json:"duration"`
	Calories  int                        `json:"calories"`
	Notes     string                     `json:"notes"`
}

// ListSessions returns the full session history.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions := h.store.Snapshot().Sessions
	if sessions == nil {
		sessions = []domain.WorkoutSession{}
	}
	c.JSON(http.StatusOK, sessions)
}

// AddSession appends a session record and accumulates profile stats.
func (h *SessionHandler) AddSession(c *gin.Context) {
	var req AddSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if req.Duration < 0 || req.Calories < 0 {
		abortWithError(c, http.StatusBadRequest, "Duration and calories must not be negative")
		return
	}

	id := h.store.AddSession(domain.WorkoutSession{
		WorkoutID: req.WorkoutID,
		Date:      req.Date,
		Completed: req.Completed,
		Exercises: req.Exercises,
		Duration:  req.Duration,
		Calories:  req.Calories,
		Notes:     req.Notes,
	})
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
