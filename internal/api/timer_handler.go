package api

import (
	"log"
	"net/http"
	"time"

	"fittrack/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TimerHandler exposes the rest-timer operations and a live feed for the
// countdown widget.
type TimerHandler struct {
	store    *store.Store
	upgrader websocket.Upgrader
}

// NewTimerHandler creates a new TimerHandler.
func NewTimerHandler(s *store.Store) *TimerHandler {
	return &TimerHandler{
		store: s,
		upgrader: websocket.Upgrader{
			// Local single-user app; the API is already open to any origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// StartTimerRequest defines the expected JSON for starting a countdown.
type StartTimerRequest struct {
	Seconds int `json:"seconds" binding:"required,min=1"`
}

// TimerStatusResponse is the timer snapshot sent over REST and websocket.
type TimerStatusResponse struct {
	ActiveSeconds *int `json:"activeSeconds"`
	IsRunning     bool `json:"isRunning"`
}

func (h *TimerHandler) status() TimerStatusResponse {
	seconds, running := h.store.TimerState()
	return TimerStatusResponse{ActiveSeconds: seconds, IsRunning: running}
}

// GetStatus returns the current timer snapshot.
func (h *TimerHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.status())
}

// StartTimer begins a countdown, replacing any countdown in flight.
func (h *TimerHandler) StartTimer(c *gin.Context) {
	var req StartTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	h.store.StartTimer(req.Seconds)
	c.JSON(http.StatusOK, h.status())
}

// PauseTimer freezes the countdown.
func (h *TimerHandler) PauseTimer(c *gin.Context) {
	h.store.PauseTimer()
	c.JSON(http.StatusOK, h.status())
}

// ResetTimer stops and clears the countdown.
func (h *TimerHandler) ResetTimer(c *gin.Context) {
	h.store.ResetTimer()
	c.JSON(http.StatusOK, h.status())
}

// StreamTimer upgrades to a websocket and pushes the timer snapshot once a
// second until the client goes away. The feed is read-only; control stays
// on the REST endpoints.
func (h *TimerHandler) StreamTimer(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ERROR: timer websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		if err := conn.WriteJSON(h.status()); err != nil {
			return
		}
		<-ticker.C
	}
}
