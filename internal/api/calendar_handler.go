package api

import (
	"net/http"

	"fittrack/internal/domain"
	"fittrack/internal/store"

	"github.com/gin-gonic/gin"
)

// CalendarHandler exposes scheduled events.
type CalendarHandler struct {
	store *store.Store
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(s *store.Store) *CalendarHandler {
	return &CalendarHandler{store: s}
}

// ListEvents returns every calendar event.
func (h *CalendarHandler) ListEvents(c *gin.Context) {
	events := h.store.Snapshot().Events
	if events == nil {
		events = []domain.CalendarEvent{}
	}
	c.JSON(http.StatusOK, events)
}
