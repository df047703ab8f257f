package handlers

import (
	"net/http"
	"strconv"

	"github.com/Saijayaranjan/among-the-space/internal/services"
	"github.com/gin-gonic/gin"
)

// EventsHandler serves historical space events for a calendar date.
type EventsHandler struct {
	events *services.EventsService
}

func NewEventsHandler(events *services.EventsService) *EventsHandler {
	return &EventsHandler{events: events}
}

// GetEventsForDate answers GET /api/events/:month/:day. The gateway never
// fails hard: upstream trouble degrades to the fallback set, and the
// "source" field says which path produced the result.
func (h *EventsHandler) GetEventsForDate(c *gin.Context) {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
		return
	}

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 || day > 31 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day must be between 1 and 31"})
		return
	}

	result := h.events.FetchSpaceEvents(c.Request.Context(), month, day)

	c.JSON(http.StatusOK, gin.H{
		"month":  month,
		"day":    day,
		"events": result.Events,
		"source": result.Source,
	})
}
