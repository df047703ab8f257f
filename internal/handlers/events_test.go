package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Saijayaranjan/among-the-space/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func eventsRequest(t *testing.T, h *EventsHandler, month, day string) (*httptest.ResponseRecorder, []byte) {
	w, c := jsonRequest(t, "GET", "/api/events/"+month+"/"+day, nil)
	c.Params = gin.Params{
		{Key: "month", Value: month},
		{Key: "day", Value: day},
	}
	h.GetEventsForDate(c)
	return w, w.Body.Bytes()
}

func TestGetEventsForDate_InvalidMonth(t *testing.T) {
	h := NewEventsHandler(services.NewEventsService("http://127.0.0.1:1"))

	w, _ := eventsRequest(t, h, "13", "5")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = eventsRequest(t, h, "abc", "5")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEventsForDate_InvalidDay(t *testing.T) {
	h := NewEventsHandler(services.NewEventsService("http://127.0.0.1:1"))

	w, _ := eventsRequest(t, h, "7", "32")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = eventsRequest(t, h, "7", "0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEventsForDate_FallbackWhenFeedDown(t *testing.T) {
	h := NewEventsHandler(services.NewEventsService("http://127.0.0.1:1"))

	w, body := eventsRequest(t, h, "7", "20")
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Month  int                   `json:"month"`
		Day    int                   `json:"day"`
		Events []json.RawMessage     `json:"events"`
		Source services.EventsSource `json:"source"`
	}
	assert.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, 7, response.Month)
	assert.Equal(t, 20, response.Day)
	assert.Equal(t, services.EventsSourceFallback, response.Source)
	assert.Len(t, response.Events, 3)
}
