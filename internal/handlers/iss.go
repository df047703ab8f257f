package handlers

import (
	"net/http"
	"time"

	"github.com/Saijayaranjan/among-the-space/internal/services"
	"github.com/Saijayaranjan/among-the-space/pkg/orbital"
	"github.com/gin-gonic/gin"
)

// ISSHandler serves the station proxy endpoint and the simulated positions.
type ISSHandler struct {
	iss *services.ISSService
}

func NewISSHandler(iss *services.ISSService) *ISSHandler {
	return &ISSHandler{iss: iss}
}

// GetISSPosition answers GET /api/iss-position with the proxy contract:
// string coordinates, Unix timestamp and a status marker. Upstream failure
// yields the zeroed shape with an error marker at a non-success status.
func (h *ISSHandler) GetISSPosition(c *gin.Context) {
	position, err := h.iss.FetchPosition(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, h.iss.ErrorResponse())
		return
	}
	c.JSON(http.StatusOK, position)
}

// GetISSTrack answers GET /api/iss-track with a typed position for the
// orbit widget, simulated when the live feed is down so the display keeps
// moving.
func (h *ISSHandler) GetISSTrack(c *gin.Context) {
	position, live := h.iss.TrackPosition(c.Request.Context())

	source := "live"
	if !live {
		source = "simulated"
	}

	x, y := orbital.OrbitalPosition(position.Latitude, position.Longitude)

	c.JSON(http.StatusOK, gin.H{
		"position": position,
		"orbitView": gin.H{
			"x": x,
			"y": y,
		},
		"source": source,
	})
}

// GetMoonPosition answers GET /api/moon-position with the simulated lunar
// phase and position.
func (h *ISSHandler) GetMoonPosition(c *gin.Context) {
	moon := orbital.SimulatedMoonPosition(time.Now())
	c.JSON(http.StatusOK, moon)
}
