package routes

import (
	"github.com/Saijayaranjan/among-the-space/internal/handlers"
	"github.com/Saijayaranjan/among-the-space/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRealmRoutes(r gin.IRouter, h *handlers.RealmsHandler) {
	realms := r.Group("/realms")
	{
		realms.GET("", h.ListRealms)
		realms.GET("/:id", h.GetRealm)
		realms.POST("/:id/visit", h.VisitRealm)
	}
}

// RegisterFeedRoutes wires the endpoints backed by external feeds. They get
// their own tighter rate limit to spare the upstreams.
func RegisterFeedRoutes(r gin.IRouter, events *handlers.EventsHandler, iss *handlers.ISSHandler) {
	feeds := r.Group("")
	feeds.Use(middleware.UpstreamRateLimit())
	{
		feeds.GET("/events/:month/:day", events.GetEventsForDate)
		feeds.GET("/iss-position", iss.GetISSPosition)
		feeds.GET("/iss-track", iss.GetISSTrack)
	}

	// Pure simulation, no upstream involved
	r.GET("/moon-position", iss.GetMoonPosition)
}
