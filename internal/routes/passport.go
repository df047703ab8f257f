package routes

import (
	"github.com/Saijayaranjan/among-the-space/internal/handlers"
	"github.com/gin-gonic/gin"
)

func RegisterPassportRoutes(r gin.IRouter, h *handlers.PassportHandler) {
	passport := r.Group("/passport")
	{
		passport.POST("", h.CreatePassport)
		passport.GET("", h.GetPassport)
		passport.PUT("", h.UpdatePassport)

		passport.POST("/experience", h.AddExperience)
		passport.POST("/achievements", h.AddAchievement)
		passport.GET("/achievements", h.GetUnlockedAchievements)
		passport.POST("/explored-dates", h.RecordExploredDate)
		passport.POST("/realm-visits", h.RecordRealmVisit)
	}

	// Full catalog is public and static
	r.GET("/achievements", h.GetAchievementCatalog)
}
