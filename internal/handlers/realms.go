package handlers

import (
	"errors"
	"net/http"

	"github.com/Saijayaranjan/among-the-space/internal/models"
	"github.com/Saijayaranjan/among-the-space/internal/services"
	"github.com/gin-gonic/gin"
)

// RealmsHandler serves the static realm catalog and records realm visits
// against the passport.
type RealmsHandler struct {
	passports *services.PassportService
}

func NewRealmsHandler(passports *services.PassportService) *RealmsHandler {
	return &RealmsHandler{passports: passports}
}

// ListRealms answers GET /api/realms with the full catalog.
func (h *RealmsHandler) ListRealms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"realms": models.Realms})
}

// GetRealm answers GET /api/realms/:id.
func (h *RealmsHandler) GetRealm(c *gin.Context) {
	realm := models.RealmByID(c.Param("id"))
	if realm == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Realm not found"})
		return
	}
	c.JSON(http.StatusOK, realm)
}

// VisitRealm answers POST /api/realms/:id/visit. Only realms with a mapped
// tracking key count toward progression; the rest answer tracked=false,
// as does a visit without a passport.
func (h *RealmsHandler) VisitRealm(c *gin.Context) {
	realmID := c.Param("id")
	if models.RealmByID(realmID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Realm not found"})
		return
	}

	key := models.TrackedRealmKey(realmID)
	if key == "" {
		c.JSON(http.StatusOK, gin.H{"tracked": false})
		return
	}

	passport, err := h.passports.RecordRealmVisit(key)
	if err != nil {
		if errors.Is(err, services.ErrNoPassport) {
			c.JSON(http.StatusOK, gin.H{"tracked": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record realm visit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tracked": true, "passport": passport})
}
