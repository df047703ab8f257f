package handlers

import (
	"errors"
	"net/http"

	"github.com/Saijayaranjan/among-the-space/internal/models"
	"github.com/Saijayaranjan/among-the-space/internal/services"
	"github.com/gin-gonic/gin"
)

// PassportHandler exposes the progression engine over HTTP. The service is
// injected so there is exactly one owner of the passport record.
type PassportHandler struct {
	passports *services.PassportService
}

func NewPassportHandler(passports *services.PassportService) *PassportHandler {
	return &PassportHandler{passports: passports}
}

type createPassportRequest struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	Photo       string `json:"photo"`
}

// CreatePassport mints the passport. Validation problems come back as
// field-scoped errors; an existing passport is a conflict, never replaced.
func (h *PassportHandler) CreatePassport(c *gin.Context) {
	var req createPassportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	passport, fieldErrs, err := h.passports.Create(req.Name, req.DateOfBirth, req.Photo)
	if err != nil {
		if errors.Is(err, services.ErrPassportExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "A passport already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create passport"})
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}

	c.JSON(http.StatusCreated, passport)
}

// GetPassport returns the record, or 404 when none has been created yet.
func (h *PassportHandler) GetPassport(c *gin.Context) {
	passport := h.passports.Get()
	if passport == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No passport found"})
		return
	}
	c.JSON(http.StatusOK, passport)
}

type updatePassportRequest struct {
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// UpdatePassport edits the mutable profile fields (name, photo).
func (h *PassportHandler) UpdatePassport(c *gin.Context) {
	var req updatePassportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	passport, err := h.passports.Update(req.Name, req.Photo)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, passport)
}

type addExperienceRequest struct {
	Points int `json:"points"`
}

// AddExperience adds XP and re-derives the level.
func (h *PassportHandler) AddExperience(c *gin.Context) {
	var req addExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Points < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Points must not be negative"})
		return
	}

	passport, err := h.passports.AddExperiencePoints(req.Points)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, passport)
}

type addAchievementRequest struct {
	AchievementID string `json:"achievementId"`
}

// AddAchievement unlocks an achievement by id. Unknown ids change nothing
// and still answer 200, matching the engine's unknown-id tolerance.
func (h *PassportHandler) AddAchievement(c *gin.Context) {
	var req addAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AchievementID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "achievementId is required"})
		return
	}

	passport, err := h.passports.AddAchievement(req.AchievementID)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, passport)
}

type exploreDateRequest struct {
	Date string `json:"date"`
}

// RecordExploredDate marks a calendar date as explored.
func (h *PassportHandler) RecordExploredDate(c *gin.Context) {
	var req exploreDateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	passport, err := h.passports.RecordDateExploration(req.Date)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, passport)
}

type realmVisitRequest struct {
	Realm string `json:"realm"`
}

// RecordRealmVisit marks a tracked realm key as visited.
func (h *PassportHandler) RecordRealmVisit(c *gin.Context) {
	var req realmVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Realm == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "realm is required"})
		return
	}

	passport, err := h.passports.RecordRealmVisit(req.Realm)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, passport)
}

// GetUnlockedAchievements lists the unlocked subset in catalog order.
func (h *PassportHandler) GetUnlockedAchievements(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"achievements": h.passports.UnlockedAchievements()})
}

// GetAchievementCatalog lists every defined achievement.
func (h *PassportHandler) GetAchievementCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"achievements": models.Achievements})
}

func (h *PassportHandler) writeMutationError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNoPassport) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No passport found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update passport"})
}
