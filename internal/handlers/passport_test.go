package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Saijayaranjan/among-the-space/internal/models"
	"github.com/Saijayaranjan/among-the-space/internal/services"
	"github.com/Saijayaranjan/among-the-space/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestService initializes an in-memory SQLite store and the engine
func setupTestService(t *testing.T) *services.PassportService {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Passport{}))

	return services.NewPassportService(db)
}

func jsonRequest(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	c.Request, _ = http.NewRequest(method, path, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestCreatePassport_EndToEnd(t *testing.T) {
	h := NewPassportHandler(setupTestService(t))

	w, c := jsonRequest(t, "POST", "/api/passport", gin.H{
		"name":        "Ada",
		"dateOfBirth": "1990-12-10",
	})
	h.CreatePassport(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var passport models.Passport
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &passport))
	assert.Equal(t, "Ada", passport.Name)
	assert.Equal(t, 1, passport.Level)
	assert.Equal(t, 10, passport.ExperiencePoints)
	assert.Equal(t, models.StringSet{models.AchievementInitiate}, passport.Achievements)
	assert.True(t, utils.IsCosmicID(passport.CosmicID), "cosmic id %q", passport.CosmicID)
}

func TestCreatePassport_FieldErrors(t *testing.T) {
	h := NewPassportHandler(setupTestService(t))

	w, c := jsonRequest(t, "POST", "/api/passport", gin.H{
		"name":        "A",
		"dateOfBirth": "",
	})
	h.CreatePassport(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Errors map[string]string `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Errors, "name")
	assert.Contains(t, response.Errors, "dateOfBirth")
}

func TestCreatePassport_Conflict(t *testing.T) {
	svc := setupTestService(t)
	h := NewPassportHandler(svc)

	_, _, err := svc.Create("Ada", "1990-12-10", "")
	assert.NoError(t, err)

	w, c := jsonRequest(t, "POST", "/api/passport", gin.H{
		"name":        "Grace",
		"dateOfBirth": "1985-06-01",
	})
	h.CreatePassport(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetPassport_NotFound(t *testing.T) {
	h := NewPassportHandler(setupTestService(t))

	w, c := jsonRequest(t, "GET", "/api/passport", nil)
	h.GetPassport(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddExperience(t *testing.T) {
	svc := setupTestService(t)
	h := NewPassportHandler(svc)
	_, _, err := svc.Create("Ada", "1990-12-10", "")
	assert.NoError(t, err)

	w, c := jsonRequest(t, "POST", "/api/passport/experience", gin.H{"points": 5})
	h.AddExperience(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var passport models.Passport
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &passport))
	assert.Equal(t, 15, passport.ExperiencePoints)
}

func TestAddExperience_NegativeRejected(t *testing.T) {
	svc := setupTestService(t)
	h := NewPassportHandler(svc)
	_, _, err := svc.Create("Ada", "1990-12-10", "")
	assert.NoError(t, err)

	w, c := jsonRequest(t, "POST", "/api/passport/experience", gin.H{"points": -5})
	h.AddExperience(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 10, svc.Get().ExperiencePoints)
}

func TestAddExperience_NoPassport(t *testing.T) {
	h := NewPassportHandler(setupTestService(t))

	w, c := jsonRequest(t, "POST", "/api/passport/experience", gin.H{"points": 5})
	h.AddExperience(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddAchievement_UnknownIDStillOK(t *testing.T) {
	svc := setupTestService(t)
	h := NewPassportHandler(svc)
	_, _, err := svc.Create("Ada", "1990-12-10", "")
	assert.NoError(t, err)

	w, c := jsonRequest(t, "POST", "/api/passport/achievements", gin.H{"achievementId": "warp-drive"})
	h.AddAchievement(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, svc.Get().ExperiencePoints)
}

func TestGetAchievementCatalog(t *testing.T) {
	h := NewPassportHandler(setupTestService(t))

	w, c := jsonRequest(t, "GET", "/api/achievements", nil)
	h.GetAchievementCatalog(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Achievements []models.Achievement `json:"achievements"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Achievements, len(models.Achievements))
}
