package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestListRealms(t *testing.T) {
	h := NewRealmsHandler(setupTestService(t))

	w, c := jsonRequest(t, "GET", "/api/realms", nil)
	h.ListRealms(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Realms []struct {
			ID string `json:"id"`
		} `json:"realms"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Realms, 5)
	assert.Equal(t, "distant-galaxies", response.Realms[0].ID)
}

func TestGetRealm_Unknown(t *testing.T) {
	h := NewRealmsHandler(setupTestService(t))

	w, c := jsonRequest(t, "GET", "/api/realms/atlantis", nil)
	c.Params = gin.Params{{Key: "id", Value: "atlantis"}}
	h.GetRealm(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func visitRealm(t *testing.T, h *RealmsHandler, realmID string) (int, map[string]json.RawMessage) {
	w, c := jsonRequest(t, "POST", "/api/realms/"+realmID+"/visit", nil)
	c.Params = gin.Params{{Key: "id", Value: realmID}}
	h.VisitRealm(c)

	var body map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestVisitRealm_Tracked(t *testing.T) {
	svc := setupTestService(t)
	h := NewRealmsHandler(svc)
	_, _, err := svc.Create("Ada", "1990-12-10", "")
	assert.NoError(t, err)

	code, body := visitRealm(t, h, "distant-galaxies")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, "true", string(body["tracked"]))

	passport := svc.Get()
	assert.Contains(t, passport.VisitedRealms, "galaxies")
}

func TestVisitRealm_UntrackedCategory(t *testing.T) {
	svc := setupTestService(t)
	h := NewRealmsHandler(svc)
	_, _, err := svc.Create("Ada", "1990-12-10", "")
	assert.NoError(t, err)

	// space-missions has no tracking key; the visit succeeds but does not
	// touch progression
	code, body := visitRealm(t, h, "space-missions")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, "false", string(body["tracked"]))
	assert.Empty(t, svc.Get().VisitedRealms)
}

func TestVisitRealm_NoPassport(t *testing.T) {
	h := NewRealmsHandler(setupTestService(t))

	code, body := visitRealm(t, h, "star-systems")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, "false", string(body["tracked"]))
}

func TestVisitRealm_Unknown(t *testing.T) {
	h := NewRealmsHandler(setupTestService(t))

	code, _ := visitRealm(t, h, "atlantis")
	assert.Equal(t, http.StatusNotFound, code)
}
