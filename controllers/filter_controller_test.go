package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"PaiDeFerro/repositories/memory"
	"PaiDeFerro/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFilterTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	policies, err := services.NewPolicyService(memory.NewPolicyStore())
	require.NoError(t, err)
	SetPolicyService(policies)
	SetFilterService(services.NewFilterService(policies))

	router := gin.New()
	router.POST("/filter", FilterText)
	router.POST("/check-content", CheckContent)
	router.GET("/verificar_acesso", CheckAccess)
	router.POST("/atualizar_config", UpdateConfig)
	return router
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFilterTextBannedWord(t *testing.T) {
	router := setupFilterTestRouter(t)

	w := postJSON(router, "/filter", gin.H{"text": "isso é proibido aqui"})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["allowed"])
}

func TestFilterTextClean(t *testing.T) {
	router := setupFilterTestRouter(t)

	w := postJSON(router, "/filter", gin.H{"text": "uma frase qualquer"})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["allowed"])
}

func TestCheckContentBlocked(t *testing.T) {
	router := setupFilterTestRouter(t)

	w := postJSON(router, "/check-content", gin.H{"text": "site de porn na escola"})
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Allowed      bool     `json:"allowed"`
		Reason       string   `json:"reason"`
		BlockedWords []string `json:"blocked_words"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Allowed)
	assert.Equal(t, "Conteúdo bloqueado", response.Reason)
	assert.Contains(t, response.BlockedWords, "porn")
}

func TestCheckContentAllowed(t *testing.T) {
	router := setupFilterTestRouter(t)

	w := postJSON(router, "/check-content", gin.H{"text": "aula de ciencias amanha"})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["allowed"])
	assert.Equal(t, "Conteúdo permitido", response["reason"])
}

func TestCheckContentMissingText(t *testing.T) {
	router := setupFilterTestRouter(t)

	w := postJSON(router, "/check-content", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckAccessMissingDayAndTime(t *testing.T) {
	router := setupFilterTestRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/verificar_acesso?categoria=jogos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Dia e horário são obrigatórios", response["error"])
}

func TestCheckAccessBlockedOutsideWindow(t *testing.T) {
	router := setupFilterTestRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/verificar_acesso?dia=segunda-feira&horario=23:00", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "bloqueado", response["acesso"])
	assert.Equal(t, "fora do horário permitido", response["motivo"])
}

func TestCheckAccessAllowed(t *testing.T) {
	router := setupFilterTestRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/verificar_acesso?dia=segunda-feira&horario=10:00&categoria=educacao", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "permitido", response["acesso"])
}

func TestUpdateConfigTakesEffectImmediately(t *testing.T) {
	router := setupFilterTestRouter(t)

	// Default schedule has no terça-feira window.
	req, _ := http.NewRequest(http.MethodGet, "/verificar_acesso?dia=terça-feira&horario=10:00", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var before map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &before))
	assert.Equal(t, "bloqueado", before["acesso"])

	w = postJSON(router, "/atualizar_config", gin.H{
		"blocked_categories": []string{"drogas"},
		"blocked_keywords":   []string{"porn"},
		"blocked_domains":    []string{"exampleporn.com"},
		"allowed_categories": []string{"educacao"},
		"schedule": []gin.H{
			{"day": "terça-feira", "start_hour": "08:00", "end_hour": "20:00", "allowed": true},
		},
		"permissions":  gin.H{"admin_override": true, "temporary_access": false},
		"restrictions": gin.H{"max_daily_usage": "2h", "block_unapproved_sites": true},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// The very next check runs against the new configuration.
	req, _ = http.NewRequest(http.MethodGet, "/verificar_acesso?dia=terça-feira&horario=10:00", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var after map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
	assert.Equal(t, "permitido", after["acesso"])
}

func TestUpdateConfigRejectsIncompletePayload(t *testing.T) {
	router := setupFilterTestRouter(t)

	w := postJSON(router, "/atualizar_config", gin.H{"blocked_categories": []string{"drogas"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
