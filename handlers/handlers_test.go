package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cooptaxi/database"
	"cooptaxi/database/kv"
	conversationsRepo "cooptaxi/database/repository/conversations"
	servicesRepo "cooptaxi/database/repository/services"
	settingsRepo "cooptaxi/database/repository/settings"
	"cooptaxi/handlers"
	"cooptaxi/models"
	"cooptaxi/routes"
	"cooptaxi/services/assistant"
	"cooptaxi/services/fleet"
	"cooptaxi/services/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testOwner = "chauffeur@cooptaxi.com"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := kv.NewStore(db)
	settings := settingsRepo.NewKVRepo(store)
	local := servicesRepo.NewLocalBackend(store, testOwner)
	logger := zap.NewNop()

	fleetService := &fleet.DefaultDataService{
		Local:      local,
		Remote:     servicesRepo.NewWebhookBackend(func() string { return "" }, testOwner),
		Settings:   settings,
		OwnerEmail: testOwner,
		Logger:     logger,
	}
	assistantService := &assistant.DefaultAssistant{
		Settings:    settings,
		Fleet:       fleetService,
		Log:         conversationsRepo.NewKVLog(store),
		Completions: assistant.NewCompletionClient(logger),
		OwnerEmail:  testOwner,
		Logger:      logger,
	}

	router := gin.New()
	routes.RegisterRoutes(router, &routes.HandlerBundle{
		Auth:      handlers.NewAuthHandler(&session.DefaultService{}, logger),
		Fleet:     handlers.NewFleetHandler(fleetService, logger),
		Assistant: handlers.NewAssistantHandler(assistantService, logger),
		Settings:  handlers.NewSettingsHandler(settings, logger),
	})
	return router
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"chauffeur@cooptaxi.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var sess models.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	require.NotEmpty(t, sess.Token)
	return sess.Token
}

func TestServicesEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	t.Run("unauthorized without token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/services", nil))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("list seeds demo data", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var records []models.ServiceRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
		require.Len(t, records, 5)
	})

	t.Run("create then delete", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/services",
			strings.NewReader(`{"type":"TCT","amount":"88.00","date":"2026-08-28T07:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		var record models.ServiceRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
		require.NotEmpty(t, record.ID)
		require.Equal(t, testOwner, record.DriverEmail)

		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodDelete, "/api/services/"+record.ID, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("invalid draft rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/services",
			strings.NewReader(`{"type":"Uber","amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSettingsEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var settings models.Settings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	require.Equal(t, models.DefaultSettings(), settings)

	settings.Model = "anthropic/claude-sonnet"
	body, err := json.Marshal(settings)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Settings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "anthropic/claude-sonnet", got.Model)
}

func TestChatEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat/send", strings.NewReader(`{"message":"Bonjour"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var turn models.ConversationTurn
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &turn))
	require.Equal(t, assistant.DemoGreetingReply, turn.AIResponse)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/chat/conversations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var turns []models.ConversationTurn
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &turns))
	require.Len(t, turns, 1)
	require.Equal(t, turn.ID, turns[0].ID)
}
