package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"manasfit-be/internal/pkg/logger"
	"manasfit-be/internal/pkg/serverutils"
	"manasfit-be/internal/repository/chatstore"
	"manasfit-be/internal/repository/local"
	"manasfit-be/internal/service"
	"manasfit-be/pkg/kvstore"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "controller-test-secret"

type testEnv struct {
	app  *fiber.App
	chat service.IChatService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	store := kvstore.NewMemoryStore()
	keys := local.NewKeys("")
	prefs := local.NewPreferenceStore(store, keys)
	log := logger.NewNopLogger()

	storage, err := chatstore.New(chatstore.StorageTypeLocal, chatstore.Deps{
		Local:  chatstore.NewLocalStorage(store, keys),
		Logger: log,
	})
	require.NoError(t, err)

	chatService := service.NewChatService(storage, nil, nil, nil, log, service.ChatServiceConfig{})
	t.Cleanup(chatService.Close)
	companionService := service.NewCompanionService(nil, prefs, log)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewChatController(chatService, companionService).RegisterRoutes(api)
	NewWellnessController(service.NewWellnessService(nil, prefs, log)).RegisterRoutes(api)
	NewCompanionController(companionService).RegisterRoutes(api)
	NewPreferenceController(service.NewPreferenceService(prefs)).RegisterRoutes(api)
	NewSystemController(chatService, log).RegisterRoutes(api)

	return &testEnv{app: app, chat: chatService}
}

func bearer(t *testing.T, userId string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do sends body as JSON when it is not nil and decodes the envelope.
func (e *testEnv) do(t *testing.T, method, path, userId string, body interface{}) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userId != "" {
		req.Header.Set("Authorization", bearer(t, userId))
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

