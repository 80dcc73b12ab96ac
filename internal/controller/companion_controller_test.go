package controller

import (
	"net/http"
	"testing"

	"manasfit-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanionController_Selection(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodGet, "/api/companion/v1/selection", "U1", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = env.do(t, http.MethodPut, "/api/companion/v1/selection", "U1", map[string]string{"type": "pet"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := env.do(t, http.MethodPut, "/api/companion/v1/selection", "U1", map[string]string{
		"type":           "pet",
		"character":      "fox",
		"companion_type": "mentor",
	})
	require.Equal(t, http.StatusOK, status)
	var res dto.CompanionSelectionResponse
	decodeData(t, body, &res)
	assert.Equal(t, "fox", res.Character)
	assert.Empty(t, res.CompanionType)
	assert.Equal(t, "buddy", res.ActiveMode)

	status, body = env.do(t, http.MethodGet, "/api/companion/v1/selection", "U1", nil)
	require.Equal(t, http.StatusOK, status)
	decodeData(t, body, &res)
	assert.Equal(t, "pet", res.Type)
}

func TestChatController_UsesStoredCompanion(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodPut, "/api/companion/v1/selection", "U1", map[string]string{
		"type":           "companion",
		"companion_type": "fitness_trainer",
	})
	require.Equal(t, http.StatusOK, status)

	status, body := env.do(t, http.MethodPost, "/api/chat/v1/send", "U1", map[string]interface{}{
		"session_id": "S1",
		"content":    "What workout should I do?",
	})
	require.Equal(t, http.StatusOK, status)
	var res dto.SendMessageResponse
	decodeData(t, body, &res)
	assert.Equal(t, "fitness_trainer", res.Message.Metadata.CompanionMode)
}
