package controller

import (
	"net/http"
	"testing"

	"manasfit-be/internal/dto"
	"manasfit-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceController_Theme(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.do(t, http.MethodGet, "/api/preferences/v1/theme", "U1", nil)
	require.Equal(t, http.StatusOK, status)
	var theme dto.ThemeResponse
	decodeData(t, body, &theme)
	assert.Equal(t, "light", theme.Theme)

	status, _ = env.do(t, http.MethodPut, "/api/preferences/v1/theme", "U1", map[string]string{"theme": "sepia"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = env.do(t, http.MethodPut, "/api/preferences/v1/theme", "U1", map[string]string{"theme": "dark"})
	require.Equal(t, http.StatusOK, status)

	status, body = env.do(t, http.MethodGet, "/api/preferences/v1/theme", "U1", nil)
	require.Equal(t, http.StatusOK, status)
	decodeData(t, body, &theme)
	assert.Equal(t, "dark", theme.Theme)
}

func TestPreferenceController_Pet(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodGet, "/api/preferences/v1/pet", "U1", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = env.do(t, http.MethodPut, "/api/preferences/v1/pet", "U1", map[string]string{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := env.do(t, http.MethodPut, "/api/preferences/v1/pet", "U1", map[string]string{"name": "Momo", "imageKey": "pet2"})
	require.Equal(t, http.StatusOK, status)
	var pet entity.PetProfile
	decodeData(t, body, &pet)
	assert.Equal(t, "Momo", pet.Name)
	assert.Equal(t, entity.PetImageTwo, pet.ImageKey)
	assert.Equal(t, "neutral", pet.Mood)
}
