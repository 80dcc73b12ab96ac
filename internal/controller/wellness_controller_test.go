package controller

import (
	"net/http"
	"testing"

	"manasfit-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWellnessController_Profile(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodGet, "/api/wellness/v1/profile", "U1", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body := env.do(t, http.MethodPut, "/api/wellness/v1/profile", "U1", map[string]interface{}{
		"sleep_schedule": "regular",
		"stress_level":   4,
		"sleep_issues":   []string{"waking_up"},
	})
	require.Equal(t, http.StatusOK, status)
	var profile dto.WellnessProfileResponse
	decodeData(t, body, &profile)
	assert.Equal(t, "U1", profile.UserId)
	assert.Equal(t, 10, profile.CompletionPercentage)
	assert.False(t, profile.IsCompleted)

	status, body = env.do(t, http.MethodGet, "/api/wellness/v1/profile/completed", "U1", nil)
	require.Equal(t, http.StatusOK, status)
	var completed dto.ProfileCompletedResponse
	decodeData(t, body, &completed)
	assert.False(t, completed.Completed)

	status, _ = env.do(t, http.MethodPut, "/api/wellness/v1/profile", "U1", map[string]interface{}{"stress_level": 11})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = env.do(t, http.MethodDelete, "/api/wellness/v1/profile", "U1", nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = env.do(t, http.MethodGet, "/api/wellness/v1/profile", "U1", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestWellnessController_Entries(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodPost, "/api/wellness/v1/entries", "U1", map[string]interface{}{"mood_score": 7})
	require.Equal(t, http.StatusOK, status)

	status, _ = env.do(t, http.MethodPost, "/api/wellness/v1/entries", "U1", map[string]interface{}{"entry_date": "19-10-2026"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := env.do(t, http.MethodGet, "/api/wellness/v1/entries?days=7", "U1", nil)
	require.Equal(t, http.StatusOK, status)
	var entries []dto.WellnessEntryResponse
	decodeData(t, body, &entries)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].MoodScore)
	assert.Equal(t, 7, *entries[0].MoodScore)
}
