package mapper

import (
	"testing"
	"time"

	"manasfit-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSessionRoundTrip_ContextAndDeletion(t *testing.T) {
	m := NewChatMapper()
	deleted := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	in := &entity.ChatSession{
		Id:          "S1",
		UserId:      "U1",
		SessionName: "Test",
		SessionType: entity.SessionTypeWellness,
		Context:     entity.SessionContext{Tags: []string{"sleep"}, Summary: "late nights"},
		IsActive:    true,
		DeletedAt:   &deleted,
	}

	mod := m.ChatSessionToModel(in)
	assert.JSONEq(t, `{"tags":["sleep"],"summary":"late nights"}`, string(mod.ContextData))
	assert.True(t, mod.DeletedAt.Valid)

	out := m.ChatSessionToEntity(mod)
	assert.Equal(t, in.Context, out.Context)
	require.NotNil(t, out.DeletedAt)
	assert.True(t, deleted.Equal(*out.DeletedAt))
}

func TestChatMessage_EmptyMetadataIsNull(t *testing.T) {
	m := NewChatMapper()
	mod := m.ChatMessageToModel(&entity.ChatMessage{Id: "m1", Role: entity.MessageRoleUser})
	assert.JSONEq(t, `{}`, string(mod.Metadata))

	out := m.ChatMessageToEntity(mod)
	assert.Equal(t, entity.MessageMetadata{}, out.Metadata)
}

func TestWellnessProfile_NilListStaysNull(t *testing.T) {
	m := NewWellnessMapper()
	mod := m.ProfileToModel(&entity.WellnessProfile{UserId: "U1", Medications: []string{"x"}})
	assert.Nil(t, mod.SleepIssues)
	assert.JSONEq(t, `["x"]`, string(mod.Medications))

	out := m.ProfileToEntity(mod)
	assert.Nil(t, out.SleepIssues)
	assert.Equal(t, []string{"x"}, out.Medications)
}
