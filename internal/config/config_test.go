package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"go duration", "45s", 45 * time.Second},
		{"milliseconds", "30000", 30 * time.Second},
		{"garbage", "soon", time.Minute},
		{"empty", "", time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION", time.Minute))
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CHAT_STORAGE_TYPE", "local")
	t.Setenv("CHAT_AUTO_SAVE_INTERVAL", "30000")
	cfg := Load()

	assert.Equal(t, "local", cfg.Chat.StorageType)
	assert.Equal(t, 30*time.Second, cfg.Chat.AutoSaveInterval)
	assert.Equal(t, 100, cfg.Chat.MaxMessages)
	assert.Equal(t, "nachiketa", cfg.Chat.KeyPrefix)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Ai:   AIConfig{LLMProvider: "gemini"},
		Chat: ChatConfig{StorageType: "supabase"},
		App:  AppConfig{JWTSecret: "s"},
	}
	warnings := cfg.Validate()
	assert.Len(t, warnings, 3)
	assert.Equal(t, 30*time.Second, cfg.Ai.RequestTimeout)

	cfg = &Config{
		Keys:     APIKeys{GoogleGemini: "k"},
		Ai:       AIConfig{LLMProvider: "gemini", RequestTimeout: time.Second},
		Chat:     ChatConfig{StorageType: "supabase"},
		Database: DatabaseConfig{Connection: "postgres://"},
		App:      AppConfig{JWTSecret: "s"},
	}
	assert.Empty(t, cfg.Validate())

	cfg.Chat.StorageType = "backend"
	assert.Len(t, cfg.Validate(), 1)
}
