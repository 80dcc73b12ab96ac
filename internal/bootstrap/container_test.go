package bootstrap

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"manasfit-be/internal/config"
	"manasfit-be/internal/pkg/testdb"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		App: config.AppConfig{
			Environment:      "test",
			LogFilePath:      filepath.Join(dir, "app.log"),
			EventLogFilePath: filepath.Join(dir, "events.log"),
			JWTSecret:        "s",
		},
		Ai:   config.AIConfig{LLMProvider: "gemini", RequestTimeout: time.Second},
		Chat: config.ChatConfig{StorageType: "supabase", LocalStore: "memory", KeyPrefix: "nachiketa"},
	}
}

func TestNewContainer_WiresEveryController(t *testing.T) {
	for name, withDB := range map[string]bool{"database": true, "no database": false} {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(t)
			var c *Container
			if withDB {
				c = NewContainer(testdb.Open(t), cfg)
			} else {
				c = NewContainer(nil, cfg)
			}
			t.Cleanup(c.Close)

			require.NotNil(t, c.ChatController)
			require.NotNil(t, c.WellnessController)
			require.NotNil(t, c.CompanionController)
			require.NotNil(t, c.PreferenceController)
			require.NotNil(t, c.SystemController)
			require.NotNil(t, c.ConsumerService)

			app := fiber.New()
			c.SystemController.RegisterRoutes(app.Group("/api"))
			resp, err := app.Test(httptest.NewRequest("GET", "/api/system/v1/health", nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		})
	}
}

func TestNewContainer_UnknownStorageTypeFallsBackToLocal(t *testing.T) {
	cfg := testConfig(t)
	cfg.Chat.StorageType = "floppy"

	c := NewContainer(nil, cfg)
	t.Cleanup(c.Close)
	assert.NotNil(t, c.ChatController)
}
