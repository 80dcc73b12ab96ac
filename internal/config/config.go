package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Chat     ChatConfig
	Backend  BackendConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	EventLogFilePath   string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JWTSecret          string
	OtelEnabled        bool
	OtelEndpoint       string
}

type DatabaseConfig struct {
	Connection string
	Debug      bool
}

type APIKeys struct {
	GoogleGemini string
}

type AIConfig struct {
	LLMProvider    string // "gemini", "genai" or "ollama"
	LLMModel       string
	GeminiAPIURL   string
	OllamaBaseURL  string
	RequestTimeout time.Duration
}

type ChatConfig struct {
	StorageType        string // "supabase", "backend" or "local"
	AutoSaveInterval   time.Duration
	MaxMessages        int
	LocalStore         string // "redis" or "memory"
	KeyPrefix          string
	SurfaceFailureInfo bool
}

type BackendConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			EventLogFilePath:   getEnv("EVENT_LOG_FILE_PATH", "logs/events.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			JWTSecret:          getEnv("JWT_SECRET", ""),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
			OtelEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			Debug:      getEnvAsBool("DB_DEBUG", false),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:    getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:       getEnv("LLM_MODEL", "gemini-1.5-flash"),
			GeminiAPIURL:   getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta"),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			RequestTimeout: getEnvAsDuration("AI_REQUEST_TIMEOUT", 30*time.Second),
		},
		Chat: ChatConfig{
			StorageType:        getEnv("CHAT_STORAGE_TYPE", "supabase"),
			AutoSaveInterval:   getEnvAsDuration("CHAT_AUTO_SAVE_INTERVAL", 30*time.Second),
			MaxMessages:        getEnvAsInt("CHAT_MAX_MESSAGES_PER_CONVERSATION", 100),
			LocalStore:         getEnv("CHAT_LOCAL_STORE", "redis"),
			KeyPrefix:          getEnv("CHAT_KEY_PREFIX", "nachiketa"),
			SurfaceFailureInfo: getEnvAsBool("CHAT_SURFACE_FAILURE_DETAIL", false),
		},
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_API_URL", ""),
			Token:   getEnv("BACKEND_API_TOKEN", ""),
			Timeout: getEnvAsDuration("BACKEND_API_TIMEOUT", 10*time.Second),
		},
	}
}

// Validate returns warnings about configurations that will force degraded
// mode. None of them stop the server.
func (c *Config) Validate() []string {
	var warnings []string
	provider := strings.ToLower(c.Ai.LLMProvider)
	if (provider == "" || provider == "gemini" || provider == "genai") && c.Keys.GoogleGemini == "" {
		warnings = append(warnings, "GOOGLE_GEMINI_API_KEY is not set: every chat reply will use the fallback text")
	}
	switch strings.ToLower(c.Chat.StorageType) {
	case "supabase", "remote":
		if c.Database.Connection == "" {
			warnings = append(warnings, "CHAT_STORAGE_TYPE selects the remote database but DB_CONNECTION_STRING is empty: chats are stored locally")
		}
	case "backend":
		if c.Backend.BaseURL == "" {
			warnings = append(warnings, "CHAT_STORAGE_TYPE=backend but BACKEND_API_URL is empty: chats are stored locally")
		}
	}
	if c.App.JWTSecret == "" {
		warnings = append(warnings, "JWT_SECRET is not set: authenticated routes will reject every request")
	}
	if c.Ai.RequestTimeout <= 0 {
		warnings = append(warnings, "AI_REQUEST_TIMEOUT must be positive: using 30s")
		c.Ai.RequestTimeout = 30 * time.Second
	}
	return warnings
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("30s") or plain milliseconds ("30000").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
