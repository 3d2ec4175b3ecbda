package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Chat     ChatConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	PublicDir          string
}

type DatabaseConfig struct {
	Path string
}

type AIConfig struct {
	APIKey       string
	BaseURL      string
	Model        string
	SystemPrompt string
	Temperature  float64
}

type ChatConfig struct {
	HistoryWindow int
	DefaultUserID string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3001"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			PublicDir:          getEnv("PUBLIC_DIR", "./public"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "memory.db"),
		},
		Ai: AIConfig{
			APIKey:       getEnv("OPENAI_API_KEY", ""),
			BaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:        getEnv("LLM_MODEL", "gpt-4o-mini"),
			SystemPrompt: getEnv("SYSTEM_PROMPT", "You are a helpful, kind assistant."),
			Temperature:  getEnvAsFloat("LLM_TEMPERATURE", 0.7),
		},
		Chat: ChatConfig{
			HistoryWindow: getEnvAsInt("HISTORY_WINDOW", 12),
			DefaultUserID: getEnv("DEFAULT_USER_ID", "demo"),
		},
	}
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
