package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	Env         string
	// Auth
	JWTSecret       string
	JWTExpiresHours int
	// OpenAI
	OpenAIAPIKey string
	OpenAIModel  string
	// Redis (optional, rate limiting falls back to memory without it)
	RedisURL      string
	RedisPassword string
}

func LoadConfig() (*Config, error) {
	// .env only matters locally; in production the file usually does not exist.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		DBUrl:           getEnv("DATABASE_URL", ""),
		FrontendURL:     strings.TrimRight(getEnv("FRONTEND_URL", ""), "/"),
		Env:             getEnv("APP_ENV", "development"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTExpiresHours: getEnvInt("JWT_EXPIRES_HOURS", 168),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		RedisURL:        getEnv("REDIS_URL", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Issued tokens will not survive restarts safely.")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("WARNING: OPENAI_API_KEY not configured. Chat endpoints will answer with fallback content.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
