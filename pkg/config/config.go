package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	FrontendOrigin string
	DatabaseURL    string
	JWTSecret      string
	JWTExpiry      time.Duration
	GroqAPIKey     string
	GroqModel      string
	GroqBaseURL    string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	tokenExpiry := 24 * time.Hour
	if exp := os.Getenv("JWT_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			tokenExpiry = parsed
		}
	}

	return &Config{
		Port:           getEnv("PORT", "3001"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTExpiry:      tokenExpiry,
		GroqAPIKey:     getEnv("GROQ_API_KEY", ""),
		GroqModel:      getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GroqBaseURL:    getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
	}
}

// Validate checks that every value without a usable default is present.
// The server must not start without the signing secret, the database or
// the Groq API key.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	if c.GroqAPIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is not set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
