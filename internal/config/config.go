package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	JWTSecret      string
	TokenTTL       time.Duration
	GinMode        string
	Port           string
	CORSOrigin     string
	OpenAIAPIKey   string
	OpenAIModel    string
}

func Load() *Config {
	return &Config{
		DBDriver:     getEnv("DB_DRIVER", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "docforge"),
		DBPassword:   getEnv("DB_PASSWORD", "docforge"),
		DBName:       getEnv("DB_NAME", "docforge"),
		JWTSecret:    getEnv("JWT_SECRET", "default-secret-key-change-me"),
		TokenTTL:     time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 30)) * time.Minute,
		GinMode:      getEnv("GIN_MODE", "debug"),
		Port:         getEnv("PORT", "8000"),
		CORSOrigin:   getEnv("CORS_ORIGIN", "http://localhost:3000"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
