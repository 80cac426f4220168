package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all process configuration, sourced from the environment.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret        string
	JWTAlgorithm     string
	AccessTokenTTL   time.Duration
	ArticleTZOffsetH int

	ServerPort         string
	AppEnv             string
	LogLevel           string
	CORSAllowedOrigins string
}

// Load reads configuration from a .env file (if present) and the environment.
// JWT_SECRET is required; everything else has a development default.
func Load() (*Config, error) {
	_ = godotenv.Load() // ok if missing, plain env vars still apply

	cfg := &Config{
		DBHost:             getenv("DB_HOST", "localhost"),
		DBPort:             getenv("DB_PORT", "5432"),
		DBUser:             getenv("DB_USER", "postgres"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             getenv("DB_NAME", "board"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTAlgorithm:       getenv("JWT_ALGORITHM", "HS256"),
		ServerPort:         getenv("SERVER_PORT", "8080"),
		AppEnv:             getenv("APP_ENV", "development"),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "*"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET must be set")
	}

	expireMinutes, err := getenvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60)
	if err != nil {
		return nil, err
	}
	cfg.AccessTokenTTL = time.Duration(expireMinutes) * time.Minute

	// Fixed UTC offset applied to article timestamps (KST by default).
	cfg.ArticleTZOffsetH, err = getenvInt("ARTICLE_TZ_OFFSET_HOURS", 9)
	if err != nil {
		return nil, err
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("invalid LOG_LEVEL %q, falling back to info", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// DSN builds the postgres connection string from the DB_* settings.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}
