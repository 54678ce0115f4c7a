package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// RapidAPIKeyPlaceholder is the value shipped in the sample .env file. It is
// treated the same as an unset key.
const RapidAPIKeyPlaceholder = "YOUR_RAPIDAPI_KEY_HERE"

const (
	ProviderRapidAPI = "rapidapi"
	ProviderYouTube  = "youtube"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Postgres PostgresConfig
	MongoDB  MongoDBConfig
	RapidAPI RapidAPIConfig
	Gemini   GeminiConfig
	Metadata MetadataConfig
	Telegram TelegramConfig
	API      APIConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type StoreConfig struct {
	Driver string
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	Timeout  time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RapidAPIConfig struct {
	Key     string
	Host    string
	Timeout time.Duration
}

// Configured reports whether a usable API key is present.
func (c RapidAPIConfig) Configured() bool {
	return c.Key != "" && c.Key != RapidAPIKeyPlaceholder
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type MetadataConfig struct {
	Provider string
}

type TelegramConfig struct {
	BotToken string
}

type APIConfig struct {
	APIKey            string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

type CORSConfig struct {
	Enabled          bool
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
	Profile          string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")

	// Store configuration
	cfg.Store.Driver = strings.ToLower(getEnv("STORE_DRIVER", StoreMemory))
	switch cfg.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		cfg.Postgres.Host = getEnv("POSTGRES_HOST", "localhost")
		cfg.Postgres.Port = getEnvInt("POSTGRES_PORT", 5432)
		cfg.Postgres.User = getEnvRequired("POSTGRES_USER")
		cfg.Postgres.Password = getEnvRequired("POSTGRES_PASSWORD")
		cfg.Postgres.Database = getEnv("POSTGRES_DATABASE", "clipgrab")
		cfg.Postgres.SSLMode = getEnv("POSTGRES_SSLMODE", "disable")
		pgTimeout, err := time.ParseDuration(getEnv("POSTGRES_TIMEOUT", "10s"))
		if err != nil {
			return nil, fmt.Errorf("invalid POSTGRES_TIMEOUT: %w", err)
		}
		cfg.Postgres.Timeout = pgTimeout
	case StoreMongo:
		cfg.MongoDB.URI = getEnv("MONGODB_URI", "mongodb://localhost:27017")
		cfg.MongoDB.Database = getEnv("MONGODB_DATABASE", "clipgrab")
		mongoTimeout, err := time.ParseDuration(getEnv("MONGODB_TIMEOUT", "10s"))
		if err != nil {
			return nil, fmt.Errorf("invalid MONGODB_TIMEOUT: %w", err)
		}
		cfg.MongoDB.Timeout = mongoTimeout
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: expected %s, %s or %s", cfg.Store.Driver, StoreMemory, StorePostgres, StoreMongo)
	}

	// Upstream metadata API. The key is checked per request so the service
	// can start and serve analysis without it.
	cfg.RapidAPI.Key = os.Getenv("RAPIDAPI_KEY")
	cfg.RapidAPI.Host = getEnv("RAPIDAPI_HOST", "ytstream-download-youtube-videos.p.rapidapi.com")
	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}
	cfg.RapidAPI.Timeout = upstreamTimeout

	cfg.Metadata.Provider = strings.ToLower(getEnv("METADATA_PROVIDER", ProviderRapidAPI))
	if cfg.Metadata.Provider != ProviderRapidAPI && cfg.Metadata.Provider != ProviderYouTube {
		return nil, fmt.Errorf("invalid METADATA_PROVIDER %q: expected %s or %s", cfg.Metadata.Provider, ProviderRapidAPI, ProviderYouTube)
	}

	// Generative model
	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	cfg.Gemini.Model = getEnv("GEMINI_MODEL", "gemini-2.5-flash")
	geminiTimeout, err := time.ParseDuration(getEnv("GEMINI_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEMINI_TIMEOUT: %w", err)
	}
	cfg.Gemini.Timeout = geminiTimeout

	// Telegram bot front-end (optional)
	cfg.Telegram.BotToken = os.Getenv("TELEGRAM_BOT_TOKEN")

	// API configuration
	cfg.API.APIKey = os.Getenv("API_KEY")
	cfg.API.RateLimitRequests = getEnvInt("RATE_LIMIT_REQUESTS", 100)
	rateLimitWindow, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}
	cfg.API.RateLimitWindow = rateLimitWindow

	// CORS configuration
	cfg.CORS = loadCORSConfig()

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(strings.TrimSpace(value), ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

// loadCORSConfig loads CORS configuration based on profile or custom settings
func loadCORSConfig() CORSConfig {
	profile := getEnv("CORS_PROFILE", "custom")

	switch profile {
	case "development":
		return getDevelopmentCORSConfig()
	case "production":
		return getProductionCORSConfig()
	default:
		return getCustomCORSConfig()
	}
}

// getDevelopmentCORSConfig returns permissive CORS settings for development
func getDevelopmentCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled: getEnvBool("CORS_ENABLED", true),
		AllowedOrigins: getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:9002",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:9002",
		}),
		AllowedMethods: getEnvStringSlice("CORS_ALLOWED_METHODS", []string{
			"GET", "POST", "PUT", "OPTIONS",
		}),
		AllowedHeaders: getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{
			"Origin", "Content-Type", "Accept", "X-API-Key", "X-Client-ID", "X-Correlation-ID",
		}),
		ExposedHeaders: getEnvStringSlice("CORS_EXPOSED_HEADERS", []string{
			"X-Correlation-ID", "X-Request-ID",
		}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", true),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 86400),
		Profile:          "development",
	}
}

// getProductionCORSConfig returns strict CORS settings for production
func getProductionCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled: getEnvBool("CORS_ENABLED", true),
		AllowedOrigins: getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{
			"https://clipgrab.app",
		}),
		AllowedMethods: getEnvStringSlice("CORS_ALLOWED_METHODS", []string{
			"GET", "POST", "PUT", "OPTIONS",
		}),
		AllowedHeaders: getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{
			"Origin", "Content-Type", "Accept", "X-Client-ID",
		}),
		ExposedHeaders: getEnvStringSlice("CORS_EXPOSED_HEADERS", []string{
			"X-Request-ID",
		}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", false),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 3600),
		Profile:          "production",
	}
}

// getCustomCORSConfig returns CORS settings from individual environment variables
func getCustomCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled: getEnvBool("CORS_ENABLED", true),
		AllowedOrigins: getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
		}),
		AllowedMethods: getEnvStringSlice("CORS_ALLOWED_METHODS", []string{
			"GET", "POST", "PUT", "OPTIONS",
		}),
		AllowedHeaders: getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{
			"Origin", "Content-Type", "Accept", "X-Client-ID",
		}),
		ExposedHeaders:   getEnvStringSlice("CORS_EXPOSED_HEADERS", []string{}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", true),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 3600),
		Profile:          "custom",
	}
}
