package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Gemini    GeminiConfig
	Stripe    StripeConfig
	Token     TokenConfig
	App       AppConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type StripeConfig struct {
	SecretKey string
	PriceID   string
}

type TokenConfig struct {
	Secret string
}

type AppConfig struct {
	BaseURL string
}

type RateLimitConfig struct {
	Window         time.Duration
	MaxRequests    int
	SweepThreshold int
}

// Load reads configuration from the environment. Secrets may be empty here;
// each endpoint reports a 500 when its own configuration is missing rather
// than failing the whole process at startup.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Stripe: StripeConfig{
			SecretKey: getEnv("STRIPE_SECRET_KEY", ""),
			PriceID:   getEnv("STRIPE_PRICE_ID", ""),
		},
		Token: TokenConfig{
			Secret: getEnv("TOKEN_SECRET", ""),
		},
		App: AppConfig{
			BaseURL: getEnv("APP_BASE_URL", ""),
		},
		RateLimit: RateLimitConfig{
			Window:         getEnvAsDuration("RATE_LIMIT_WINDOW", "60s"),
			MaxRequests:    getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 10),
			SweepThreshold: getEnvAsInt("RATE_LIMIT_SWEEP_THRESHOLD", 10000),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
